// Package eval is the offline accuracy harness behind the sigmoid package.
//
// It provides a configurable high-precision oracle (Oracle) used as the
// correctness reference, a bit-pattern distance metric (BitDiff), an
// evaluator that scores a candidate float64 formula against the oracle over
// an input sweep (Oracle.Evaluate, Report), the derivation of the region
// boundary constants baked into the sigmoid package (DeriveBoundaries), and
// the enumerable set of candidate formulas the harness compares (Variants).
//
// Nothing in this package runs in a production hot path: the shipped
// sigmoid.InverseLogit consumes the derived constants as compiled-in
// literals and has no runtime dependency on the oracle.
package eval
