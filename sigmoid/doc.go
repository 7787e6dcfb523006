// Package sigmoid provides an overflow-safe inverse logit (logistic sigmoid)
// for float64, plus a batch transform over slices.
//
// The scalar function is total: it returns a value in [0, 1] for every finite
// input, 0.0 for -Inf and 1.0 for +Inf, and never produces NaN for a valid
// input. Outside the range where float64 arithmetic carries meaningful
// precision it saturates to exactly 0.0 or 1.0.
//
// The branch logic is shaped as unconditional evaluation followed by two
// selects, so the operation is safe to apply elementwise across an array
// without per-element control flow.
//
// The region boundary constants in constants.go are derived, not hand-tuned;
// the derivation lives in the sigmoid/eval package, which also contains the
// accuracy harness used to choose the shipped formula.
package sigmoid
