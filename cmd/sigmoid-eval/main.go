// Copyright 2026 go-sigmoid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sigmoid-eval is the offline side of the sigmoid package: it
// re-derives the region boundary constants, sweeps the candidate inverse
// logit formulas against the high-precision oracle, and demonstrates the
// failure modes the shipped function is guarded against.
package main

import (
	"math"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-sigmoid/sigmoid"
	"github.com/ajroetker/go-sigmoid/sigmoid/eval"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("sigmoid-eval", "Accuracy harness for the go-sigmoid inverse logit.")
	prec := app.Flag("precision", "Oracle mantissa precision in bits.").Default("256").Uint()

	bounds := &boundariesCommand{prec: prec}
	app.Command("boundaries", "Re-derive the region boundary constants and compare them to the baked-in literals.").Action(bounds.run)

	sweep := &sweepCommand{prec: prec}
	sweepCmd := app.Command("sweep", "Score every candidate formula against the oracle over an input sweep.").Action(sweep.run)
	sweep.min = sweepCmd.Flag("min", "Sweep lower endpoint.").Default("-746").Float64()
	sweep.max = sweepCmd.Flag("max", "Sweep upper endpoint.").Default("40").Float64()
	sweep.points = sweepCmd.Flag("points", "Number of sweep points.").Default("20001").Int()

	defects := &defectsCommand{}
	app.Command("defects", "Show the boundary failures the shipped function avoids.").Action(defects.run)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	level.Error(logger).Log("err", err)
	os.Exit(1)
}

type boundariesCommand struct {
	prec *uint
}

func (cmd *boundariesCommand) run(*kingpin.ParseContext) error {
	o, err := eval.NewOracle(*cmd.prec)
	if err != nil {
		exitWithErr(err)
	}
	b, err := eval.DeriveBoundaries(o)
	if err != nil {
		exitWithErr(err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("boundary constants derived at %d-bit precision:\n", o.Precision())
	rows := []struct {
		name           string
		derived, baked float64
	}{
		{"lower_saturation", b.LowerSaturation, sigmoid.LowerSaturation},
		{"exp_overflow_bound", b.ExpOverflowBound, sigmoid.ExpOverflowBound},
		{"eps_crossover", b.EpsCrossover, sigmoid.EpsCrossover},
		{"mantissa_crossover", b.MantissaCrossover, sigmoid.MantissaCrossover},
		{"upper_saturation", b.UpperSaturation, sigmoid.UpperSaturation},
	}
	stale := false
	for _, r := range rows {
		status := "ok"
		if r.derived != r.baked {
			status = "STALE BAKED CONSTANT"
			stale = true
		}
		p.Printf("  %-20s %-24v %s\n", r.name, r.derived, status)
	}
	if stale {
		level.Error(logger).Log("msg", "baked constants diverge from derivation")
		os.Exit(1)
	}
	return nil
}

type sweepCommand struct {
	prec   *uint
	min    *float64
	max    *float64
	points *int
}

func (cmd *sweepCommand) run(*kingpin.ParseContext) error {
	o, err := eval.NewOracle(*cmd.prec)
	if err != nil {
		exitWithErr(err)
	}
	inputs, err := eval.Linspace(*cmd.min, *cmd.max, *cmd.points)
	if err != nil {
		exitWithErr(err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("sweep of %d points over [%v, %v], oracle at %d bits\n",
		len(inputs), *cmd.min, *cmd.max, o.Precision())
	p.Printf("  %-12s %12s %14s %14s %14s\n",
		"variant", "exact", "mean_abs_err", "max_abs_err", "mean_bit_diff")

	for _, v := range eval.Variants() {
		level.Debug(logger).Log("msg", "evaluating", "variant", v.Name)
		rep, err := o.Evaluate(v.Fn, v.Ref, inputs)
		if err != nil {
			exitWithErr(err)
		}
		p.Printf("  %-12s %11.4f%% %14.6g %14.6g %14.4f\n",
			v.Name, 100*rep.ExactMatchRate, rep.MeanAbsError, rep.MaxAbsError, rep.MeanBitDiff)
	}
	return nil
}

type defectsCommand struct{}

func (cmd *defectsCommand) run(*kingpin.ParseContext) error {
	p := message.NewPrinter(language.English)

	z := sigmoid.LowerSaturation
	p.Printf("at the lower saturation boundary z = %v:\n", z)
	p.Printf("  reciprocal 1/(1+exp(-z))  = %v (intermediate exp(-z) overflows to +Inf)\n", eval.Reciprocal(z))
	p.Printf("  robust                    = %v (smallest positive float64)\n", sigmoid.InverseLogit(z))

	z = 10000
	e := math.Exp(z)
	p.Printf("far above the upper saturation boundary, z = %v:\n", z)
	p.Printf("  unguarded exp(z)/(exp(z)+1) = %v (Inf/(Inf+1))\n", e/(e+1))
	p.Printf("  robust                      = %v\n", sigmoid.InverseLogit(z))
	return nil
}
