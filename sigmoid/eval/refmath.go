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

package eval

import "math/big"

// Reference math on big.Float. math/big carries no transcendental functions,
// so exp and log are computed here from argument-reduced series, with
// guardBits of working precision beyond what the caller asked for.
//
//	exp(x) = exp(r) * 2^k        k = trunc(x/ln2), r = x - k*ln2, |r| < ln2
//	ln(x)  = k*ln2 + 2*atanh(t)  x = m*2^k, m in [sqrt(1/2), sqrt(2)),
//	                             t = (m-1)/(m+1), |t| < 0.1716
//
// Both series terminate when the next term falls guardBits below the running
// sum, so every result carries its full requested precision.

const guardBits = 64

// RefExp returns e**x rounded to prec bits.
func RefExp(x *big.Float, prec uint) *big.Float {
	return round(bigExp(x, prec+guardBits), prec)
}

// RefLog returns the natural logarithm of x rounded to prec bits.
// RefLog(0) is -Inf; negative x panics, as math/big itself does for
// operations without a representable result.
func RefLog(x *big.Float, prec uint) *big.Float {
	return round(bigLog(x, prec+guardBits), prec)
}

// RefLogit returns log(p/(1-p)) rounded to prec bits. Inputs outside (0, 1)
// saturate to the appropriate infinity.
func RefLogit(p *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	one := big.NewFloat(1).SetPrec(wp)
	if p.Sign() <= 0 {
		return big.NewFloat(0).SetPrec(prec).SetInf(true)
	}
	if p.Cmp(one) >= 0 {
		return big.NewFloat(0).SetPrec(prec).SetInf(false)
	}
	den := new(big.Float).SetPrec(wp).Sub(one, p)
	q := new(big.Float).SetPrec(wp).Quo(p, den)
	return round(bigLog(q, wp), prec)
}

// RefInverseLogit returns 1/(1+exp(-z)) rounded to prec bits. This is the
// ideal mathematical function every candidate formula is scored against.
func RefInverseLogit(z *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	if z.IsInf() {
		if z.Signbit() {
			return big.NewFloat(0).SetPrec(prec)
		}
		return big.NewFloat(1).SetPrec(prec)
	}
	e := bigExp(z, wp)
	den := new(big.Float).SetPrec(wp).Add(e, big.NewFloat(1).SetPrec(wp))
	return round(new(big.Float).SetPrec(wp).Quo(e, den), prec)
}

func round(x *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(x)
}

// bigExp computes e**x at working precision wp.
func bigExp(x *big.Float, wp uint) *big.Float {
	if x.Sign() == 0 {
		return big.NewFloat(1).SetPrec(wp)
	}
	if x.IsInf() {
		if x.Signbit() {
			return big.NewFloat(0).SetPrec(wp)
		}
		return big.NewFloat(0).SetPrec(wp).SetInf(false)
	}
	ln2 := bigLn2(wp)

	// Reduce: k = trunc(x/ln2), r = x - k*ln2, so |r| < ln2 and the Taylor
	// series for exp(r) converges geometrically.
	q := new(big.Float).SetPrec(wp).Quo(x, ln2)
	ki, _ := q.Int(nil)
	if !ki.IsInt64() || ki.Int64() > 1<<30 || ki.Int64() < -(1<<30) {
		// Beyond any representable big.Float exponent.
		if x.Signbit() {
			return big.NewFloat(0).SetPrec(wp)
		}
		return big.NewFloat(0).SetPrec(wp).SetInf(false)
	}
	k := ki.Int64()
	kf := new(big.Float).SetPrec(wp).SetInt(ki)
	r := new(big.Float).SetPrec(wp).Sub(x, new(big.Float).SetPrec(wp).Mul(kf, ln2))

	// exp(r) = sum r^n / n!
	sum := big.NewFloat(1).SetPrec(wp)
	term := big.NewFloat(1).SetPrec(wp)
	for n := int64(1); ; n++ {
		term.Mul(term, r)
		term.Quo(term, new(big.Float).SetPrec(wp).SetInt64(n))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
		if sum.MantExp(nil)-term.MantExp(nil) > int(wp)+4 {
			break
		}
	}

	res := new(big.Float).SetPrec(wp)
	res.SetMantExp(sum, int(k))
	return res
}

// bigLog computes ln(x) at working precision wp for x > 0.
func bigLog(x *big.Float, wp uint) *big.Float {
	if x.Sign() < 0 {
		panic(big.ErrNaN{})
	}
	if x.Sign() == 0 {
		return big.NewFloat(0).SetPrec(wp).SetInf(true)
	}
	if x.IsInf() {
		return big.NewFloat(0).SetPrec(wp).SetInf(false)
	}

	m := new(big.Float).SetPrec(wp)
	e := x.MantExp(m) // m in [0.5, 1)
	// Recenter m into [sqrt(1/2), sqrt(2)) so x == 1 reduces to e == 0 with
	// no cancellation against e*ln2.
	if mf, _ := m.Float64(); mf < 0.7071067811865476 {
		m.Add(m, m)
		e--
	}

	one := big.NewFloat(1).SetPrec(wp)
	t := new(big.Float).SetPrec(wp).Quo(
		new(big.Float).SetPrec(wp).Sub(m, one),
		new(big.Float).SetPrec(wp).Add(m, one),
	)
	lnm := atanhSeries(t, wp)
	lnm.Add(lnm, lnm) // ln(m) = 2*atanh((m-1)/(m+1))

	res := new(big.Float).SetPrec(wp).Mul(new(big.Float).SetPrec(wp).SetInt64(int64(e)), bigLn2(wp))
	res.Add(res, lnm)
	return res
}

// bigLn2 computes ln(2) = 2*atanh(1/3) at working precision wp.
func bigLn2(wp uint) *big.Float {
	third := new(big.Float).SetPrec(wp).Quo(
		big.NewFloat(1).SetPrec(wp),
		big.NewFloat(3).SetPrec(wp),
	)
	l := atanhSeries(third, wp)
	l.Add(l, l)
	return l
}

// atanhSeries computes atanh(t) = sum t^(2k+1)/(2k+1) for |t| <= 1/3.
func atanhSeries(t *big.Float, wp uint) *big.Float {
	sum := new(big.Float).SetPrec(wp).Set(t)
	if t.Sign() == 0 {
		return sum
	}
	pow := new(big.Float).SetPrec(wp).Set(t)
	tsq := new(big.Float).SetPrec(wp).Mul(t, t)
	add := new(big.Float).SetPrec(wp)
	for k := int64(1); ; k++ {
		pow.Mul(pow, tsq)
		add.Quo(pow, new(big.Float).SetPrec(wp).SetInt64(2*k+1))
		if add.Sign() == 0 {
			break
		}
		sum.Add(sum, add)
		if sum.MantExp(nil)-add.MantExp(nil) > int(wp)+4 {
			break
		}
	}
	return sum
}
