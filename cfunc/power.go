// SPDX-License-Identifier: MIT

// Package cfunc: lazy power and root nodes with algebraic exponent
// composition.
//
// Applying a power/root to an existing power node composes exponents instead
// of stacking nodes: (f^n)^m = f^(n·m), (f^(1/k))^(1/n) = f^(1/(kn)),
// (f^m)^(1/n) = f^(m/n) when n divides m, real exponents multiply through.
// Exponent 0 never composes — it is its own pointwise operation (PowInt and
// Pow: One unless the base value is Null; NthRoot: Null always) and folds
// only on Constants.
package cfunc

import (
	"math"

	"github.com/katalvlaran/cfalg/interval"
)

// powInt is the lazy integer-power node f^n.
type powInt struct {
	sh   shape
	base Func
	n    int
}

// powReal is the lazy real-power node f^r with non-integer r.
type powReal struct {
	sh   shape
	base Func
	r    float64
}

// nthRoot is the lazy n-th-root node f^(1/n) with n ≥ 2.
type nthRoot struct {
	sh   shape
	base Func
	n    int
}

// PowInt returns f raised to the integer power n, lazily.
func PowInt(f Func, n int) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return powIntOp(f, n), nil
}

// Pow returns f raised to the real power r, lazily. Integer-valued r
// delegates to PowInt; a non-finite r is Null pointwise, hence the Null
// Constant.
func Pow(f Func, r float64) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return powRealOp(f, r), nil
}

// NthRoot returns the n-th root of f, lazily. Index 0 (and any negative
// index) is Null pointwise for every base, hence the Null Constant.
func NthRoot(f Func, n int) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return nthRootOp(f, n), nil
}

// powIntOp is the internal integer-power rewrite.
func powIntOp(f Func, n int) Func {
	if n == 0 {
		// x^0 is One unless x is Null: a pointwise operation, only
		// foldable on Constants.
		if c, ok := f.(*Constant); ok {
			return constant(c.sh, interval.PowInt(c.val, 0))
		}

		return &powInt{sh: f.shp(), base: f, n: 0}
	}

	switch t := f.(type) {
	case *Constant:
		return constant(t.sh, interval.PowInt(t.val, n))
	case *powInt:
		return powIntOp(t.base, t.n*n)
	case *powReal:
		return powRealOp(t.base, t.r*float64(n))
	case *nthRoot:
		if n%t.n == 0 {
			return powIntOp(t.base, n/t.n)
		}
		if t.n%n == 0 {
			return nthRootOp(t.base, t.n/n)
		}
	}

	if n == 1 {
		return f
	}

	return &powInt{sh: f.shp(), base: f, n: n}
}

// powRealOp is the internal real-power rewrite.
func powRealOp(f Func, r float64) Func {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return constNull(f.shp())
	}
	if r == math.Trunc(r) && math.Abs(r) <= math.MaxInt32 {
		return powIntOp(f, int(r))
	}

	switch t := f.(type) {
	case *Constant:
		return constant(t.sh, interval.Pow(t.val, r))
	case *powInt:
		if t.n != 0 {
			return powRealOp(t.base, float64(t.n)*r)
		}
	case *powReal:
		return powRealOp(t.base, t.r*r)
	case *nthRoot:
		return powRealOp(t.base, r/float64(t.n))
	}

	return &powReal{sh: f.shp(), base: f, r: r}
}

// nthRootOp is the internal root rewrite.
func nthRootOp(f Func, n int) Func {
	if n <= 0 {
		// Root index 0 (and below) is Null for every base.
		return constNull(f.shp())
	}
	if n == 1 {
		return f
	}

	switch t := f.(type) {
	case *Constant:
		return constant(t.sh, interval.NthRoot(t.val, n))
	case *nthRoot:
		return nthRootOp(t.base, t.n*n)
	case *powInt:
		if t.n != 0 && t.n%n == 0 {
			return powIntOp(t.base, t.n/n)
		}
	case *powReal:
		return powRealOp(t.base, t.r/float64(n))
	}

	return &nthRoot{sh: f.shp(), base: f, n: n}
}

// --- powInt node: Func implementation -----------------------------------

func (p *powInt) Dim() int { return p.sh.dim }
func (p *powInt) Units() int { return p.sh.nu }
func (p *powInt) Series() int { return p.sh.ns }
func (p *powInt) Kind() Kind { return KindPowInt }
func (p *powInt) IsLeaf() bool { return false }
func (p *powInt) IsAlg() bool { return true }
func (p *powInt) IsZero() bool { return false }
func (p *powInt) IsOne() bool { return false }
func (p *powInt) shp() shape { return p.sh }

// At evaluates the base pointwise and applies the scalar power.
func (p *powInt) At(units []int, series int) (interval.Value, error) {
	if err := p.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return p.eval(units, series), nil
}

// Materialize forces the base and applies the power elementwise.
func (p *powInt) Materialize() Func {
	return materializeUnary(p.base.Materialize(), func(v interval.Value) interval.Value {
		return interval.PowInt(v, p.n)
	})
}

func (p *powInt) eval(units []int, series int) interval.Value {
	return interval.PowInt(p.base.eval(units, series), p.n)
}

// --- powReal node: Func implementation ----------------------------------

func (p *powReal) Dim() int { return p.sh.dim }
func (p *powReal) Units() int { return p.sh.nu }
func (p *powReal) Series() int { return p.sh.ns }
func (p *powReal) Kind() Kind { return KindPowReal }
func (p *powReal) IsLeaf() bool { return false }
func (p *powReal) IsAlg() bool { return true }
func (p *powReal) IsZero() bool { return false }
func (p *powReal) IsOne() bool { return false }
func (p *powReal) shp() shape { return p.sh }

// At evaluates the base pointwise and applies the scalar power.
func (p *powReal) At(units []int, series int) (interval.Value, error) {
	if err := p.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return p.eval(units, series), nil
}

// Materialize forces the base and applies the power elementwise.
func (p *powReal) Materialize() Func {
	return materializeUnary(p.base.Materialize(), func(v interval.Value) interval.Value {
		return interval.Pow(v, p.r)
	})
}

func (p *powReal) eval(units []int, series int) interval.Value {
	return interval.Pow(p.base.eval(units, series), p.r)
}

// --- nthRoot node: Func implementation ----------------------------------

func (p *nthRoot) Dim() int { return p.sh.dim }
func (p *nthRoot) Units() int { return p.sh.nu }
func (p *nthRoot) Series() int { return p.sh.ns }
func (p *nthRoot) Kind() Kind { return KindNthRoot }
func (p *nthRoot) IsLeaf() bool { return false }
func (p *nthRoot) IsAlg() bool { return true }
func (p *nthRoot) IsZero() bool { return false }
func (p *nthRoot) IsOne() bool { return false }
func (p *nthRoot) shp() shape { return p.sh }

// At evaluates the base pointwise and applies the scalar root.
func (p *nthRoot) At(units []int, series int) (interval.Value, error) {
	if err := p.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return p.eval(units, series), nil
}

// Materialize forces the base and applies the root elementwise.
func (p *nthRoot) Materialize() Func {
	return materializeUnary(p.base.Materialize(), func(v interval.Value) interval.Value {
		return interval.NthRoot(v, p.n)
	})
}

func (p *nthRoot) eval(units []int, series int) interval.Value {
	return interval.NthRoot(p.base.eval(units, series), p.n)
}
