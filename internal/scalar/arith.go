package scalar

import "github.com/mote-ml/mote/internal/scalar/ops"

// Arithmetic constructors. Each call computes the forward value immediately
// and records the gradient rule on the new node; no gradients are computed
// until Backward runs.
//
// Go has no operator overloading, so the operand-type combinations map to:
//   - node ∘ node:   methods taking *Value (Add, Sub, Mul, Div, ...)
//   - node ∘ scalar: methods taking float64 (AddScalar, SubScalar, ...)
//   - scalar ∘ node: package functions (ScalarAdd, ScalarSub, ...)
//
// Scalar operands are lifted to leaf nodes labeled with their numeric text;
// the lifted leaf receives gradient but propagates nothing.

// Add returns v + o.
func (v *Value) Add(o *Value) *Value {
	return newResult(ops.Rule{Kind: ops.Add}, v, o)
}

// Sub returns v - o, built as v + (-o).
func (v *Value) Sub(o *Value) *Value {
	return v.Add(o.Neg())
}

// Mul returns v * o.
func (v *Value) Mul(o *Value) *Value {
	return newResult(ops.Rule{Kind: ops.Mul}, v, o)
}

// Div returns v / o, built as v * (1/o). A zero-valued divisor yields an
// infinite value and gradient rather than an error.
func (v *Value) Div(o *Value) *Value {
	return v.Mul(o.Inv())
}

// Neg returns -v.
func (v *Value) Neg() *Value {
	return newResult(ops.Rule{Kind: ops.Neg}, v)
}

// Pow returns v raised to the constant exponent n. The exponent is not a
// graph node; no gradient with respect to n is ever computed. A negative
// base with a fractional exponent yields NaN, which propagates.
func (v *Value) Pow(n float64) *Value {
	return newResult(ops.Rule{Kind: ops.Pow, Exponent: n}, v)
}

// Inv returns 1 / v.
func (v *Value) Inv() *Value {
	return newResult(ops.Rule{Kind: ops.Inv}, v)
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return newResult(ops.Rule{Kind: ops.ReLU}, v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newResult(ops.Rule{Kind: ops.Exp}, v)
}

// AddScalar returns v + c.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(lift(c))
}

// SubScalar returns v - c.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(lift(c))
}

// MulScalar returns v * c.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(lift(c))
}

// DivScalar returns v / c.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(lift(c))
}

// ScalarAdd returns c + v.
func ScalarAdd(c float64, v *Value) *Value {
	return lift(c).Add(v)
}

// ScalarSub returns c - v.
func ScalarSub(c float64, v *Value) *Value {
	return lift(c).Sub(v)
}

// ScalarMul returns c * v.
func ScalarMul(c float64, v *Value) *Value {
	return lift(c).Mul(v)
}

// ScalarDiv returns c / v.
func ScalarDiv(c float64, v *Value) *Value {
	return lift(c).Div(v)
}

// ScalarReLU returns max(0, c) as a graph node, lifting the raw scalar to a
// leaf first.
func ScalarReLU(c float64) *Value {
	return lift(c).ReLU()
}
