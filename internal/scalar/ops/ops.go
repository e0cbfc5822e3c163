// Package ops defines the operation set for scalar automatic differentiation.
//
// Each operation is identified by a Kind tag. A Rule pairs a Kind with the
// operation's only constant (the Pow exponent) and provides two pure
// functions:
//   - Forward: compute the output value from the operand values
//   - Increments: compute the gradient increment for each operand, given the
//     operand values and the output node's value and gradient
//
// Supported operations:
//   - Add: y = a + b       (dy/da = 1, dy/db = 1)
//   - Mul: y = a * b       (dy/da = b, dy/db = a)
//   - Neg: y = -x          (dy/dx = -1)
//   - Pow: y = x^n         (dy/dx = n * x^(n-1), n constant)
//   - Inv: y = 1 / x       (dy/dx = -1 / x²)
//   - ReLU: y = max(0, x)  (dy/dx = 1 if x > 0, else 0)
//   - Exp: y = exp(x)      (dy/dx = exp(x) = y)
//
// Subtraction and division are built from these primitives by the graph
// layer (a - b = a + (-b), a / b = a * (1/b)) and need no rules of their own.
package ops

import (
	"fmt"
	"math"
)

// Kind identifies one operation in the fixed rule set.
type Kind uint8

const (
	// Leaf marks an input node. It has no operands and propagates nothing.
	Leaf Kind = iota
	Add
	Mul
	Neg
	Pow
	Inv
	ReLU
	Exp
)

// String returns the operation symbol used in labels and diagrams.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Neg:
		return "neg"
	case Pow:
		return "pow"
	case Inv:
		return "inv"
	case ReLU:
		return "relu"
	case Exp:
		return "exp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of operands the operation takes.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Mul:
		return 2
	case Neg, Pow, Inv, ReLU, Exp:
		return 1
	default:
		panic(fmt.Sprintf("ops: unknown operation kind %d", uint8(k)))
	}
}

// Rule is the gradient-propagation rule attached to a graph node: the
// operation tag plus the one operation-specific constant. Holding a tag
// instead of a closure keeps the rule set auditable and free of captured
// mutable state.
type Rule struct {
	Kind     Kind
	Exponent float64 // Pow only; ignored by every other kind
}

// Forward computes the operation's output value from its operand values.
//
// Floating-point edge cases follow IEEE semantics: Inv of zero yields ±Inf,
// Pow of a negative base with a fractional exponent yields NaN. Neither is
// an error; the values propagate through later operations.
func (r Rule) Forward(inputs []float64) float64 {
	r.checkArity(len(inputs))
	switch r.Kind {
	case Add:
		return inputs[0] + inputs[1]
	case Mul:
		return inputs[0] * inputs[1]
	case Neg:
		return -inputs[0]
	case Pow:
		return math.Pow(inputs[0], r.Exponent)
	case Inv:
		return 1 / inputs[0]
	case ReLU:
		return math.Max(0, inputs[0])
	case Exp:
		return math.Exp(inputs[0])
	default:
		panic(fmt.Sprintf("ops: no forward rule for kind %d", uint8(r.Kind)))
	}
}

// Increments returns the chain-rule gradient increment for each operand:
// the local partial derivative with respect to that operand, scaled by the
// output node's gradient. The caller adds each increment into the matching
// operand's gradient accumulator; Increments itself mutates nothing.
//
// outValue is used where the derivative is cheapest in terms of the output
// (Exp); outGrad is the output node's accumulated gradient at replay time.
func (r Rule) Increments(inputs []float64, outValue, outGrad float64) []float64 {
	r.checkArity(len(inputs))
	switch r.Kind {
	case Leaf:
		return nil
	case Add:
		return []float64{outGrad, outGrad}
	case Mul:
		return []float64{inputs[1] * outGrad, inputs[0] * outGrad}
	case Neg:
		return []float64{-outGrad}
	case Pow:
		return []float64{r.Exponent * math.Pow(inputs[0], r.Exponent-1) * outGrad}
	case Inv:
		return []float64{-1 / (inputs[0] * inputs[0]) * outGrad}
	case ReLU:
		if inputs[0] > 0 {
			return []float64{outGrad}
		}
		return []float64{0}
	case Exp:
		return []float64{outValue * outGrad}
	default:
		panic(fmt.Sprintf("ops: no gradient rule for kind %d", uint8(r.Kind)))
	}
}

func (r Rule) checkArity(n int) {
	if n != r.Kind.Arity() {
		panic(fmt.Sprintf("ops: %s expects %d operand(s), got %d", r.Kind, r.Kind.Arity(), n))
	}
}
