// Package scalar implements a scalar computation graph with reverse-mode
// automatic differentiation.
//
// Callers build a directed acyclic graph of Value nodes through the
// arithmetic constructors, then call Backward on the result node to obtain
// the gradient of that result with respect to every node used to build it.
package scalar

import (
	"strconv"

	"github.com/mote-ml/mote/internal/scalar/ops"
)

// Value is one scalar node in the computation graph.
//
// The forward value and the children topology are fixed at construction; the
// gradient accumulator is the only mutable field, written by Backward.
// A Value may be referenced as a child by any number of parents (shared
// subexpression); Backward sums the contribution from every parent.
//
// Gradient writes are single-writer: two concurrent Backward calls over
// graphs sharing a node would race on its gradient. Construction and
// backward passes are otherwise free of shared state, so independent graphs
// can be used from independent goroutines without a lock.
type Value struct {
	value    float64
	grad     float64
	children []*Value
	rule     ops.Rule
	label    string
}

// New creates a leaf node holding v. Leaves carry no gradient rule; they
// receive gradient during a backward pass but propagate nothing further.
func New(v float64) *Value {
	return &Value{value: v, rule: ops.Rule{Kind: ops.Leaf}}
}

// NewLabeled creates a leaf node holding v with a diagnostic label.
// The label has no semantic effect; it only shows up in inspection output.
func NewLabeled(v float64, label string) *Value {
	n := New(v)
	n.label = label
	return n
}

// lift turns a raw scalar operand into a leaf labeled with its numeric text,
// so mixed scalar/node expressions read naturally in diagrams.
func lift(c float64) *Value {
	return NewLabeled(c, strconv.FormatFloat(c, 'g', -1, 64))
}

// newResult constructs the node produced by applying rule to the given
// operand nodes. The operands become the node's children, so every child
// exists strictly before its parent and the graph stays acyclic.
func newResult(rule ops.Rule, children ...*Value) *Value {
	return &Value{
		value:    rule.Forward(operandValues(children)),
		children: children,
		rule:     rule,
	}
}

// operandValues snapshots the forward values of the given nodes.
func operandValues(nodes []*Value) []float64 {
	vals := make([]float64, len(nodes))
	for i, n := range nodes {
		vals[i] = n.value
	}
	return vals
}

// Value returns the forward-computed value. Immutable after construction.
func (v *Value) Value() float64 {
	return v.value
}

// Grad returns the accumulated gradient d(root)/d(v), valid immediately
// after a Backward pass rooted at an ancestor that reaches v. Before the
// first pass it is 0.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetValue replaces a leaf's value. Only leaves may be re-set: derived
// nodes are immutable, so the forward pass stays pure. Any expression built
// from the old value keeps its old result; training loops rebuild the
// expression each step after updating parameters.
func (v *Value) SetValue(x float64) {
	if len(v.children) != 0 {
		panic("scalar: SetValue on a derived node; only leaves are mutable")
	}
	v.value = x
}

// ClearGrad resets the gradient accumulator to 0. Backward performs its own
// reset over every reachable node; ClearGrad is for callers that read
// gradients between passes and want leaves cleaned eagerly.
func (v *Value) ClearGrad() {
	v.grad = 0
}

// Label returns the diagnostic label, or "" if none was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the diagnostic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// Op returns the operation that produced this node (ops.Leaf for inputs).
func (v *Value) Op() ops.Kind {
	return v.rule.Kind
}

// Children returns the operand nodes that produced this node, in operand
// order, or nil for a leaf. The returned slice must not be modified.
func (v *Value) Children() []*Value {
	return v.children
}
