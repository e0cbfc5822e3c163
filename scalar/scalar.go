// Copyright 2026 The Mote Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides a scalar computation graph with reverse-mode
// automatic differentiation.
//
// Callers build an expression out of Value nodes, then call Backward on the
// result to obtain the gradient of the result with respect to every node
// used to build it, in one reverse sweep over a topological ordering.
//
// Example:
//
//	import "github.com/mote-ml/mote/scalar"
//
//	func main() {
//	    v1 := scalar.NewLabeled(1, "v1")
//	    v2 := scalar.NewLabeled(2, "v2")
//	    v3 := scalar.NewLabeled(3, "v3")
//
//	    e := v1.Add(v2.Mul(v3)) // e = v1 + v2*v3 = 7
//
//	    scalar.Backward(e)
//	    fmt.Println(v2.Grad()) // de/dv2 = v3 = 3
//	}
//
// Values shared by several parents accumulate gradient from every parent
// (multivariable chain rule). Backward is idempotent and keeps all traversal
// state local to the call, so independent passes never interfere.
package scalar

import "github.com/mote-ml/mote/internal/scalar"

// Value is one scalar node in the computation graph.
type Value = scalar.Value

// Edge is one parent→child reference in the graph.
type Edge = scalar.Edge

// New creates a leaf node holding v.
func New(v float64) *Value {
	return scalar.New(v)
}

// NewLabeled creates a leaf node holding v with a diagnostic label.
func NewLabeled(v float64, label string) *Value {
	return scalar.NewLabeled(v, label)
}

// Backward computes d(root)/d(n) for every node n reachable from root.
// Its only observable effect is mutating those nodes' gradients.
func Backward(root *Value) {
	scalar.Backward(root)
}

// Nodes returns every node reachable from root in topological order,
// children before parents, each exactly once. Read-only.
func Nodes(root *Value) []*Value {
	return scalar.Nodes(root)
}

// Edges returns every parent→child edge reachable from root. Read-only.
func Edges(root *Value) []Edge {
	return scalar.Edges(root)
}

// ScalarAdd returns c + v.
func ScalarAdd(c float64, v *Value) *Value {
	return scalar.ScalarAdd(c, v)
}

// ScalarSub returns c - v.
func ScalarSub(c float64, v *Value) *Value {
	return scalar.ScalarSub(c, v)
}

// ScalarMul returns c * v.
func ScalarMul(c float64, v *Value) *Value {
	return scalar.ScalarMul(c, v)
}

// ScalarDiv returns c / v.
func ScalarDiv(c float64, v *Value) *Value {
	return scalar.ScalarDiv(c, v)
}

// ScalarReLU returns max(0, c) as a graph node.
func ScalarReLU(c float64) *Value {
	return scalar.ScalarReLU(c)
}
