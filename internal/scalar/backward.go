package scalar

import "fmt"

// Backward computes, for every node n reachable from root, the gradient
// d(root)/d(n) at the current forward values, summed over every path from n
// to root.
//
// The pass runs in four steps over a single topological ordering:
//  1. Reset: zero the gradient of every reachable node, so nothing from a
//     previous pass leaks in.
//  2. Order: children before parents (computed once, reused for the reset).
//  3. Seed: root.grad = 1, since d(root)/d(root) = 1.
//  4. Replay: walk the order in reverse and apply each node's gradient rule,
//     adding the increments into its children's gradients. Addition, never
//     assignment: a node reused by several parents accumulates every
//     parent's contribution.
//
// Backward is idempotent (a second call reproduces the same gradients) and
// holds no state between calls, so passes over overlapping graphs from
// independent call sites never interfere. Gradients are single-writer within
// a pass; concurrent passes over graphs sharing nodes must be serialized by
// the caller.
func Backward(root *Value) {
	order := topoOrder(root)
	for _, v := range order {
		v.grad = 0
	}
	root.grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if len(v.children) == 0 {
			continue
		}
		incs := v.rule.Increments(operandValues(v.children), v.value, v.grad)
		if len(incs) != len(v.children) {
			panic(fmt.Sprintf("scalar: %s rule produced %d increment(s) for %d child(ren)",
				v.rule.Kind, len(incs), len(v.children)))
		}
		for j, c := range v.children {
			c.grad += incs[j]
		}
	}
}
