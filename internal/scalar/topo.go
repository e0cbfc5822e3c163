package scalar

// topoOrder returns every node reachable from root, children before parents,
// each exactly once. The traversal is depth-first post-order; the visited set
// is keyed on node identity, so two distinct nodes with equal values are
// never merged, and a node shared by several parents appears once.
//
// All traversal state lives in this call frame. Repeated calls over the same
// or overlapping graphs never interfere, and the order is identical across
// calls for a fixed graph (children are visited in operand order).
func topoOrder(root *Value) []*Value {
	order := make([]*Value, 0, 64)
	visited := make(map[*Value]struct{})

	var visit func(*Value)
	visit = func(v *Value) {
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}
		for _, c := range v.children {
			visit(c)
		}
		order = append(order, v)
	}
	visit(root)
	return order
}
