package scalar

// Read-only graph-walk surface for diagram renderers and pretty-printers.
// Neither function mutates the graph.

// Nodes returns every node reachable from root in topological order
// (children before parents), each exactly once. Together with each node's
// Label, Value, Grad and Op accessors this is the full node view of the
// graph.
func Nodes(root *Value) []*Value {
	return topoOrder(root)
}

// Edge is one parent→child reference in the graph: Parent was constructed
// from Child as one of its operands.
type Edge struct {
	Parent *Value
	Child  *Value
}

// Edges returns every parent→child edge reachable from root. A node that is
// a child of several parents contributes one edge per parent. Edge order
// follows the topological node order, then operand order within a node.
func Edges(root *Value) []Edge {
	var edges []Edge
	for _, v := range topoOrder(root) {
		for _, c := range v.children {
			edges = append(edges, Edge{Parent: v, Child: c})
		}
	}
	return edges
}
