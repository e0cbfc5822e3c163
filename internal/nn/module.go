// Package nn provides scalar neural-network building blocks on top of the
// computation graph: Neuron, Layer and MLP, each a Module exposing its
// trainable parameters to an optimizer.
package nn

import "github.com/mote-ml/mote/internal/scalar"

// Module is the base interface for all network components.
//
// Modules compose: a Layer's parameters are its neurons' parameters, an
// MLP's parameters are its layers'. Forward is not part of the interface
// because input and output arity differ per module (a Neuron produces one
// Value, a Layer a slice).
type Module interface {
	// Parameters returns every trainable Value of this module, including
	// nested modules', in a stable order.
	Parameters() []*scalar.Value

	// ZeroGrad clears the gradient of every parameter. Backward already
	// resets every reachable gradient at the start of a pass, so a plain
	// training loop does not strictly need it; it is for callers that
	// inspect gradients between passes.
	ZeroGrad()
}

var (
	_ Module = (*Neuron)(nil)
	_ Module = (*Layer)(nil)
	_ Module = (*MLP)(nil)
)

func zeroGrad(params []*scalar.Value) {
	for _, p := range params {
		p.ClearGrad()
	}
}
