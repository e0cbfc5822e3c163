package nn

import "github.com/mote-ml/mote/internal/scalar"

// MLP is a multi-layer perceptron: a stack of fully connected layers with
// ReLU nonlinearities on every layer except the last, so the output layer
// produces unclamped values.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}) // 3 inputs, two hidden layers, 1 output
//	out := model.Forward(inputs)[0]
//	scalar.Backward(out)
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts,
// where each entry is that layer's neuron count.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		last := i == len(nouts)-1
		layers[i] = NewLayer(sizes[i], sizes[i+1], !last)
	}
	return &MLP{layers: layers}
}

// Forward passes one input vector through every layer.
func (m *MLP) Forward(inputs []*scalar.Value) []*scalar.Value {
	out := inputs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every layer, in layer order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad clears every parameter gradient.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}
