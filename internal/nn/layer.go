package nn

import "github.com/mote-ml/mote/internal/scalar"

// Layer is a fully connected layer of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlinear)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's activation for one input vector.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	outputs := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron, in neuron order.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad clears every parameter gradient.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
