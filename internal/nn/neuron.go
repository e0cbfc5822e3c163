package nn

import (
	"fmt"
	"math/rand"

	"github.com/mote-ml/mote/internal/scalar"
)

// Neuron computes relu(w·x + b) over a fixed number of scalar inputs, or the
// raw affine value when nonlinear is false (used by output layers so logits
// are not clamped).
//
// Weights are initialized uniformly in [-1, 1) and the bias to 0.
type Neuron struct {
	weights   []*scalar.Value
	bias      *scalar.Value
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlinear bool) *Neuron {
	weights := make([]*scalar.Value, nin)
	for i := range weights {
		w := rand.Float64()*2 - 1 //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		weights[i] = scalar.NewLabeled(w, fmt.Sprintf("w%d", i))
	}
	return &Neuron{
		weights:   weights,
		bias:      scalar.NewLabeled(0, "b"),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron's activation for one input vector.
// len(inputs) must equal the neuron's input count.
func (n *Neuron) Forward(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d input(s), got %d", len(n.weights), len(inputs)))
	}
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	if n.nonlinear {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad clears every parameter gradient.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
