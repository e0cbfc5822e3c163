package nn

import (
	"testing"

	"github.com/mote-ml/mote/internal/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputsOf(xs ...float64) []*scalar.Value {
	vals := make([]*scalar.Value, len(xs))
	for i, x := range xs {
		vals[i] = scalar.New(x)
	}
	return vals
}

func TestNeuronForward(t *testing.T) {
	n := NewNeuron(2, false)

	// Pin the weights so the affine result is checkable by hand.
	params := n.Parameters()
	require.Len(t, params, 3, "two weights plus bias")
	params[0].SetValue(0.5)
	params[1].SetValue(-1)
	params[2].SetValue(0.25) // bias

	out := n.Forward(inputsOf(2, 3))
	assert.InDelta(t, 0.5*2+(-1)*3+0.25, out.Value(), 1e-12)
}

func TestNeuronReLUClampsNegative(t *testing.T) {
	n := NewNeuron(1, true)
	params := n.Parameters()
	params[0].SetValue(1)
	params[1].SetValue(0)

	out := n.Forward(inputsOf(-5))
	assert.Equal(t, 0.0, out.Value())

	scalar.Backward(out)
	assert.Equal(t, 0.0, params[0].Grad(), "no gradient through a closed relu")
}

func TestNeuronInputArityPanics(t *testing.T) {
	n := NewNeuron(3, true)
	assert.Panics(t, func() { n.Forward(inputsOf(1, 2)) })
}

func TestNeuronGradientFlow(t *testing.T) {
	n := NewNeuron(2, false)
	params := n.Parameters()
	params[0].SetValue(0.5)
	params[1].SetValue(-1)
	params[2].SetValue(0)

	in := inputsOf(2, 3)
	out := n.Forward(in)
	scalar.Backward(out)

	// d(w·x + b)/dw_i = x_i, d/db = 1.
	assert.InDelta(t, 2.0, params[0].Grad(), 1e-12)
	assert.InDelta(t, 3.0, params[1].Grad(), 1e-12)
	assert.InDelta(t, 1.0, params[2].Grad(), 1e-12)
	// d/dx_i = w_i.
	assert.InDelta(t, 0.5, in[0].Grad(), 1e-12)
	assert.InDelta(t, -1.0, in[1].Grad(), 1e-12)
}

func TestLayerShape(t *testing.T) {
	l := NewLayer(3, 4, true)
	out := l.Forward(inputsOf(1, 2, 3))
	assert.Len(t, out, 4)
	assert.Len(t, l.Parameters(), 4*(3+1))
}

func TestMLPParameterCount(t *testing.T) {
	m := NewMLP(3, []int{4, 4, 1})
	// 4*(3+1) + 4*(4+1) + 1*(4+1)
	assert.Len(t, m.Parameters(), 16+20+5)
}

func TestMLPForwardShape(t *testing.T) {
	m := NewMLP(3, []int{4, 2})
	out := m.Forward(inputsOf(1, -2, 3))
	assert.Len(t, out, 2)
}

func TestZeroGrad(t *testing.T) {
	m := NewMLP(2, []int{2, 1})
	out := m.Forward(inputsOf(1, 2))[0]
	scalar.Backward(out)

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Zero(t, p.Grad())
	}
}
