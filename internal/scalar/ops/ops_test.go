package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	tests := []struct {
		name   string
		rule   Rule
		inputs []float64
		want   float64
	}{
		{"add", Rule{Kind: Add}, []float64{2, 3}, 5},
		{"add negative", Rule{Kind: Add}, []float64{2, -3}, -1},
		{"mul", Rule{Kind: Mul}, []float64{2, 3}, 6},
		{"neg", Rule{Kind: Neg}, []float64{4}, -4},
		{"pow square", Rule{Kind: Pow, Exponent: 2}, []float64{3}, 9},
		{"pow root", Rule{Kind: Pow, Exponent: 0.5}, []float64{4}, 2},
		{"inv", Rule{Kind: Inv}, []float64{4}, 0.25},
		{"relu positive", Rule{Kind: ReLU}, []float64{3}, 3},
		{"relu negative", Rule{Kind: ReLU}, []float64{-3}, 0},
		{"relu zero", Rule{Kind: ReLU}, []float64{0}, 0},
		{"exp", Rule{Kind: Exp}, []float64{1}, math.E},
		{"exp zero", Rule{Kind: Exp}, []float64{0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.rule.Forward(tt.inputs), 1e-12)
		})
	}
}

func TestIncrements(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		inputs   []float64
		outValue float64
		outGrad  float64
		want     []float64
	}{
		{"add passes grad to both", Rule{Kind: Add}, []float64{2, 3}, 5, 4, []float64{4, 4}},
		{"mul swaps operand values", Rule{Kind: Mul}, []float64{2, 3}, 6, 4, []float64{12, 8}},
		{"neg flips grad", Rule{Kind: Neg}, []float64{7}, -7, 4, []float64{-4}},
		{"pow square", Rule{Kind: Pow, Exponent: 2}, []float64{3}, 9, 1, []float64{6}},
		{"pow cube", Rule{Kind: Pow, Exponent: 3}, []float64{2}, 8, 2, []float64{24}},
		{"inv", Rule{Kind: Inv}, []float64{2}, 0.5, 1, []float64{-0.25}},
		{"relu open", Rule{Kind: ReLU}, []float64{3}, 3, 4, []float64{4}},
		{"relu closed", Rule{Kind: ReLU}, []float64{-3}, 0, 4, []float64{0}},
		{"relu closed at zero", Rule{Kind: ReLU}, []float64{0}, 0, 4, []float64{0}},
		{"exp reuses output", Rule{Kind: Exp}, []float64{1}, math.E, 2, []float64{2 * math.E}},
		{"leaf propagates nothing", Rule{Kind: Leaf}, nil, 5, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Increments(tt.inputs, tt.outValue, tt.outGrad)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.InDelta(t, w, got[i], 1e-12, "operand %d", i)
			}
		})
	}
}

// Increments is pure: multiplying into the same rule twice must give the
// same result both times.
func TestIncrementsPure(t *testing.T) {
	rule := Rule{Kind: Mul}
	first := rule.Increments([]float64{2, 3}, 6, 4)
	second := rule.Increments([]float64{2, 3}, 6, 4)
	assert.Equal(t, first, second)
}

func TestForwardFloatSemantics(t *testing.T) {
	t.Run("inv of zero is infinite", func(t *testing.T) {
		assert.True(t, math.IsInf(Rule{Kind: Inv}.Forward([]float64{0}), 1))
	})
	t.Run("fractional pow of negative base is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(Rule{Kind: Pow, Exponent: 0.5}.Forward([]float64{-4})))
	})
}

func TestArity(t *testing.T) {
	assert.Equal(t, 0, Leaf.Arity())
	assert.Equal(t, 2, Add.Arity())
	assert.Equal(t, 2, Mul.Arity())
	for _, k := range []Kind{Neg, Pow, Inv, ReLU, Exp} {
		assert.Equal(t, 1, k.Arity(), k.String())
	}
}

func TestArityMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Rule{Kind: Add}.Forward([]float64{1})
	})
	assert.Panics(t, func() {
		Rule{Kind: Neg}.Increments([]float64{1, 2}, -1, 1)
	})
}
