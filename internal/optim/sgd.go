// Package optim provides optimizers for the scalar nn modules.
package optim

import "github.com/mote-ml/mote/internal/scalar"

// SGD implements stochastic gradient descent with optional momentum over a
// set of leaf parameters.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	for range epochs {
//	    loss := buildLoss(model)   // rebuilds the expression graph
//	    scalar.Backward(loss)
//	    sgd.Step()
//	}
type SGD struct {
	params     []*scalar.Value
	lr         float64
	momentum   float64
	velocities map[*scalar.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates an SGD optimizer over the given leaf parameters.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if config.Momentum > 0 {
		s.velocities = make(map[*scalar.Value]float64, len(params))
	}
	return s
}

// Step applies one update to every parameter from its current gradient.
// Call after a Backward pass over the loss.
func (s *SGD) Step() {
	for _, p := range s.params {
		update := p.Grad()
		if s.velocities != nil {
			v := s.momentum*s.velocities[p] + update
			s.velocities[p] = v
			update = v
		}
		p.SetValue(p.Value() - s.lr*update)
	}
}

// ZeroGrad clears every parameter gradient.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ClearGrad()
	}
}
