// Copyright 2026 The Mote Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural-network building blocks: Neuron, Layer
// and MLP, built on the scalar computation graph so their outputs are
// differentiable end to end.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	out := model.Forward(inputs)[0]
//	scalar.Backward(out)
//	// model.Parameters() now carry gradients for an optimizer.
package nn

import "github.com/mote-ml/mote/internal/nn"

// Module is the base interface for all network components.
type Module = nn.Module

// Neuron computes relu(w·x + b) over scalar inputs.
type Neuron = nn.Neuron

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewNeuron creates a neuron with nin inputs. When nonlinear is false the
// ReLU is omitted (output/logit neurons).
func NewNeuron(nin int, nonlinear bool) *Neuron {
	return nn.NewNeuron(nin, nonlinear)
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	return nn.NewLayer(nin, nout, nonlinear)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}
