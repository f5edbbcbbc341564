// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package harness

import (
	"github.com/born-ml/graphkit/internal/backend"
	internalharness "github.com/born-ml/graphkit/internal/harness"
	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// Harness builds and runs one-off computations.
type Harness = internalharness.Harness

// Config configures a Harness.
type Config = internalharness.Config

// BackendConfig selects the execution backend.
type BackendConfig = backend.Config

// Input is a classified harness argument: a Scalar or an Array.
type Input = internalharness.Input

// Kind tells apart Scalar and Array inputs.
type Kind = internalharness.Kind

// Input kinds.
const (
	KindScalar = internalharness.KindScalar
	KindArray  = internalharness.KindArray
)

// NodeOp builds the output node from one node per input plus extra arguments.
type NodeOp = internalharness.NodeOp

// NumericOp builds the output node from a raw value baked into the graph.
type NumericOp = internalharness.NumericOp

// Naming names the parameter created for an array input.
type Naming = internalharness.Naming

// Prepared is a compiled computation waiting for execution.
type Prepared = internalharness.Prepared

// Errors.
var (
	ErrUnsupportedInput = internalharness.ErrUnsupportedInput
	ErrTooManyInputs    = internalharness.ErrTooManyInputs
	ErrNilOp            = internalharness.ErrNilOp
	ErrNilOutput        = internalharness.ErrNilOutput
)

// Parameter naming schemes.
var (
	IndexedNaming  Naming = internalharness.IndexedNaming
	AlphabetNaming Naming = internalharness.AlphabetNaming
)

// New creates a Harness.
//
// Example:
//
//	cfg := harness.DefaultConfig()
//	cfg.Backend.Backend = "xla:cpu"
//	h := harness.New(cfg)
func New(cfg Config) *Harness {
	return internalharness.New(cfg)
}

// DefaultConfig returns the default configuration: the "go" backend and
// IndexedNaming.
func DefaultConfig() Config {
	return internalharness.DefaultConfig()
}

// ConfigFromEnv returns DefaultConfig with the backend taken from the
// GRAPHKIT_BACKEND environment variable, if set. Files in envFiles (".env"
// by default) are loaded first; a malformed file is an error.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	b, err := backend.ConfigFromEnv(envFiles...)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	cfg.Backend = b
	return cfg, nil
}

// Scalar returns a scalar Input, compiled as a constant.
func Scalar(v any) Input {
	return internalharness.Scalar(v)
}

// Array returns an array Input, compiled as a parameter.
func Array(t *tensors.Tensor) Input {
	return internalharness.Array(t)
}

// Classify turns tensors, slices and numeric scalars into Inputs.
func Classify(values ...any) ([]Input, error) {
	return internalharness.Classify(values...)
}

// RunOpNode classifies values and runs op with DefaultConfig.
func RunOpNode(values []any, op NodeOp, extra ...any) (*tensors.Tensor, error) {
	return internalharness.RunOpNode(values, op, extra...)
}

// RunOpNumeric runs op over value, baked into the graph, with DefaultConfig.
func RunOpNumeric(value any, op NumericOp, extra ...any) (*tensors.Tensor, error) {
	return internalharness.RunOpNumeric(value, op, extra...)
}
