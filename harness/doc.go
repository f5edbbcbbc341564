// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package harness runs single graph operations over concrete values, for
// operator tests.
//
// # Overview
//
// Each call:
//   - creates a fresh runtime for the configured backend
//   - turns scalar inputs into constant nodes and array inputs into named
//     parameter nodes
//   - calls the operation with one node per input plus trailing arguments
//   - compiles the output against the parameters and executes it once
//
// Nothing is cached between calls.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/graphkit/harness"
//	    "github.com/gomlx/gomlx/pkg/core/graph"
//	)
//
//	func TestHypot(t *testing.T) {
//	    hypot := func(nodes []*graph.Node, _ ...any) *graph.Node {
//	        return graph.Sqrt(graph.Add(graph.Square(nodes[0]), graph.Square(nodes[1])))
//	    }
//	    got, err := harness.RunOpNode([]any{[]float64{3, 4}, []float64{5, 12}}, hypot)
//	    ...
//	}
//
// # Backends
//
// The backend is a gomlx backend configuration string. The default, "go",
// is the pure Go backend. [ConfigFromEnv] reads GRAPHKIT_BACKEND, also from
// a .env file.
//
// # Parameter Names
//
// Parameters are named "param_<index>" by default ([IndexedNaming]).
// [AlphabetNaming] gives "A", "B", ... by input position and rejects more
// than 26 inputs.
package harness
