// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package harness_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/born-ml/graphkit/harness"
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHypot(t *testing.T) {
	hypot := func(nodes []*graph.Node, _ ...any) *graph.Node {
		return graph.Sqrt(graph.Add(graph.Square(nodes[0]), graph.Square(nodes[1])))
	}
	out, err := harness.RunOpNode([]any{[]float64{3, 4}, []float64{5, 12}}, hypot)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Hypot(3, 5), math.Hypot(4, 12)}, out.Value(), 1e-12)
}

func TestAlphabetNaming(t *testing.T) {
	cfg := harness.DefaultConfig()
	cfg.Naming = harness.AlphabetNaming
	h := harness.New(cfg)

	inputs, err := harness.Classify(2.0, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, harness.KindScalar, inputs[0].Kind())
	assert.Equal(t, harness.KindArray, inputs[1].Kind())

	p, err := h.PrepareOpNode(inputs, func(nodes []*graph.Node, _ ...any) *graph.Node {
		return graph.Mul(nodes[0], nodes[1])
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, p.ParamNames)

	out, err := p.Execute()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, out.Value())
}

func TestRunOpNumeric(t *testing.T) {
	out, err := harness.RunOpNumeric(-3.0, func(g *graph.Graph, value any, _ ...any) *graph.Node {
		return graph.Abs(graph.Const(g, value))
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.Value())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GRAPHKIT_BACKEND", "go")
	cfg, err := harness.ConfigFromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "go", cfg.Backend.Backend)
	require.NotNil(t, cfg.Naming)
}
