package harness

import (
	"math"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(nodes []*graph.Node, _ ...any) *graph.Node {
	return graph.Add(nodes[0], nodes[1])
}

func mul(nodes []*graph.Node, _ ...any) *graph.Node {
	return graph.Mul(nodes[0], nodes[1])
}

func hypot(nodes []*graph.Node, _ ...any) *graph.Node {
	return graph.Sqrt(graph.Add(graph.Square(nodes[0]), graph.Square(nodes[1])))
}

// scale multiplies the only input by the first extra argument.
func scale(nodes []*graph.Node, extra ...any) *graph.Node {
	x := nodes[0]
	return graph.Mul(x, graph.Scalar(x.Graph(), x.DType(), extra[0]))
}

func mustClassify(t *testing.T, values ...any) []Input {
	t.Helper()
	inputs, err := Classify(values...)
	require.NoError(t, err)
	return inputs
}

func TestRunOpNodeAllScalars(t *testing.T) {
	h := New(DefaultConfig())
	p, err := h.PrepareOpNode(mustClassify(t, 2.5, 4.0), add)
	require.NoError(t, err)

	assert.Empty(t, p.Computation.Parameters())
	assert.Empty(t, p.Args)
	assert.Empty(t, p.ParamNames)
	assert.Equal(t, 2, p.NumConstants)

	out, err := p.Execute()
	require.NoError(t, err)
	assert.Equal(t, 2.5+4.0, out.Value())
}

func TestRunOpNodeArrayAndScalar(t *testing.T) {
	tests := []struct {
		name      string
		naming    Naming
		values    []any
		wantParam string
	}{
		{"alphabet array first", AlphabetNaming, []any{[]float32{1, 2, 3}, float32(2)}, "A"},
		{"alphabet array second", AlphabetNaming, []any{float32(2), []float32{1, 2, 3}}, "B"},
		{"indexed array first", IndexedNaming, []any{[]float32{1, 2, 3}, float32(2)}, "param_0"},
		{"indexed array second", IndexedNaming, []any{float32(2), []float32{1, 2, 3}}, "param_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Naming = tt.naming
			h := New(cfg)

			p, err := h.PrepareOpNode(mustClassify(t, tt.values...), mul)
			require.NoError(t, err)
			require.Len(t, p.Computation.Parameters(), 1)
			assert.Equal(t, []string{tt.wantParam}, p.ParamNames)
			assert.Equal(t, 1, p.NumConstants)
			require.Len(t, p.Args, 1)

			out, err := p.Execute()
			require.NoError(t, err)
			assert.Equal(t, []float32{2, 4, 6}, out.Value())
		})
	}
}

func TestRunOpNodeHypot(t *testing.T) {
	out, err := RunOpNode([]any{[]float64{3, 4}, []float64{5, 12}}, hypot)
	require.NoError(t, err)

	got, ok := out.Value().([]float64)
	require.True(t, ok, "unexpected result type %T", out.Value())
	want := []float64{math.Hypot(3, 5), math.Hypot(4, 12)}
	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestRunOpNodeParameterOrder(t *testing.T) {
	// Subtraction is not commutative: the arguments must be bound in input order.
	sub := func(nodes []*graph.Node, _ ...any) *graph.Node {
		return graph.Sub(graph.Sub(nodes[0], nodes[1]), nodes[2])
	}
	h := New(DefaultConfig())
	p, err := h.PrepareOpNode(mustClassify(t, []float64{10, 20}, 1.0, []float64{3, 4}), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{"param_0", "param_2"}, p.ParamNames)

	out, err := p.Execute()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, out.Value())
}

func TestRunOpNodeExtraArguments(t *testing.T) {
	h := New(DefaultConfig())
	out, err := h.RunOpNode(mustClassify(t, []float64{1, 2, 3}), scale, 10.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, out.Value())
}

func TestRunOpNodeMatrix(t *testing.T) {
	out, err := RunOpNode([]any{[][]float32{{1, 2}, {3, 4}}, float32(1)}, add)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 3}, {4, 5}}, out.Value())
}

func TestRunOpNodeTensorInput(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int32{1, 2, 3, 4}, 2, 2)
	out, err := RunOpNode([]any{x, x}, add)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{2, 4}, {6, 8}}, out.Value())
}

func TestRunOpNodeShapeMismatch(t *testing.T) {
	_, err := RunOpNode([]any{[]float64{1, 2}, []float64{1, 2, 3}}, add)
	require.Error(t, err)
}

func TestRunOpNodeDTypeMismatch(t *testing.T) {
	_, err := RunOpNode([]any{[]float64{1, 2}, float32(1)}, add)
	require.Error(t, err)
}

func TestRunOpNodeNilOutput(t *testing.T) {
	_, err := RunOpNode([]any{1.0}, func([]*graph.Node, ...any) *graph.Node { return nil })
	assert.True(t, errors.Is(err, ErrNilOutput))
}

func TestRunOpNodeNilOp(t *testing.T) {
	_, err := New(DefaultConfig()).RunOpNode(nil, nil)
	assert.True(t, errors.Is(err, ErrNilOp))
}

func TestRunOpNodeInvalidInput(t *testing.T) {
	_, err := New(DefaultConfig()).RunOpNode([]Input{{}}, add)
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
}

func TestRunOpNodeUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend.Backend = "no-such-backend"
	_, err := New(cfg).RunOpNode(mustClassify(t, 1.0, 2.0), add)
	require.Error(t, err)
}

func sumAll(nodes []*graph.Node, _ ...any) *graph.Node {
	sum := nodes[0]
	for _, n := range nodes[1:] {
		sum = graph.Add(sum, n)
	}
	return sum
}

func TestRunOpNodeManyInputs(t *testing.T) {
	values := make([]any, 30)
	for i := range values {
		values[i] = []float64{1}
	}
	inputs := mustClassify(t, values...)

	t.Run("alphabet naming fails past 26", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Naming = AlphabetNaming
		_, err := New(cfg).RunOpNode(inputs, sumAll)
		assert.True(t, errors.Is(err, ErrTooManyInputs))
	})

	t.Run("indexed naming has no limit", func(t *testing.T) {
		h := New(DefaultConfig())
		p, err := h.PrepareOpNode(inputs, sumAll)
		require.NoError(t, err)
		assert.Len(t, p.ParamNames, 30)
		assert.Equal(t, "param_29", p.ParamNames[29])

		out, err := p.Execute()
		require.NoError(t, err)
		assert.Equal(t, []float64{30}, out.Value())
	})
}

func TestRunOpNumeric(t *testing.T) {
	sqrt := func(g *graph.Graph, value any, _ ...any) *graph.Node {
		return graph.Sqrt(graph.Const(g, value))
	}

	h := New(DefaultConfig())
	p, err := h.PrepareOpNumeric([]float64{4, 9, 16}, sqrt)
	require.NoError(t, err)
	assert.Empty(t, p.Computation.Parameters())
	assert.Empty(t, p.Args)

	out, err := p.Execute()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, out.Value())
}

func TestRunOpNumericExtraArguments(t *testing.T) {
	addConst := func(g *graph.Graph, value any, extra ...any) *graph.Node {
		return graph.Add(graph.Const(g, value), graph.Const(g, extra[0]))
	}
	out, err := RunOpNumeric(1.5, addConst, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, out.Value())
}

func TestRunOpNumericErrors(t *testing.T) {
	_, err := RunOpNumeric(1.0, nil)
	assert.True(t, errors.Is(err, ErrNilOp))

	_, err = RunOpNumeric(1.0, func(*graph.Graph, any, ...any) *graph.Node { return nil })
	assert.True(t, errors.Is(err, ErrNilOutput))

	_, err = RunOpNumeric([]float64{1, 2}, func(g *graph.Graph, value any, _ ...any) *graph.Node {
		return graph.Add(graph.Const(g, value), graph.Const(g, []float64{1, 2, 3}))
	})
	require.Error(t, err)
}

func TestNewFillsDefaults(t *testing.T) {
	h := New(Config{})
	cfg := h.Config()
	assert.Equal(t, DefaultConfig().Backend, cfg.Backend)
	assert.Equal(t, DefaultConfig().GraphName, cfg.GraphName)
	require.NotNil(t, cfg.Naming)
	name, err := cfg.Naming(3)
	require.NoError(t, err)
	assert.Equal(t, "param_3", name)
}
