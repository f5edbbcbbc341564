package backend

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/backends"
	_ "github.com/gomlx/gomlx/backends/simplego" // Registers the "go" backend.
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrNilOutput       = errors.New("computation output node is nil")
	ErrForeignNode     = errors.New("node belongs to a different graph or backend")
	ErrParameterOrder  = errors.New("parameters do not match the graph's parameters in creation order")
	ErrArgumentCount   = errors.New("number of arguments does not match number of parameters")
	ErrRuntimeClosed   = errors.New("runtime is closed")
	ErrNoOutputTensors = errors.New("computation produced no output")
)

// Runtime is a handle to one execution backend.
type Runtime struct {
	cfg     Config
	backend backends.Backend
}

// NewRuntime creates a Runtime for cfg.Backend.
func NewRuntime(cfg Config) (*Runtime, error) {
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	b, err := backends.NewWithConfig(cfg.Backend)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create backend %q", cfg.Backend)
	}
	return &Runtime{cfg: cfg, backend: b}, nil
}

// Config returns the configuration the runtime was created with.
func (r *Runtime) Config() Config {
	return r.cfg
}

// Backend returns the underlying gomlx backend.
func (r *Runtime) Backend() backends.Backend {
	return r.backend
}

// NewGraph creates an empty graph on the runtime's backend.
func (r *Runtime) NewGraph(name string) *graph.Graph {
	return graph.NewGraph(r.backend, name)
}

// Computation compiles output against the ordered params.
//
// params must be exactly the parameters created in output's graph, in creation
// order; gomlx binds call arguments by that order.
func (r *Runtime) Computation(output *graph.Node, params ...*graph.Node) (*Computation, error) {
	if r.backend == nil {
		return nil, ErrRuntimeClosed
	}
	if output == nil {
		return nil, ErrNilOutput
	}
	g := output.Graph()
	if g.Backend() != r.backend {
		return nil, errors.Wrap(ErrForeignNode, "output graph was created on another runtime")
	}
	for i, p := range params {
		if p == nil || p.Graph() != g {
			return nil, errors.Wrapf(ErrForeignNode, "parameter #%d", i)
		}
	}
	if n := g.NumParameters(); n != len(params) {
		return nil, errors.Wrapf(ErrParameterOrder, "got %d parameters, graph has %d", len(params), n)
	}
	for i, p := range params {
		if p.Type() != graph.NodeTypeParameter || g.GetParameterByHandle(graph.ParameterHandle(i)) != p {
			return nil, errors.Wrapf(ErrParameterOrder, "parameter #%d", i)
		}
	}

	err := exceptions.TryCatch[error](func() {
		g.Compile(output)
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to compile computation")
	}
	return &Computation{graph: g, output: output, params: params}, nil
}

// Close releases the backend. Tensors returned by Computation.Call are
// detached from the backend and remain valid.
func (r *Runtime) Close() {
	if r.backend == nil {
		return
	}
	r.backend.Finalize()
	r.backend = nil
}

// Computation is a compiled graph: one output bound to ordered parameters.
type Computation struct {
	graph  *graph.Graph
	output *graph.Node
	params []*graph.Node
}

// Parameters returns the parameter nodes in binding order.
func (c *Computation) Parameters() []*graph.Node {
	return c.params
}

// Output returns the output node.
func (c *Computation) Output() *graph.Node {
	return c.output
}

// Call executes the computation with args bound to Parameters by position.
func (c *Computation) Call(args ...*tensors.Tensor) (*tensors.Tensor, error) {
	if len(args) != len(c.params) {
		return nil, errors.Wrapf(ErrArgumentCount, "got %d arguments for %d parameters", len(args), len(c.params))
	}
	inputs := make([]any, len(args))
	for i, a := range args {
		inputs[i] = a
	}

	var outputs []*tensors.Tensor
	err := exceptions.TryCatch[error](func() {
		outputs = c.graph.Run(inputs...)
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to execute computation")
	}
	if len(outputs) == 0 {
		return nil, ErrNoOutputTensors
	}
	result := outputs[0]
	if err := result.ToLocal(); err != nil {
		return nil, errors.WithMessage(err, "failed to transfer result")
	}
	return result, nil
}
