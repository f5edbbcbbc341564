package harness

import (
	"github.com/born-ml/graphkit/internal/backend"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrUnsupportedInput = errors.New("unsupported input: want a numeric scalar, slice or tensor")
	ErrTooManyInputs    = errors.New("too many inputs for alphabet parameter naming (max 26)")
	ErrNilOp            = errors.New("operation is nil")
	ErrNilOutput        = errors.New("operation returned a nil node")
)

// NodeOp builds the output node from one node per input, followed by the
// trailing fixed arguments given to RunOpNode.
type NodeOp func(nodes []*graph.Node, extra ...any) *graph.Node

// NumericOp builds the whole graph from a raw value; the value ends up as
// constants inside g.
type NumericOp func(g *graph.Graph, value any, extra ...any) *graph.Node

// Config configures a Harness.
type Config struct {
	// Backend selects the runtime created for each call.
	Backend backend.Config

	// Naming names the parameter created for each array input.
	Naming Naming

	// GraphName is the name given to each built graph.
	GraphName string
}

// DefaultConfig returns the default harness configuration: the default
// backend and IndexedNaming.
func DefaultConfig() Config {
	return Config{
		Backend:   backend.DefaultConfig(),
		Naming:    IndexedNaming,
		GraphName: "harness",
	}
}

// Harness builds and runs one-off computations.
// It holds no state across calls.
type Harness struct {
	cfg Config
}

// New returns a Harness for cfg. Zero fields take their DefaultConfig value.
func New(cfg Config) *Harness {
	def := DefaultConfig()
	if cfg.Backend.Backend == "" {
		cfg.Backend = def.Backend
	}
	if cfg.Naming == nil {
		cfg.Naming = def.Naming
	}
	if cfg.GraphName == "" {
		cfg.GraphName = def.GraphName
	}
	return &Harness{cfg: cfg}
}

// Config returns the harness configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Prepared is a compiled computation waiting for its single execution.
type Prepared struct {
	runtime *backend.Runtime

	// Computation binds the output node to the registered parameters.
	Computation *backend.Computation

	// Args are the array tensors, in parameter order.
	Args []*tensors.Tensor

	// ParamNames are the names of the registered parameters, in order.
	ParamNames []string

	// NumConstants counts the scalar inputs turned into constant nodes.
	NumConstants int
}

// Execute runs the computation with Args and releases the runtime.
func (p *Prepared) Execute() (*tensors.Tensor, error) {
	defer p.Close()
	return p.Computation.Call(p.Args...)
}

// Close releases the runtime without executing.
func (p *Prepared) Close() {
	if p.runtime != nil {
		p.runtime.Close()
	}
}

// RunOpNode turns inputs into nodes, applies op and returns the result of
// executing the compiled graph with the array inputs as arguments.
func (h *Harness) RunOpNode(inputs []Input, op NodeOp, extra ...any) (*tensors.Tensor, error) {
	p, err := h.PrepareOpNode(inputs, op, extra...)
	if err != nil {
		return nil, err
	}
	return p.Execute()
}

// PrepareOpNode does everything RunOpNode does except the execution.
func (h *Harness) PrepareOpNode(inputs []Input, op NodeOp, extra ...any) (*Prepared, error) {
	if op == nil {
		return nil, ErrNilOp
	}

	// Names first: a naming failure must not leave a runtime behind.
	names := make([]string, len(inputs))
	for idx, in := range inputs {
		switch in.Kind() {
		case KindScalar:
		case KindArray:
			name, err := h.cfg.Naming(idx)
			if err != nil {
				return nil, err
			}
			names[idx] = name
		default:
			return nil, errors.Wrapf(ErrUnsupportedInput, "input #%d", idx)
		}
	}

	rt, err := backend.NewRuntime(h.cfg.Backend)
	if err != nil {
		return nil, err
	}
	p := &Prepared{runtime: rt}

	var (
		output *graph.Node
		params []*graph.Node
	)
	err = exceptions.TryCatch[error](func() {
		g := rt.NewGraph(h.cfg.GraphName)
		nodes := make([]*graph.Node, len(inputs))
		for idx, in := range inputs {
			if in.Kind() == KindScalar {
				nodes[idx] = graph.Const(g, in.Value())
				p.NumConstants++
				continue
			}
			node := graph.Parameter(g, names[idx], in.Shape())
			nodes[idx] = node
			params = append(params, node)
			p.Args = append(p.Args, in.Tensor())
			p.ParamNames = append(p.ParamNames, names[idx])
		}
		output = op(nodes, extra...)
	})
	if err != nil {
		rt.Close()
		return nil, errors.WithMessage(err, "failed to build graph")
	}
	if output == nil {
		rt.Close()
		return nil, ErrNilOutput
	}

	p.Computation, err = rt.Computation(output, params...)
	if err != nil {
		rt.Close()
		return nil, err
	}
	return p, nil
}

// RunOpNumeric calls op with the raw value, so the value is frozen into the
// graph, and executes the result with no arguments.
func (h *Harness) RunOpNumeric(value any, op NumericOp, extra ...any) (*tensors.Tensor, error) {
	p, err := h.PrepareOpNumeric(value, op, extra...)
	if err != nil {
		return nil, err
	}
	return p.Execute()
}

// PrepareOpNumeric does everything RunOpNumeric does except the execution.
func (h *Harness) PrepareOpNumeric(value any, op NumericOp, extra ...any) (*Prepared, error) {
	if op == nil {
		return nil, ErrNilOp
	}
	rt, err := backend.NewRuntime(h.cfg.Backend)
	if err != nil {
		return nil, err
	}

	var output *graph.Node
	err = exceptions.TryCatch[error](func() {
		output = op(rt.NewGraph(h.cfg.GraphName), value, extra...)
	})
	if err != nil {
		rt.Close()
		return nil, errors.WithMessage(err, "failed to build graph")
	}
	if output == nil {
		rt.Close()
		return nil, ErrNilOutput
	}

	comp, err := rt.Computation(output)
	if err != nil {
		rt.Close()
		return nil, err
	}
	return &Prepared{runtime: rt, Computation: comp}, nil
}

// RunOpNode classifies values and runs op with DefaultConfig.
func RunOpNode(values []any, op NodeOp, extra ...any) (*tensors.Tensor, error) {
	inputs, err := Classify(values...)
	if err != nil {
		return nil, err
	}
	return New(DefaultConfig()).RunOpNode(inputs, op, extra...)
}

// RunOpNumeric runs op over value with DefaultConfig.
func RunOpNumeric(value any, op NumericOp, extra ...any) (*tensors.Tensor, error) {
	return New(DefaultConfig()).RunOpNumeric(value, op, extra...)
}
