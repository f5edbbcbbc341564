// Package backend wraps a gomlx execution backend as a small runtime facility.
//
// A Runtime is bound to one backend configuration string (e.g. "go" for the
// pure Go simplego backend, or "xla:cpu" when the XLA plugin is installed).
// It builds graphs, compiles a single output node against an ordered list of
// parameter nodes into a Computation, and executes it with positional tensors.
//
// gomlx reports graph construction and execution failures by panicking; this
// package converts those panics into returned errors and keeps their messages.
//
// Example usage:
//
//	rt, err := backend.NewRuntime(backend.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	g := rt.NewGraph("double")
//	x := graph.Parameter(g, "x", shapes.Make(dtypes.Float64, 3))
//	comp, err := rt.Computation(graph.MulScalar(x, 2), x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := comp.Call(tensors.FromAnyValue([]float64{1, 2, 3}))
package backend
