// Package harness runs a single graph operation over concrete inputs.
//
// It is meant for operator tests: every input is classified once as a Scalar
// or an Array. Scalars become constant nodes baked into the graph, arrays
// become named parameter nodes fed at execution time. The caller's operation
// receives one node per input (in input order) plus any trailing fixed
// arguments and returns the output node, which is compiled and executed once
// on a freshly created runtime.
//
// Example usage:
//
//	h := harness.New(harness.DefaultConfig())
//	hypot := func(nodes []*graph.Node, _ ...any) *graph.Node {
//	    return graph.Sqrt(graph.Add(graph.Square(nodes[0]), graph.Square(nodes[1])))
//	}
//	inputs, _ := harness.Classify([]float64{3, 4}, []float64{5, 12})
//	result, err := h.RunOpNode(inputs, hypot)
package harness
