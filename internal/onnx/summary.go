package onnx

import (
	"log/slog"
	"sort"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// OperatorSetID identifies an imported operator set.
type OperatorSetID struct {
	Domain  string // Empty for the default ai.onnx domain
	Version int64
}

// Summary describes a model without interpreting its graph.
type Summary struct {
	IRVersion       int64
	ProducerName    string
	ProducerVersion string
	Domain          string
	ModelVersion    int64
	OpsetImport     []OperatorSetID
	GraphName       string
	Nodes           int
	OpTypes         map[string]int // Node count per op_type
	Initializers    int
	Inputs          []string // Graph inputs that are not initializers
	Outputs         []string
}

// Summary reads the model header and counts graph contents.
func (m *Model) Summary() Summary {
	r := m.msg.ProtoReflect()
	s := Summary{
		IRVersion:       getInt(r, "ir_version"),
		ProducerName:    getString(r, "producer_name"),
		ProducerVersion: getString(r, "producer_version"),
		Domain:          getString(r, "domain"),
		ModelVersion:    getInt(r, "model_version"),
		OpTypes:         make(map[string]int),
	}
	forEach(r, "opset_import", func(v protoreflect.Value) {
		opset := v.Message()
		s.OpsetImport = append(s.OpsetImport, OperatorSetID{
			Domain:  getString(opset, "domain"),
			Version: getInt(opset, "version"),
		})
	})

	g := getMessage(r, "graph")
	if g == nil {
		return s
	}
	s.GraphName = getString(g, "name")
	forEach(g, "node", func(v protoreflect.Value) {
		s.Nodes++
		s.OpTypes[getString(v.Message(), "op_type")]++
	})

	initializers := make(map[string]bool)
	forEach(g, "initializer", func(v protoreflect.Value) {
		s.Initializers++
		initializers[getString(v.Message(), "name")] = true
	})
	forEach(g, "input", func(v protoreflect.Value) {
		if name := getString(v.Message(), "name"); !initializers[name] {
			s.Inputs = append(s.Inputs, name)
		}
	})
	forEach(g, "output", func(v protoreflect.Value) {
		s.Outputs = append(s.Outputs, getString(v.Message(), "name"))
	})
	return s
}

// OpsetVersion returns the version of the default-domain operator set, or 0.
func (s Summary) OpsetVersion() int64 {
	for _, opset := range s.OpsetImport {
		if opset.Domain == "" || opset.Domain == "ai.onnx" {
			return opset.Version
		}
	}
	return 0
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	ops := make([]string, 0, len(s.OpTypes))
	for op := range s.OpTypes {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	return slog.GroupValue(
		slog.Int64("ir_version", s.IRVersion),
		slog.String("producer", s.ProducerName),
		slog.String("producer_version", s.ProducerVersion),
		slog.Int64("opset", s.OpsetVersion()),
		slog.String("graph", s.GraphName),
		slog.Int("nodes", s.Nodes),
		slog.Any("op_types", ops),
		slog.Int("initializers", s.Initializers),
		slog.Any("inputs", s.Inputs),
		slog.Any("outputs", s.Outputs),
	)
}

// Metadata returns metadata_props plus the producer fields as key-value pairs.
func (m *Model) Metadata() map[string]string {
	r := m.msg.ProtoReflect()
	meta := make(map[string]string)
	forEach(r, "metadata_props", func(v protoreflect.Value) {
		entry := v.Message()
		meta[getString(entry, "key")] = getString(entry, "value")
	})
	meta["producer_name"] = getString(r, "producer_name")
	meta["producer_version"] = getString(r, "producer_version")
	meta["domain"] = getString(r, "domain")
	return meta
}

func field(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(name)
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	fd := field(m, name)
	if fd == nil || !m.Has(fd) {
		return ""
	}
	return m.Get(fd).String()
}

func getInt(m protoreflect.Message, name protoreflect.Name) int64 {
	fd := field(m, name)
	if fd == nil || !m.Has(fd) {
		return 0
	}
	return m.Get(fd).Int()
}

func getMessage(m protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	fd := field(m, name)
	if fd == nil || !m.Has(fd) {
		return nil
	}
	return m.Get(fd).Message()
}

func forEach(m protoreflect.Message, name protoreflect.Name, fn func(protoreflect.Value)) {
	fd := field(m, name)
	if fd == nil || !fd.IsList() {
		return
	}
	list := m.Get(fd).List()
	for i := 0; i < list.Len(); i++ {
		fn(list.Get(i))
	}
}
