package onnx

import (
	"os"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Model is an ONNX ModelProto held as a dynamic message.
type Model struct {
	msg *dynamicpb.Message
}

// NewModel returns an empty model.
func NewModel() (*Model, error) {
	md, err := Schema()
	if err != nil {
		return nil, err
	}
	return &Model{msg: dynamicpb.NewMessage(md)}, nil
}

// Message returns the underlying protobuf message.
func (m *Model) Message() proto.Message {
	return m.msg
}

// ParseBinary decodes a model from its binary wire form.
func ParseBinary(data []byte) (*Model, error) {
	m, err := NewModel()
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(data, m.msg); err != nil {
		return nil, errors.Wrap(err, "failed to parse binary model")
	}
	return m, nil
}

// ParseText decodes a model from protobuf text form.
//
// Unknown fields, including fields referenced by a number the schema does
// not define, are skipped. Known fields must be written by name; "1: 7" in
// place of "ir_version: 7" is an error.
func ParseText(data []byte) (*Model, error) {
	m, err := NewModel()
	if err != nil {
		return nil, err
	}
	opts := prototext.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, m.msg); err != nil {
		return nil, errors.Wrap(err, "failed to parse text model")
	}
	return m, nil
}

// MarshalBinary encodes the model in binary wire form. Output is
// deterministic for a given model.
func (m *Model) MarshalBinary() ([]byte, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(m.msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode binary model")
	}
	return data, nil
}

// MarshalText encodes the model in multi-line protobuf text form.
//
// Strings are written as UTF-8; floats use the shortest representation that
// parses back to the same value.
func (m *Model) MarshalText() ([]byte, error) {
	opts := prototext.MarshalOptions{Multiline: true, Indent: "  "}
	data, err := opts.Marshal(m.msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode text model")
	}
	return data, nil
}

// Equal reports whether both models hold the same message.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	return proto.Equal(m.msg, other.msg)
}

// LoadFile reads a binary model from path.
//
//nolint:gosec // G304: the path is chosen by the user on purpose
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return ParseBinary(data)
}

// LoadTextFile reads a text model from path.
//
//nolint:gosec // G304: the path is chosen by the user on purpose
func LoadTextFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return ParseText(data)
}

// SaveFile writes m to path in binary form.
func SaveFile(path string, m *Model) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

// SaveTextFile writes m to path in text form.
func SaveTextFile(path string, m *Model) error {
	data, err := m.MarshalText()
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic replaces path with data, so path never holds partial
// content.
func WriteFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
