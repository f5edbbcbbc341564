// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package onnx loads, saves and converts ONNX models between binary and
// text form.
//
// # Formats
//
//   - .onnx: binary protobuf wire form
//   - .prototxt: protobuf text form
//
// The format of a file is decided by its extension only.
//
// # Example Usage
//
//	import "github.com/born-ml/graphkit/onnx"
//
//	// Binary to text
//	if _, err := onnx.Convert("model.onnx", "model.prototxt"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inspect a model
//	info, err := onnx.GetModelInfo("model.prototxt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Producer:", info.ProducerName)
//	fmt.Println("Opset:", info.OpsetVersion())
//	fmt.Println("Inputs:", info.Inputs)
//
// Conversion does not validate the graph and does not re-read its output.
package onnx

import (
	"github.com/born-ml/graphkit/internal/convert"
	internalonnx "github.com/born-ml/graphkit/internal/onnx"
	"github.com/pkg/errors"
)

// Format is the serialized form of a model file.
type Format = convert.Format

// Formats.
const (
	FormatUnknown = convert.FormatUnknown
	FormatBinary  = convert.FormatBinary
	FormatText    = convert.FormatText
)

// Direction is a supported conversion.
type Direction = convert.Direction

// Directions.
const (
	DirectionNone = convert.DirectionNone
	BinaryToText  = convert.BinaryToText
	TextToBinary  = convert.TextToBinary
)

// ConvertOptions configures Convert.
type ConvertOptions = convert.Options

// Errors returned by Convert.
var (
	ErrInputNotFound     = convert.ErrInputNotFound
	ErrUnsupportedFormat = convert.ErrUnsupportedFormat
)

// DetectFormat returns the format implied by the extension of path.
func DetectFormat(path string) Format {
	return convert.DetectFormat(path)
}

// Convert re-encodes the model at in into out. One path must be .onnx and
// the other .prototxt.
//
// Example:
//
//	dir, err := onnx.Convert("add.prototxt", "add.onnx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dir) // text-to-binary
func Convert(in, out string, opts ...ConvertOptions) (Direction, error) {
	opt := convert.DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	return convert.Convert(in, out, opt)
}

// Load reads a model, choosing the codec from the file extension.
func Load(path string) (*Model, error) {
	switch DetectFormat(path) {
	case FormatBinary:
		return internalonnx.LoadFile(path)
	case FormatText:
		return internalonnx.LoadTextFile(path)
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, path)
	}
}

// Save writes a model, choosing the codec from the file extension.
func Save(path string, m *Model) error {
	switch DetectFormat(path) {
	case FormatBinary:
		return internalonnx.SaveFile(path, m)
	case FormatText:
		return internalonnx.SaveTextFile(path, m)
	default:
		return errors.Wrap(ErrUnsupportedFormat, path)
	}
}

// ParseBinary decodes a model from binary wire form.
func ParseBinary(data []byte) (*Model, error) {
	return internalonnx.ParseBinary(data)
}

// ParseText decodes a model from text form. Unknown fields are skipped.
func ParseText(data []byte) (*Model, error) {
	return internalonnx.ParseText(data)
}

// GetModelInfo loads the model at path and summarizes it.
//
// Example:
//
//	info, err := onnx.GetModelInfo("model.onnx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Graph %s: %d nodes %v\n", info.GraphName, info.Nodes, info.OpTypes)
func GetModelInfo(path string) (*ModelInfo, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	info := m.Summary()
	return &info, nil
}
