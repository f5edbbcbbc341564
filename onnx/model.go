// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package onnx

import internalonnx "github.com/born-ml/graphkit/internal/onnx"

// Model is an ONNX ModelProto held as a dynamic protobuf message.
//
// Use Message for reflective access, MarshalBinary and MarshalText to
// encode it, and Summary or Metadata to inspect it.
type Model = internalonnx.Model

// ModelInfo summarizes a model without interpreting its graph.
type ModelInfo = internalonnx.Summary

// OperatorSetID identifies an imported operator set.
type OperatorSetID = internalonnx.OperatorSetID

// NewModel returns an empty model.
func NewModel() (*Model, error) {
	return internalonnx.NewModel()
}
