package onnx

import (
	"context"
	_ "embed"
	"sync"

	"github.com/bufbuild/protocompile"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/reflect/protoreflect"
)

//go:embed onnx.proto
var schemaSource string

const schemaPath = "onnx.proto"

// Message names in the ONNX schema.
const (
	ModelProtoName  protoreflect.Name = "ModelProto"
	TensorProtoName protoreflect.Name = "TensorProto"
)

var (
	schemaOnce sync.Once
	schemaFile protoreflect.FileDescriptor
	schemaErr  error
)

// SchemaFile returns the compiled descriptor of the embedded ONNX schema.
func SchemaFile() (protoreflect.FileDescriptor, error) {
	schemaOnce.Do(func() {
		schemaFile, schemaErr = compileSchema()
	})
	return schemaFile, schemaErr
}

// Schema returns the descriptor of onnx.ModelProto.
func Schema() (protoreflect.MessageDescriptor, error) {
	return MessageDescriptor(ModelProtoName)
}

// MessageDescriptor returns the descriptor of a top-level ONNX message.
func MessageDescriptor(name protoreflect.Name) (protoreflect.MessageDescriptor, error) {
	fd, err := SchemaFile()
	if err != nil {
		return nil, err
	}
	md := fd.Messages().ByName(name)
	if md == nil {
		return nil, errors.Errorf("message %q not found in ONNX schema", name)
	}
	return md, nil
}

func compileSchema() (protoreflect.FileDescriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				schemaPath: schemaSource,
			}),
		},
	}
	files, err := compiler.Compile(context.Background(), schemaPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile ONNX schema")
	}
	if len(files) != 1 {
		return nil, errors.Errorf("compiling ONNX schema produced %d files", len(files))
	}
	return files[0], nil
}
