// Package onnx loads, saves and re-encodes ONNX models.
//
// The ONNX IR schema (onnx.proto) is embedded in the binary and compiled at
// first use; models are held as dynamic protobuf messages of type
// onnx.ModelProto. Binary (.onnx) encoding goes through proto.Marshal and
// proto.Unmarshal, text (.prototxt) encoding through prototext. Nothing here
// interprets the graph: a Model is only decoded and re-encoded.
//
// Example usage:
//
//	model, err := onnx.LoadFile("add.onnx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := model.MarshalText()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s", text)
package onnx
