// Package convert converts ONNX models between binary (.onnx) and text
// (.prototxt) form.
//
// The direction is chosen from the file extensions alone. File content is
// never sniffed, so a misnamed file reaches the wrong codec and fails with
// that codec's parse error.
package convert
