package convert

import (
	"path/filepath"
)

// File extensions.
const (
	BinaryExt = ".onnx"
	TextExt   = ".prototxt"
)

// Format is the serialized form of a model file.
type Format int

// Formats.
const (
	FormatUnknown Format = iota
	FormatBinary
	FormatText
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat returns the format implied by the extension of path.
// Matching is exact: ".ONNX" is not ".onnx".
func DetectFormat(path string) Format {
	switch filepath.Ext(path) {
	case BinaryExt:
		return FormatBinary
	case TextExt:
		return FormatText
	default:
		return FormatUnknown
	}
}

// Direction is a supported conversion.
type Direction int

// Directions.
const (
	DirectionNone Direction = iota
	BinaryToText
	TextToBinary
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case BinaryToText:
		return "binary-to-text"
	case TextToBinary:
		return "text-to-binary"
	default:
		return "none"
	}
}

// DirectionOf returns the conversion from in to out, or DirectionNone if the
// pair is not one binary and one text file.
func DirectionOf(in, out Format) Direction {
	switch {
	case in == FormatBinary && out == FormatText:
		return BinaryToText
	case in == FormatText && out == FormatBinary:
		return TextToBinary
	default:
		return DirectionNone
	}
}
