package convert

import (
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/graphkit/internal/onnx"
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrInputNotFound     = errors.New("input model path does not exist")
	ErrUnsupportedFormat = errors.New("unsupported input or output file format")
)

// Options configures Convert.
type Options struct {
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns options that log nothing.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Convert re-encodes the model at in into out.
//
// out is written only once the input has been fully read and re-encoded,
// and the write is atomic: on any error out is left untouched.
func Convert(in, out string, opts Options) (Direction, error) {
	logger := opts.Logger
	if logger == nil {
		logger = DefaultOptions().Logger
	}

	if _, err := os.Stat(in); err != nil {
		if os.IsNotExist(err) {
			return DirectionNone, errors.Wrap(ErrInputNotFound, in)
		}
		return DirectionNone, errors.Wrapf(err, "failed to stat %s", in)
	}

	inFormat, outFormat := DetectFormat(in), DetectFormat(out)
	dir := DirectionOf(inFormat, outFormat)
	logger.Debug("inspected files",
		slog.String("input", in), slog.String("input_format", inFormat.String()),
		slog.String("output", out), slog.String("output_format", outFormat.String()),
		slog.String("direction", dir.String()))

	var (
		model *onnx.Model
		data  []byte
		err   error
	)
	switch dir {
	case BinaryToText:
		if model, err = onnx.LoadFile(in); err != nil {
			return dir, err
		}
		data, err = model.MarshalText()
	case TextToBinary:
		if model, err = onnx.LoadTextFile(in); err != nil {
			return dir, err
		}
		data, err = model.MarshalBinary()
	default:
		return dir, errors.Wrapf(ErrUnsupportedFormat, "%s (%s) -> %s (%s)", in, inFormat, out, outFormat)
	}
	if err != nil {
		return dir, err
	}
	logger.Debug("loaded model", slog.Any("model", model.Summary()))

	if err := onnx.WriteFileAtomic(out, data); err != nil {
		return dir, err
	}
	logger.Debug("wrote model", slog.String("output", out), slog.Int("bytes", len(data)))
	return dir, nil
}
