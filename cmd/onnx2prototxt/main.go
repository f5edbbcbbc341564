// Package main provides onnx2prototxt, a converter between binary (.onnx)
// and text (.prototxt) ONNX models.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/graphkit/internal/convert"
	"github.com/pkg/errors"
)

const version = "v0.1.0"

const usage = `Converts ONNX models from binary format into text format and vice-versa.

Supports files with only '.onnx' or '.prototxt' extensions.

Usage:
  onnx2prototxt [-v] <input_file> <output_file>
  onnx2prototxt version

Arguments:
  <input_file>   The path for the input model file.
  <output_file>  The path for the converted model file.

Options:
  -h --help      show this help message and exit
  -v             log conversion details to stderr
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("onnx2prototxt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "log conversion details to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, usage)
			return 0
		}
		fmt.Fprintf(stderr, "ERROR: %v\n\n%s", err, usage)
		return 2
	}

	if fs.NArg() == 1 && fs.Arg(0) == "version" {
		fmt.Fprintf(stdout, "onnx2prototxt %s\n", version)
		return 0
	}
	if fs.NArg() != 2 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	in, out := fs.Arg(0), fs.Arg(1)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if _, err := convert.Convert(in, out, convert.Options{Logger: logger}); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", describe(err, in))
		return 1
	}
	return 0
}

// describe turns a conversion error into the message shown to the user.
func describe(err error, in string) string {
	switch {
	case errors.Is(err, convert.ErrInputNotFound):
		return fmt.Sprintf("Provided input model path does not exist: %s", in)
	case errors.Is(err, convert.ErrUnsupportedFormat):
		return "Provided input or output file has unsupported format."
	default:
		return err.Error()
	}
}
