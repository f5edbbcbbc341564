package harness

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Kind tells apart the two input variants.
type Kind int

// Input kinds.
const (
	KindInvalid Kind = iota
	KindScalar
	KindArray
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindArray:
		return "Array"
	default:
		return "Invalid"
	}
}

// Input is one argument of a harness call: either a Scalar, turned into a
// constant node, or an Array, turned into a parameter node.
type Input struct {
	kind   Kind
	value  any
	tensor *tensors.Tensor
}

// Scalar returns a scalar Input. v must be a Go numeric scalar.
func Scalar(v any) Input {
	return Input{kind: KindScalar, value: v}
}

// Array returns an array Input backed by t.
func Array(t *tensors.Tensor) Input {
	return Input{kind: KindArray, tensor: t}
}

// Kind returns the input variant.
func (in Input) Kind() Kind { return in.kind }

// Value returns the scalar value, or nil for arrays.
func (in Input) Value() any { return in.value }

// Tensor returns the array tensor, or nil for scalars.
func (in Input) Tensor() *tensors.Tensor { return in.tensor }

// DType returns the element type of the input.
func (in Input) DType() dtypes.DType {
	switch in.kind {
	case KindScalar:
		return dtypes.FromAny(in.value)
	case KindArray:
		return in.tensor.Shape().DType
	default:
		return dtypes.InvalidDType
	}
}

// Shape returns the shape of the input; scalars have rank 0.
func (in Input) Shape() shapes.Shape {
	if in.kind == KindArray {
		return in.tensor.Shape()
	}
	return shapes.Make(in.DType())
}

// Classify turns raw values into Inputs.
//
// Tensors and Go slices (of any rank) become Arrays; Go numeric scalars,
// bool and float16.Float16 become Scalars. Inputs are passed through.
func Classify(values ...any) ([]Input, error) {
	inputs := make([]Input, len(values))
	for i, v := range values {
		in, err := classify(v)
		if err != nil {
			return nil, errors.WithMessagef(err, "input #%d", i)
		}
		inputs[i] = in
	}
	return inputs, nil
}

func classify(v any) (Input, error) {
	switch x := v.(type) {
	case Input:
		if x.kind == KindInvalid {
			return Input{}, ErrUnsupportedInput
		}
		return x, nil
	case *tensors.Tensor:
		if x == nil {
			return Input{}, errors.Wrap(ErrUnsupportedInput, "nil tensor")
		}
		return Array(x), nil
	case float16.Float16:
		return Scalar(x), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Input{}, errors.Wrap(ErrUnsupportedInput, "nil value")
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var t *tensors.Tensor
		err := exceptions.TryCatch[error](func() {
			t = tensors.FromAnyValue(v)
		})
		if err != nil {
			return Input{}, errors.Wrapf(ErrUnsupportedInput, "%T: %v", v, err)
		}
		return Array(t), nil
	}

	if dtypes.FromAny(v) == dtypes.InvalidDType {
		return Input{}, errors.Wrapf(ErrUnsupportedInput, "%T", v)
	}
	return Scalar(v), nil
}
