package golox

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// numberDelta is the tolerance used when comparing two numbers for
// equality. Two numbers whose absolute difference is below this value
// compare equal.
const numberDelta = 0.000001

// Value is the dynamic value type flowing through the evaluator.
// A Value wraps one of the language's runtime variants: nil, a bool,
// a number (IEEE-754 double), a string, or a callable (*Function or
// *NativeFunction). Values are immutable once constructed.
type Value struct {
	v reflect.Value
}

// AsValue wraps any Go value into a *Value. The evaluator only ever
// constructs the supported variants; native functions registered by
// embedders may additionally hand in Go integers, which are treated
// as numbers.
func AsValue(i any) *Value {
	return &Value{
		v: reflect.ValueOf(i),
	}
}

func (v *Value) getResolvedValue() reflect.Value {
	if v.v.IsValid() && v.v.Kind() == reflect.Ptr {
		return v.v.Elem()
	}
	return v.v
}

// IsNil reports whether this is the nil value.
func (v *Value) IsNil() bool {
	return !v.getResolvedValue().IsValid()
}

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool {
	return v.getResolvedValue().Kind() == reflect.Bool
}

// IsString reports whether the value is a string.
func (v *Value) IsString() bool {
	return v.getResolvedValue().Kind() == reflect.String
}

func (v *Value) isFloat() bool {
	return v.getResolvedValue().Kind() == reflect.Float32 ||
		v.getResolvedValue().Kind() == reflect.Float64
}

func (v *Value) isInteger() bool {
	switch v.getResolvedValue().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// IsNumber reports whether the value is a number.
func (v *Value) IsNumber() bool {
	return v.isFloat() || v.isInteger()
}

// IsCallable reports whether the value can be invoked with a call
// expression.
func (v *Value) IsCallable() bool {
	if !v.v.IsValid() {
		return false
	}
	_, ok := v.v.Interface().(Callable)
	return ok
}

// Bool returns the boolean content of the value; false if the value
// is not a boolean.
func (v *Value) Bool() bool {
	if v.IsBool() {
		return v.getResolvedValue().Bool()
	}
	return false
}

// Float returns the numeric content of the value as a float64; 0 if
// the value is not a number.
func (v *Value) Float() float64 {
	switch {
	case v.isFloat():
		return v.getResolvedValue().Float()
	case v.isInteger():
		return float64(v.getResolvedValue().Int())
	}
	return 0.0
}

// Callable returns the callable behind the value, or nil if the value
// is not callable.
func (v *Value) Callable() Callable {
	if !v.v.IsValid() {
		return nil
	}
	if c, ok := v.v.Interface().(Callable); ok {
		return c
	}
	return nil
}

// IsTrue implements the language's truthiness rule: nil and false are
// falsey, every other value (including 0 and "") is truthy.
func (v *Value) IsTrue() bool {
	if v.IsNil() {
		return false
	}
	if v.IsBool() {
		return v.getResolvedValue().Bool()
	}
	return true
}

// EqualValueTo implements the language's equality. Values of different
// variants are never equal and no implicit conversion is performed.
// Numbers compare equal when their absolute difference is below
// numberDelta; callables compare by identity.
func (v *Value) EqualValueTo(other *Value) bool {
	switch {
	case v.IsNil():
		return other.IsNil()
	case v.IsBool():
		return other.IsBool() && v.Bool() == other.Bool()
	case v.IsNumber():
		return other.IsNumber() && math.Abs(v.Float()-other.Float()) < numberDelta
	case v.IsString():
		return other.IsString() && v.getResolvedValue().String() == other.getResolvedValue().String()
	case v.IsCallable():
		return other.IsCallable() && v.v.Interface() == other.v.Interface()
	}
	return false
}

// String returns the display form of the value, as produced by the
// print statement: "nil", "true"/"false", the %g form for numbers
// (no decimal point when the %g form has none), the raw content for
// strings and the callable's own description for functions.
func (v *Value) String() string {
	switch {
	case v.IsNil():
		return "nil"
	case v.IsBool():
		if v.Bool() {
			return "true"
		}
		return "false"
	case v.isInteger():
		return strconv.FormatInt(v.getResolvedValue().Int(), 10)
	case v.isFloat():
		f := v.getResolvedValue().Float()
		switch {
		case math.IsInf(f, 1):
			return "inf"
		case math.IsInf(f, -1):
			return "-inf"
		case math.IsNaN(f):
			return "nan"
		}
		return fmt.Sprintf("%.6g", f)
	case v.IsString():
		return v.getResolvedValue().String()
	}
	if s, ok := v.v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return v.getResolvedValue().String()
}
