package coord

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidOperation = errors.New("invalid operation")

// Func combines a selected component with the edit value.
type Func func(component, value float32) float32

// Apply runs fn on every component selected by axis and copies the rest.
func Apply(v Vec3, axis Axis, value float32, fn Func) (Vec3, error) {
	bits, ok := axis.bits()
	if !ok {
		return Vec3{}, invalidAxis(axis)
	}
	return apply(v, bits, value, fn), nil
}

func apply(v Vec3, bits uint8, value float32, fn Func) Vec3 {
	if bits&bitX != 0 {
		v.X = fn(v.X, value)
	}
	if bits&bitY != 0 {
		v.Y = fn(v.Y, value)
	}
	if bits&bitZ != 0 {
		v.Z = fn(v.Z, value)
	}
	return v
}

func setOp(_, value float32) float32 { return value }
func addOp(c, value float32) float32 { return c + value }
func subOp(c, value float32) float32 { return c - value }
func mulOp(c, value float32) float32 { return c * value }
func divOp(c, value float32) float32 { return c / value }

func Set(v Vec3, axis Axis, value float32) (Vec3, error) {
	return Apply(v, axis, value, setOp)
}

func Add(v Vec3, axis Axis, value float32) (Vec3, error) {
	return Apply(v, axis, value, addOp)
}

func Subtract(v Vec3, axis Axis, value float32) (Vec3, error) {
	return Apply(v, axis, value, subOp)
}

func Multiply(v Vec3, axis Axis, value float32) (Vec3, error) {
	return Apply(v, axis, value, mulOp)
}

// Divide does not guard against a zero value; the selected components
// become ±Inf or NaN.
func Divide(v Vec3, axis Axis, value float32) (Vec3, error) {
	return Apply(v, axis, value, divOp)
}

// Operation names one of the five arithmetic kinds.
type Operation uint8

const (
	OpSet Operation = iota + 1
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operations = [...]struct {
	name string
	fn   Func
}{
	OpSet:      {"set", setOp},
	OpAdd:      {"add", addOp},
	OpSubtract: {"subtract", subOp},
	OpMultiply: {"multiply", mulOp},
	OpDivide:   {"divide", divOp},
}

func (o Operation) Valid() bool {
	return o != 0 && int(o) < len(operations)
}

// Func returns the operator for o, or nil if o is not a declared kind.
func (o Operation) Func() Func {
	if !o.Valid() {
		return nil
	}
	return operations[o].fn
}

func (o Operation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operation(%d)", uint8(o))
	}
	return operations[o].name
}

func ParseOperation(s string) (Operation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o := OpSet; o <= OpDivide; o++ {
		if operations[o].name == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, s)
}

func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOperation, uint8(o))
	}
	return []byte(operations[o].name), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Edit is one operation applied to the selected axes.
type Edit struct {
	Op    Operation `yaml:"op"`
	Axis  Axis      `yaml:"axis"`
	Value float32   `yaml:"value"`
}

func (e Edit) Apply(v Vec3) (Vec3, error) {
	fn := e.Op.Func()
	if fn == nil {
		return Vec3{}, fmt.Errorf("%w: %d", ErrInvalidOperation, uint8(e.Op))
	}
	return Apply(v, e.Axis, e.Value, fn)
}

func (e Edit) String() string {
	return fmt.Sprintf("%s %s %g", e.Op, e.Axis, e.Value)
}

// ApplyAll applies edits in order and stops at the first failure.
func ApplyAll(v Vec3, edits ...Edit) (Vec3, error) {
	for i, e := range edits {
		var err error
		if v, err = e.Apply(v); err != nil {
			return Vec3{}, fmt.Errorf("edit %d: %w", i, err)
		}
	}
	return v, nil
}
