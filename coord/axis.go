package coord

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAxis = errors.New("invalid axis selector")

// Axis selects one, two or all three components of a Vec3.
// The zero value selects nothing and is rejected like any other
// value outside the declared constants.
type Axis uint8

const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
	AxisXY
	AxisXZ
	AxisYZ
	AxisXYZ
)

const (
	bitX uint8 = 1 << iota
	bitY
	bitZ
)

var axisBits = [...]uint8{
	AxisX:   bitX,
	AxisY:   bitY,
	AxisZ:   bitZ,
	AxisXY:  bitX | bitY,
	AxisXZ:  bitX | bitZ,
	AxisYZ:  bitY | bitZ,
	AxisXYZ: bitX | bitY | bitZ,
}

var axisNames = [...]string{
	AxisX:   "x",
	AxisY:   "y",
	AxisZ:   "z",
	AxisXY:  "xy",
	AxisXZ:  "xz",
	AxisYZ:  "yz",
	AxisXYZ: "xyz",
}

// Axes lists every valid selector.
func Axes() []Axis {
	return []Axis{AxisX, AxisY, AxisZ, AxisXY, AxisXZ, AxisYZ, AxisXYZ}
}

func (a Axis) Valid() bool {
	_, ok := a.bits()
	return ok
}

// Has reports whether component i (0, 1, 2 for X, Y, Z) is selected.
func (a Axis) Has(i int) bool {
	bits, ok := a.bits()
	if !ok || i < 0 || i > 2 {
		return false
	}
	return bits&(1<<i) != 0
}

func (a Axis) bits() (uint8, bool) {
	if a == 0 || int(a) >= len(axisBits) {
		return 0, false
	}
	return axisBits[a], true
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return axisNames[a]
}

// ParseAxis accepts the names "x" through "xyz", case-insensitively.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Axes() {
		if axisNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, invalidAxis(a)
	}
	return []byte(axisNames[a]), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func invalidAxis(a Axis) error {
	return fmt.Errorf("%w: %d", ErrInvalidAxis, uint8(a))
}
