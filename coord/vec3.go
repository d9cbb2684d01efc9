package coord

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a value-type triple of float32 components.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Max returns the largest component.
func (v Vec3) Max() float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}

// Min returns the smallest component.
func (v Vec3) Min() float32 {
	return math32.Min(v.X, math32.Min(v.Y, v.Z))
}

// Component returns X, Y or Z for i = 0, 1, 2. It panics on any other index.
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("coord: component index %d out of range", i))
}

func (v Vec3) ApproxEqual(u Vec3, eps float32) bool {
	return math32.Abs(v.X-u.X) <= eps &&
		math32.Abs(v.Y-u.Y) <= eps &&
		math32.Abs(v.Z-u.Z) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
