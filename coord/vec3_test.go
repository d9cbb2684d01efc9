package coord

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestApproxEqual(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.True(t, v.ApproxEqual(Vec3{1, 2, 3.000001}, eps))
	assert.False(t, v.ApproxEqual(Vec3{1, 2.1, 3}, eps))
	assert.False(t, v.ApproxEqual(Vec3{1, 2, math32.NaN()}, eps))
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		v        Vec3
		max, min float32
	}{
		{Vec3{1, 5, 3}, 5, 1},
		{Vec3{1, 2, 9}, 9, 1},
		{Vec3{7, 2, -9}, 7, -9},
		{Vec3{4, 4, 4}, 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.max, tt.v.Max(), tt.v.String())
		assert.Equal(t, tt.min, tt.v.Min(), tt.v.String())
	}
}

func TestComponent(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, float32(1), v.Component(0))
	assert.Equal(t, float32(2), v.Component(1))
	assert.Equal(t, float32(3), v.Component(2))
	assert.Panics(t, func() { v.Component(3) })
}

func TestVec3String(t *testing.T) {
	assert.Equal(t, "(0.5, -1, 3)", Vec3{0.5, -1, 3}.String())
}
