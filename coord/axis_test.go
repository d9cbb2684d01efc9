package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAxisHas(t *testing.T) {
	tests := []struct {
		axis    Axis
		x, y, z bool
	}{
		{AxisX, true, false, false},
		{AxisY, false, true, false},
		{AxisZ, false, false, true},
		{AxisXY, true, true, false},
		{AxisXZ, true, false, true},
		{AxisYZ, false, true, true},
		{AxisXYZ, true, true, true},
		{0, false, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.x, tt.axis.Has(0), "%s x", tt.axis)
		assert.Equal(t, tt.y, tt.axis.Has(1), "%s y", tt.axis)
		assert.Equal(t, tt.z, tt.axis.Has(2), "%s z", tt.axis)
		assert.False(t, tt.axis.Has(3))
	}
}

func TestParseAxis(t *testing.T) {
	for _, a := range Axes() {
		require.True(t, a.Valid())

		parsed, err := ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)

		text, err := a.MarshalText()
		require.NoError(t, err)
		var back Axis
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}

	parsed, err := ParseAxis("XZ")
	require.NoError(t, err)
	assert.Equal(t, AxisXZ, parsed)

	_, err = ParseAxis("w")
	assert.ErrorIs(t, err, ErrInvalidAxis)

	_, err = Axis(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidAxis)
	assert.Equal(t, "Axis(42)", Axis(42).String())
}

func TestEditYAML(t *testing.T) {
	var edits []Edit
	err := yaml.Unmarshal([]byte(`
- {op: add, axis: xy, value: 2}
- {op: Divide, axis: Z, value: 0.5}
`), &edits)
	require.NoError(t, err)
	assert.Equal(t, []Edit{
		{Op: OpAdd, Axis: AxisXY, Value: 2},
		{Op: OpDivide, Axis: AxisZ, Value: 0.5},
	}, edits)

	out, err := yaml.Marshal(edits[0])
	require.NoError(t, err)
	assert.Equal(t, "op: add\naxis: xy\nvalue: 2\n", string(out))

	err = yaml.Unmarshal([]byte(`{op: add, axis: w, value: 1}`), &edits[0])
	assert.ErrorIs(t, err, ErrInvalidAxis)
}
