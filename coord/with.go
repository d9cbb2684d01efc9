package coord

// The With helpers address components by name instead of by Axis.
// With add=false the components are replaced, otherwise the values
// are added to them.

func withFunc(add bool) Func {
	if add {
		return addOp
	}
	return setOp
}

func WithX(v Vec3, x float32, add bool) Vec3 {
	return apply(v, bitX, x, withFunc(add))
}

func WithY(v Vec3, y float32, add bool) Vec3 {
	return apply(v, bitY, y, withFunc(add))
}

func WithZ(v Vec3, z float32, add bool) Vec3 {
	return apply(v, bitZ, z, withFunc(add))
}

func WithXY(v Vec3, x, y float32, add bool) Vec3 {
	return WithY(WithX(v, x, add), y, add)
}

func WithXZ(v Vec3, x, z float32, add bool) Vec3 {
	return WithZ(WithX(v, x, add), z, add)
}

func WithYZ(v Vec3, y, z float32, add bool) Vec3 {
	return WithZ(WithY(v, y, add), z, add)
}

func WithXYZ(v Vec3, x, y, z float32, add bool) Vec3 {
	return WithZ(WithXY(v, x, y, add), z, add)
}
