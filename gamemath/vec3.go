package gamemath

// Vec3 is a 3-component world-space vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o component-wise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}
