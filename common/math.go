package common

import "github.com/go-gl/mathgl/mgl64"

// World space is right-handed: +Y up, and the camera looks down -Z at zero
// yaw. Vectors are mgl64.Vec3 throughout.

// RotateY rotates v about +Y by angle radians.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// Orientation is the rotation from the local frame of a yaw/pitch viewer to
// world space.
func Orientation(yaw, pitch float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(yaw).Mul3(mgl64.Rotate3DX(pitch))
}

// Forward is the view direction for a yaw/pitch pair.
func Forward(yaw, pitch float64) mgl64.Vec3 {
	return Orientation(yaw, pitch).Mul3x1(mgl64.Vec3{0, 0, -1})
}

// Normalize returns the unit vector of v, or the zero vector when v is zero.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}
