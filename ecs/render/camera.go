package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/common"
)

// Camera is a perspective camera with a vertical field of view. The view
// looks down local -Z; yaw turns about +Y and pitch about the local X axis.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64

	FOV  float64 // degrees
	Near float64
	Far  float64

	Width  float64
	Height float64
}

func NewCamera(fov, near, far float64) *Camera {
	return &Camera{
		FOV:    fov,
		Near:   near,
		Far:    far,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}
}

// SetViewport updates the output size; the aspect follows it.
func (c *Camera) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width, c.Height = width, height
}

func (c *Camera) Aspect() float64 {
	if c.Height <= 0 {
		return 1
	}
	return c.Width / c.Height
}

// View is the world-to-camera transform: translate to the eye, undo yaw,
// then undo pitch.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(-c.Pitch).
		Mul4(mgl64.HomogRotate3DY(-c.Yaw)).
		Mul4(mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// Projection is the perspective matrix for the current viewport.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
}

// ToView moves a world point into camera space.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return c.View().Mul4x1(p.Vec4(1)).Vec3()
}

// focal is the projection's vertical scale, 1/tan(fov/2).
func (c *Camera) focal() float64 {
	return c.Projection().At(1, 1)
}

// Project maps a world point to screen pixels. ok is false when the point is
// outside the near and far planes.
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	return c.ProjectView(c.ToView(p))
}

// PixelsPerUnit is how many screen pixels one world unit spans at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return c.focal() / depth * c.Height / 2
}

// FogFactor is the linear fog blend at depth: 0 before near, 1 past far.
func FogFactor(near, far, depth float64) float64 {
	if far <= near {
		return 0
	}
	return common.Clamp((depth-near)/(far-near), 0, 1)
}

// ProjectView maps a camera-space point to screen pixels.
func (c *Camera) ProjectView(v mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.Projection().Mul4x1(v.Vec4(1))
	depth = clip.W()
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	x = (clip.X()/depth + 1) / 2 * c.Width
	y = (1 - clip.Y()/depth) / 2 * c.Height
	return x, y, depth, true
}

// ViewRay returns the world direction through screen pixel (sx, sy). The
// direction is scaled so its component along the view axis is 1.
func (c *Camera) ViewRay(sx, sy float64) mgl64.Vec3 {
	f := c.focal()
	ndcX := sx/c.Width*2 - 1
	ndcY := 1 - sy/c.Height*2
	v := mgl64.Vec3{ndcX * c.Aspect() / f, ndcY / f, -1}
	return common.Orientation(c.Yaw, c.Pitch).Mul3x1(v)
}

// GroundDepth is the view depth at which the screen row sy meets the y=0
// plane, or false when the row is at or above the horizon.
func (c *Camera) GroundDepth(sy float64) (float64, bool) {
	dir := c.ViewRay(c.Width/2, sy)
	if dir.Y() >= 0 || c.Position.Y() <= 0 {
		return 0, false
	}
	return c.Position.Y() / -dir.Y(), true
}

// Horizon is the screen row of the ground plane's vanishing line.
func (c *Camera) Horizon() float64 {
	return (1 + c.focal()*math.Tan(c.Pitch)) / 2 * c.Height
}
