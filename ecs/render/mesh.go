package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/common"
)

// Box is a cuboid part placed in a parent frame. Tilt rotates it about the
// local X axis through Center.
type Box struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
	Tilt   float64
}

// Corners returns the eight corners in the frame that places the parent at
// origin turned by yaw. Corner i has +X when bit 0 is set, +Y for bit 1 and
// +Z for bit 2.
func (b Box) Corners(origin mgl64.Vec3, yaw float64) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	tilt := mgl64.Rotate3DX(b.Tilt)
	place := mgl64.Rotate3DY(yaw)
	for i := range out {
		local := b.Half.Mul(-1)
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				local[axis] = b.Half[axis]
			}
		}
		out[i] = origin.Add(place.Mul3x1(b.Center.Add(tilt.Mul3x1(local))))
	}
	return out
}

// boxFaces lists each face as a corner cycle.
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, // -X
	{1, 3, 7, 5}, // +X
	{0, 1, 5, 4}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 1, 3, 2}, // -Z
	{4, 5, 7, 6}, // +Z
}

// Face is one quad ready to draw, in camera space.
type Face struct {
	Points [4]mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64
	Color  Shade
}

// Shade is an unlit colour plus how much light the face takes.
type Shade struct {
	R, G, B uint8
	Light   float64
}

var sunDir = mgl64.Vec3{30, 50, 20}.Normalize()

// BoxFaces returns the faces of a world-space box visible from the camera.
// Faces that cross the near plane are dropped.
func BoxFaces(cam *Camera, corners [8]mgl64.Vec3, col Shade) []Face {
	var centre mgl64.Vec3
	for _, p := range corners {
		centre = centre.Add(p)
	}
	centre = centre.Mul(1.0 / 8)

	var out []Face
	for _, idx := range boxFaces {
		var fc mgl64.Vec3
		for _, i := range idx {
			fc = fc.Add(corners[i])
		}
		fc = fc.Mul(0.25)

		normal := common.Normalize(fc.Sub(centre))
		if normal.Dot(cam.Position.Sub(fc)) <= 0 {
			continue
		}

		f := Face{Normal: normal, Color: col}
		visible := true
		for k, i := range idx {
			v := cam.ToView(corners[i])
			if -v.Z() < cam.Near {
				visible = false
				break
			}
			f.Points[k] = v
		}
		if !visible {
			continue
		}
		f.Depth = -cam.ToView(fc).Z()
		f.Color.Light = 0.4 + 0.6*math.Max(0, normal.Dot(sunDir))
		out = append(out, f)
	}
	return out
}

// ViewBoxFaces is BoxFaces for a box already in camera space, such as the
// gun model.
func ViewBoxFaces(cam *Camera, corners [8]mgl64.Vec3, col Shade) []Face {
	view := &Camera{FOV: cam.FOV, Near: cam.Near, Far: cam.Far, Width: cam.Width, Height: cam.Height}
	return BoxFaces(view, corners, col)
}

// SortFaces orders faces far to near for painter's drawing.
func SortFaces(faces []Face) {
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth > faces[j].Depth
	})
}

// QuadFace builds an unlit, double-sided face from four world-space points.
func QuadFace(cam *Camera, points [4]mgl64.Vec3, col Shade) (Face, bool) {
	f := Face{Color: col}
	var centre mgl64.Vec3
	for i, p := range points {
		v := cam.ToView(p)
		if -v.Z() < cam.Near {
			return Face{}, false
		}
		f.Points[i] = v
		centre = centre.Add(v)
	}
	f.Depth = -centre.Mul(0.25).Z()
	f.Color.Light = 1
	return f, true
}
