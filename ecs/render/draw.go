package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/deadzone/common"
)

// Fog blends distant colours toward Color between Near and Far.
type Fog struct {
	Near  float64
	Far   float64
	Color color.Color
}

// Apply returns c fogged for depth.
func (f Fog) Apply(c color.Color, depth float64) color.RGBA {
	if f.Color == nil {
		return toRGBA(c)
	}
	return LerpColor(c, f.Color, FogFactor(f.Near, f.Far, depth))
}

// LerpColor mixes a toward b by t in [0, 1].
func LerpColor(a, b color.Color, t float64) color.RGBA {
	ca, cb := toRGBA(a), toRGBA(b)
	t = common.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(ca.R, cb.R), G: mix(ca.G, cb.G), B: mix(ca.B, cb.B), A: mix(ca.A, cb.A)}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// ShadeOf converts a colour to a face shade.
func ShadeOf(c color.Color) Shade {
	rgba := toRGBA(c)
	return Shade{R: rgba.R, G: rgba.G, B: rgba.B, Light: 1}
}

func (s Shade) lit() color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(common.Clamp(float64(v)*s.Light, 0, 255))
	}
	return color.RGBA{R: scale(s.R), G: scale(s.G), B: scale(s.B), A: 255}
}

// FillPolygon fills a convex screen-space polygon with a solid colour.
func FillPolygon(dst *ebiten.Image, xs, ys []float32, clr color.Color) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}

	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawFaces paints faces in the order given, applying light and fog.
func DrawFaces(dst *ebiten.Image, cam *Camera, faces []Face, fog Fog) {
	xs := make([]float32, 4)
	ys := make([]float32, 4)
	for _, f := range faces {
		ok := true
		for i, p := range f.Points {
			x, y, _, visible := cam.ProjectView(p)
			if !visible {
				ok = false
				break
			}
			xs[i], ys[i] = float32(x), float32(y)
		}
		if !ok {
			continue
		}
		FillPolygon(dst, xs, ys, fog.Apply(f.Color.lit(), f.Depth))
	}
}

// ClipSegment trims a camera-space segment to the part in front of the near
// plane.
func ClipSegment(cam *Camera, a, b mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	near := cam.Near * 1.001
	da, db := -a.Z(), -b.Z()
	if da < near && db < near {
		return a, b, false
	}
	if da < near {
		t := (near - da) / (db - da)
		a = a.Add(b.Sub(a).Mul(t))
	} else if db < near {
		t := (near - db) / (da - db)
		b = b.Add(a.Sub(b).Mul(t))
	}
	return a, b, true
}

// DrawLine3D strokes a world-space segment.
func DrawLine3D(dst *ebiten.Image, cam *Camera, a, b mgl64.Vec3, width float32, clr color.Color, fog Fog) {
	va, vb, ok := ClipSegment(cam, cam.ToView(a), cam.ToView(b))
	if !ok {
		return
	}
	x0, y0, d0, ok0 := cam.ProjectView(va)
	x1, y1, d1, ok1 := cam.ProjectView(vb)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, fog.Apply(clr, (d0+d1)/2), true)
}
