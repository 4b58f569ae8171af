package system

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/render"
	"github.com/milk9111/deadzone/prefabs"
)

// Palette holds the scene colours.
type Palette struct {
	Sky        color.Color
	Ground     color.Color
	Grid       color.Color
	Skin       color.Color
	Limb       color.Color
	Flash      color.Color
	BarBack    color.Color
	BarFill    color.Color
	Projectile color.Color
	Gun        color.Color
	Barrel     color.Color
	Grip       color.Color
}

func PaletteFromSpec(arena prefabs.ArenaSpec, enemy prefabs.EnemySpec) Palette {
	return Palette{
		Sky:        arena.SkyColor.ColorOr(color.RGBA{R: 0x6f, G: 0xa3, B: 0xc8, A: 0xff}),
		Ground:     arena.GroundColor.ColorOr(color.RGBA{R: 0x2e, G: 0x3d, B: 0x2f, A: 0xff}),
		Grid:       color.RGBA{R: 0x3a, G: 0x4d, B: 0x3b, A: 0xff},
		Skin:       enemy.Color.ColorOr(color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}),
		Limb:       enemy.LimbColor.ColorOr(color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}),
		Flash:      enemy.FlashColor.ColorOr(color.RGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}),
		BarBack:    color.RGBA{R: 0x55, A: 0xff},
		BarFill:    color.RGBA{G: 0xff, A: 0xff},
		Projectile: color.RGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff},
		Gun:        color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Barrel:     color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		Grip:       color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
	}
}

// zombie parts in the enemy's local frame. Arms swing about their centres.
var (
	zombieBody = render.Box{Center: mgl64.Vec3{0, 1.05, 0}, Half: mgl64.Vec3{0.3, 0.45, 0.175}}
	zombieHead = render.Box{Center: mgl64.Vec3{0, 1.65, 0}, Half: mgl64.Vec3{0.225, 0.225, 0.225}}
	zombieArms = []render.Box{
		{Center: mgl64.Vec3{-0.45, 1.05, 0}, Half: mgl64.Vec3{0.09, 0.325, 0.09}},
		{Center: mgl64.Vec3{0.45, 1.05, 0}, Half: mgl64.Vec3{0.09, 0.325, 0.09}},
	}
	zombieLegs = []render.Box{
		{Center: mgl64.Vec3{-0.15, 0.25, 0}, Half: mgl64.Vec3{0.1, 0.25, 0.1}},
		{Center: mgl64.Vec3{0.15, 0.25, 0}, Half: mgl64.Vec3{0.1, 0.25, 0.1}},
	}
)

// gun parts in camera space, relative to the gun's rest position.
var (
	gunRest   = mgl64.Vec3{0.35, -0.35, -0.8}
	gunBody   = render.Box{Half: mgl64.Vec3{0.25, 0.09, 0.45}}
	gunBarrel = render.Box{Center: mgl64.Vec3{0, -0.02, -0.7}, Half: mgl64.Vec3{0.04, 0.04, 0.3}}
	gunGrip   = render.Box{Center: mgl64.Vec3{0, -0.25, -0.2}, Half: mgl64.Vec3{0.09, 0.175, 0.125}}
)

const (
	projectileRadius = 0.06
	gridSpacing      = 10.0
	groundBands      = 32
)

// RenderSystem draws the world from the player's eye. It is not part of the
// tick; the game calls Draw once per frame.
type RenderSystem struct {
	camera    *render.Camera
	palette   Palette
	fog       render.Fog
	groundHW  float64
	barOffset float64
}

func NewRenderSystem(tuning *prefabs.Tuning) *RenderSystem {
	r := &RenderSystem{camera: render.NewCamera(75, 0.1, 1000)}
	r.SetTuning(tuning)
	return r
}

// SetTuning applies scene settings from reloaded prefabs.
func (r *RenderSystem) SetTuning(tuning *prefabs.Tuning) {
	if r == nil || tuning == nil {
		return
	}
	a := tuning.Arena
	if a.FOV > 0 {
		r.camera.FOV = a.FOV
	}
	if a.Near > 0 {
		r.camera.Near = a.Near
	}
	if a.Far > a.Near {
		r.camera.Far = a.Far
	}
	r.palette = PaletteFromSpec(a, tuning.Enemy)
	r.fog = render.Fog{Near: a.FogNear, Far: a.FogFar, Color: r.palette.Sky}
	r.groundHW = a.GroundSize / 2
	r.barOffset = tuning.Enemy.HealthBar.OffsetY
}

// SetViewport forwards the window size to the camera aspect.
func (r *RenderSystem) SetViewport(width, height int) {
	if r == nil {
		return
	}
	r.camera.SetViewport(float64(width), float64(height))
}

func (r *RenderSystem) Camera() *render.Camera {
	return r.camera
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	r.syncCamera(w)

	screen.Fill(r.palette.Sky)
	r.drawGround(screen)

	var faces []render.Face
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		faces = append(faces, r.enemyFaces(w, e, en, t)...)
		if bar, ok := ecs.Get(w, e, component.HealthBarComponent.Kind()); ok {
			faces = append(faces, r.healthBarFaces(t, bar)...)
		}
	})
	render.SortFaces(faces)
	render.DrawFaces(screen, r.camera, faces, r.fog)

	r.drawProjectiles(w, screen)
	r.drawGun(w, screen)
}

func (r *RenderSystem) syncCamera(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		r.camera.Position = t.Position
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		r.camera.Yaw, r.camera.Pitch = p.Yaw, p.Pitch
	}
}

func (r *RenderSystem) drawGround(screen *ebiten.Image) {
	cam := r.camera
	top := common.Clamp(cam.Horizon(), 0, cam.Height)
	if top >= cam.Height {
		return
	}

	step := (cam.Height - top) / groundBands
	for i := 0; i < groundBands; i++ {
		y0 := top + float64(i)*step
		depth, ok := cam.GroundDepth(y0 + step/2)
		if !ok {
			continue
		}
		clr := r.fog.Apply(r.palette.Ground, depth)
		vector.FillRect(screen, 0, float32(y0), float32(cam.Width), float32(step)+1, clr, false)
	}

	if r.groundHW <= 0 {
		return
	}
	for v := -r.groundHW; v <= r.groundHW; v += gridSpacing {
		render.DrawLine3D(screen, cam, mgl64.Vec3{v, 0, -r.groundHW}, mgl64.Vec3{v, 0, r.groundHW}, 1, r.palette.Grid, r.fog)
		render.DrawLine3D(screen, cam, mgl64.Vec3{-r.groundHW, 0, v}, mgl64.Vec3{r.groundHW, 0, v}, 1, r.palette.Grid, r.fog)
	}
}

func (r *RenderSystem) enemyFaces(w *ecs.World, e ecs.Entity, en *component.Enemy, t *component.Transform) []render.Face {
	torso := r.palette.Skin
	if ecs.Has(w, e, component.HitFlashComponent.Kind()) {
		torso = r.palette.Flash
	}

	var faces []render.Face
	add := func(b render.Box, c color.Color) {
		faces = append(faces, render.BoxFaces(r.camera, b.Corners(t.Position, t.Yaw), render.ShadeOf(c))...)
	}
	add(zombieBody, torso)
	add(zombieHead, r.palette.Skin)
	for _, arm := range zombieArms {
		arm.Tilt = en.ArmSwing
		add(arm, r.palette.Limb)
	}
	for _, leg := range zombieLegs {
		add(leg, r.palette.Limb)
	}
	return faces
}

// healthBarFaces returns the bar background and fill as quads facing along
// the enemy's forward axis. The fill sits slightly in front.
func (r *RenderSystem) healthBarFaces(t *component.Transform, bar *component.HealthBar) []render.Face {
	var faces []render.Face
	if f, ok := r.quad(t, mgl64.Vec3{0, r.barOffset, 0}, bar.Width/2, bar.Height/2, r.palette.BarBack); ok {
		faces = append(faces, f)
	}
	if bar.Scale <= 0 {
		return faces
	}
	fill := mgl64.Vec3{bar.OffsetX, r.barOffset, 0.01}
	if f, ok := r.quad(t, fill, bar.Width*bar.Scale/2, bar.Height/2, r.palette.BarFill); ok {
		// Keep the fill ahead of its background after sorting.
		f.Depth -= 0.001
		faces = append(faces, f)
	}
	return faces
}

func (r *RenderSystem) quad(t *component.Transform, centre mgl64.Vec3, hw, hh float64, clr color.Color) (render.Face, bool) {
	var pts [4]mgl64.Vec3
	for i, c := range [4]mgl64.Vec3{
		{-hw, -hh, 0},
		{hw, -hh, 0},
		{hw, hh, 0},
		{-hw, hh, 0},
	} {
		pts[i] = t.Position.Add(common.RotateY(centre.Add(c), t.Yaw))
	}
	return render.QuadFace(r.camera, pts, render.ShadeOf(clr))
}

func (r *RenderSystem) drawProjectiles(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Projectile, t *component.Transform) {
		x, y, depth, ok := r.camera.Project(t.Position)
		if !ok {
			return
		}
		radius := math.Max(1.5, projectileRadius*r.camera.PixelsPerUnit(depth))
		vector.FillCircle(screen, float32(x), float32(y), float32(radius), r.fog.Apply(r.palette.Projectile, depth), true)
	})
}

func (r *RenderSystem) drawGun(w *ecs.World, screen *ebiten.Image) {
	rest := gunRest
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if rc, ok := ecs.Get(w, player, component.RecoilComponent.Kind()); ok {
			rest[2] -= rc.Kick
		}
	}

	var faces []render.Face
	for _, part := range []struct {
		box render.Box
		clr color.Color
	}{
		{gunBody, r.palette.Gun},
		{gunBarrel, r.palette.Barrel},
		{gunGrip, r.palette.Grip},
	} {
		faces = append(faces, render.ViewBoxFaces(r.camera, part.box.Corners(rest, 0), render.ShadeOf(part.clr))...)
	}
	render.SortFaces(faces)
	render.DrawFaces(screen, r.camera, faces, render.Fog{})
}
