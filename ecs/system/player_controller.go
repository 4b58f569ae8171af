package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

const maxPitch = math.Pi / 2

// Look turns the view by a relative pointer delta in pixels. Yaw is left
// unbounded; pitch is clamped so the camera never flips.
func Look(p *component.Player, dx, dy float64) {
	if p == nil {
		return
	}
	p.Yaw -= dx * p.Sensitivity
	p.Pitch = common.Clamp(p.Pitch-dy*p.Sensitivity, -maxPitch, maxPitch)
}

// Advance integrates one step of movement, jump and gravity. dt is measured
// in ticks.
func Advance(p *component.Player, t *component.Transform, in *component.Input, dt float64) {
	if p == nil || t == nil {
		return
	}

	var move mgl64.Vec3
	if in.IsHeld(component.KeyForward) {
		move[2] -= 1
	}
	if in.IsHeld(component.KeyBack) {
		move[2] += 1
	}
	if in.IsHeld(component.KeyLeft) {
		move[0] -= 1
	}
	if in.IsHeld(component.KeyRight) {
		move[0] += 1
	}
	move = common.RotateY(common.Normalize(move), p.Yaw)
	t.Position = t.Position.Add(move.Mul(p.MoveSpeed * dt))

	if in.IsHeld(component.KeyJump) && p.Grounded {
		p.VelY = p.JumpSpeed
		p.Grounded = false
	}
	p.VelY += p.Gravity * dt
	t.Position[1] += p.VelY * dt
	if t.Position.Y() < p.EyeHeight {
		t.Position[1] = p.EyeHeight
		p.VelY = 0
		p.Grounded = true
	}
}

// LookSystem applies the tick's pointer motion before the weapon fires, so a
// shot uses the freshest aim.
type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (s *LookSystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, p *component.Player, in *component.Input) {
		Look(p, in.LookDX, in.LookDY)
	})
}

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.InputComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, t *component.Transform, in *component.Input) {
			Advance(p, t, in, 1)
		},
	)
}

// CameraPose returns the eye position and view direction of the player.
func CameraPose(w *ecs.World) (mgl64.Vec3, mgl64.Vec3, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return t.Position, common.Forward(p.Yaw, p.Pitch), true
}
