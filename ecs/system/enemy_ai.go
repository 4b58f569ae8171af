package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// EnemyAISystem walks every enemy straight at the player on the ground plane,
// turns it to face the player and advances its bob and arm swing.
type EnemyAISystem struct{}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	var rate, amp float64
	if _, arena, ok := ecs.Singleton(w, component.ArenaComponent.Kind()); ok {
		rate, amp = arena.ArmSwingRate, arena.ArmSwingAmp
	}
	swing := ArmSwing(gs.Clock, rate, amp)
	target := cp.Vector{X: pt.Position.X(), Y: pt.Position.Z()}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, t *component.Transform) {
		Steer(en, t, target)
		en.ArmSwing = swing
	})
}

// Steer moves one enemy a single step toward target, given as (x, z) on the
// ground plane, and updates its facing and bob height.
func Steer(en *component.Enemy, t *component.Transform, target cp.Vector) {
	pos := cp.Vector{X: t.Position.X(), Y: t.Position.Z()}
	delta := target.Sub(pos)
	if delta.Length() > 0 {
		step := delta.Normalize().Mult(en.Speed)
		pos = pos.Add(step)
		t.Position[0], t.Position[2] = pos.X, pos.Y
		t.Yaw = math.Atan2(delta.X, delta.Y)
	}

	en.Phase += en.BobStep
	t.Position[1] = math.Max(0, math.Sin(en.Phase)*en.BobHeight)
}

// ArmSwing is the shared limb angle at virtual time clock.
func ArmSwing(clock time.Duration, rate, amp float64) float64 {
	return math.Sin(float64(clock.Milliseconds())*rate) * amp
}
