package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/prefabs"
)

// NewPlayer creates the first-person player at eye height above the origin.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, weapon prefabs.WeaponSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	player := PlayerFromSpec(spec)
	player.Grounded = true
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &player); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{0, spec.EyeHeight, 0},
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	health := spec.Health
	if health <= 0 {
		health = 100
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{Held: map[component.Key]bool{}}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	gun := WeaponFromSpec(weapon)
	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &gun); err != nil {
		return 0, fmt.Errorf("player: add weapon: %w", err)
	}

	return entity, nil
}
