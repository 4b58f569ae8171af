package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

func NewProjectile(w *ecs.World, origin, velocity mgl64.Vec3, lifetime int) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: origin}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{Velocity: velocity}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{Frames: lifetime}); err != nil {
		return 0, fmt.Errorf("projectile: add ttl: %w", err)
	}

	return entity, nil
}
