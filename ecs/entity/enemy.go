package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// Placement is where and how a new enemy starts.
type Placement struct {
	Position mgl64.Vec3
	Speed    float64
	Phase    float64
}

// NewEnemy creates an enemy and its body and head hit regions.
func NewEnemy(w *ecs.World, tmpl component.EnemyTemplate, p Placement) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: p.Position}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	health := tmpl.Health
	if health <= 0 {
		health = 100
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthBarComponent.Kind(), &component.HealthBar{
		Width:  tmpl.BarWidth,
		Height: tmpl.BarHeight,
		Scale:  1,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health bar: %w", err)
	}

	body, err := newHitRegion(w, entity, component.RegionBody, tmpl.Body)
	if err != nil {
		return 0, err
	}
	head, err := newHitRegion(w, entity, component.RegionHead, tmpl.Head)
	if err != nil {
		return 0, err
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Speed:         p.Speed,
		Phase:         p.Phase,
		Regions:       [2]uint64{uint64(body), uint64(head)},
		ContactRange:  tmpl.ContactRange,
		ContactDamage: tmpl.ContactDamage,
		BobStep:       tmpl.BobStep,
		BobHeight:     tmpl.BobHeight,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	return entity, nil
}

func newHitRegion(w *ecs.World, owner ecs.Entity, kind component.RegionKind, tmpl component.RegionTemplate) (ecs.Entity, error) {
	region := ecs.CreateEntity(w)
	if err := ecs.Add(w, region, component.HitRegionComponent.Kind(), &component.HitRegion{
		Owner:       uint64(owner),
		Kind:        kind,
		Center:      tmpl.Center,
		HalfExtents: tmpl.HalfExtents,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add %s region: %w", kind, err)
	}
	return region, nil
}
