package entity

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/prefabs"
)

func PlayerFromSpec(spec prefabs.PlayerSpec) component.Player {
	return component.Player{
		MoveSpeed:   spec.MoveSpeed,
		JumpSpeed:   spec.JumpSpeed,
		Gravity:     spec.Gravity,
		EyeHeight:   spec.EyeHeight,
		Sensitivity: spec.Sensitivity,
	}
}

func WeaponFromSpec(spec prefabs.WeaponSpec) component.Weapon {
	return component.Weapon{
		Cooldown:           time.Duration(spec.CooldownMS) * time.Millisecond,
		HeadDamage:         spec.HeadDamage,
		BodyDamage:         spec.BodyDamage,
		MuzzleOffset:       spec.MuzzleOffset,
		ProjectileSpeed:    spec.ProjectileSpeed,
		ProjectileLifetime: spec.ProjectileLifetime,
		FlashDuration:      time.Duration(spec.HitFlashMS) * time.Millisecond,
		RecoilDuration:     time.Duration(spec.RecoilMS) * time.Millisecond,
		RecoilKick:         spec.RecoilKick,
	}
}

func EnemyTemplateFromSpec(spec prefabs.EnemySpec) component.EnemyTemplate {
	tmpl := component.EnemyTemplate{
		Health:        spec.Health,
		SpeedMin:      spec.SpeedMin,
		SpeedJitter:   spec.SpeedJitter,
		BobStep:       spec.BobStep,
		BobHeight:     spec.BobHeight,
		ContactRange:  spec.ContactRange,
		ContactDamage: spec.ContactDamage,
		BarWidth:      spec.HealthBar.Width,
		BarHeight:     spec.HealthBar.Height,
	}
	if hb, ok := spec.Hitbox("body"); ok {
		tmpl.Body = regionFromSpec(hb)
	}
	if hb, ok := spec.Hitbox("head"); ok {
		tmpl.Head = regionFromSpec(hb)
	}
	return tmpl
}

func regionFromSpec(hb prefabs.HitboxSpec) component.RegionTemplate {
	return component.RegionTemplate{
		Center:      mgl64.Vec3{0, hb.OffsetY, 0},
		HalfExtents: mgl64.Vec3{hb.Width / 2, hb.Height / 2, hb.Depth / 2},
	}
}

func ArenaFromSpec(arena prefabs.ArenaSpec, enemy prefabs.EnemySpec) component.Arena {
	return component.Arena{
		EnemyCount:   arena.EnemyCount,
		HalfExtent:   arena.HalfExtent,
		Enemy:        EnemyTemplateFromSpec(enemy),
		ArmSwingRate: arena.ArmSwingRate,
		ArmSwingAmp:  arena.ArmSwingAmp,
	}
}

// ApplyTuning pushes reloaded tuning into live entities. Health, position,
// orientation and the cooldown clock are left alone; enemies already in the
// arena keep their rolled speed but take the new contact and bob settings.
func ApplyTuning(w *ecs.World, tuning *prefabs.Tuning) {
	if w == nil || tuning == nil {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		next := PlayerFromSpec(tuning.Player)
		next.Yaw, next.Pitch = p.Yaw, p.Pitch
		next.VelY, next.Grounded = p.VelY, p.Grounded
		*p = next
	})

	ecs.ForEach(w, component.WeaponComponent.Kind(), func(_ ecs.Entity, wpn *component.Weapon) {
		next := WeaponFromSpec(tuning.Weapon)
		next.ReadyAt = wpn.ReadyAt
		*wpn = next
	})

	ecs.ForEach(w, component.ArenaComponent.Kind(), func(_ ecs.Entity, a *component.Arena) {
		*a = ArenaFromSpec(tuning.Arena, tuning.Enemy)
	})

	tmpl := EnemyTemplateFromSpec(tuning.Enemy)
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(_ ecs.Entity, e *component.Enemy) {
		e.ContactRange = tmpl.ContactRange
		e.ContactDamage = tmpl.ContactDamage
		e.BobStep = tmpl.BobStep
		e.BobHeight = tmpl.BobHeight
	})
}
