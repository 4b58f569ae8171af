package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"go.uber.org/zap"
)

// HitInfo is the payload of EventEnemyHit.
type HitInfo struct {
	Region    component.RegionKind
	Damage    float64
	Remaining float64
	Distance  float64
}

// ShotResult describes what a single accepted shot did.
type ShotResult struct {
	Projectile ecs.Entity
	Hit        bool
	RayHit     RayHit
	Damage     float64
	Killed     bool
	Respawned  ecs.Entity

	// Err collects failures to create the tracer or the replacement enemy.
	// The shot itself still counts.
	Err error
}

// FireWeapon resolves one fire request at virtual time now. It returns false
// when the weapon is still cooling down.
func FireWeapon(w *ecs.World, player ecs.Entity, now time.Duration, spawner *Spawner) (ShotResult, bool) {
	var res ShotResult

	weapon, ok := ecs.Get(w, player, component.WeaponComponent.Kind())
	if !ok {
		return res, false
	}
	if now < weapon.ReadyAt {
		return res, false
	}
	weapon.ReadyAt = now + weapon.Cooldown

	origin, dir, ok := CameraPose(w)
	if !ok {
		return res, false
	}

	muzzle := origin.Add(dir.Mul(weapon.MuzzleOffset))
	projectile, err := entity.NewProjectile(w, muzzle, dir.Mul(weapon.ProjectileSpeed), weapon.ProjectileLifetime)
	if err != nil {
		res.Err = fmt.Errorf("weapon: spawn projectile: %w", err)
	} else {
		res.Projectile = projectile
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventFired, Entity: player})

	if rc, ok := ecs.Get(w, player, component.RecoilComponent.Kind()); ok {
		rc.Remaining = weapon.RecoilDuration
		rc.Kick = weapon.RecoilKick
	} else {
		_ = ecs.Add(w, player, component.RecoilComponent.Kind(), &component.Recoil{
			Remaining: weapon.RecoilDuration,
			Kick:      weapon.RecoilKick,
		})
	}

	hit, ok := Raycast(w, origin, dir)
	if !ok {
		return res, true
	}
	res.Hit = true
	res.RayHit = hit

	damage := weapon.BodyDamage
	if hit.Kind == component.RegionHead {
		damage = weapon.HeadDamage
	}
	res.Damage = damage

	remaining := DamageEnemy(w, hit.Owner, damage)
	FlashEnemy(w, hit.Owner, weapon.FlashDuration)
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventEnemyHit,
		Entity: hit.Owner,
		Data:   HitInfo{Region: hit.Kind, Damage: damage, Remaining: remaining, Distance: hit.Distance},
	})

	if remaining > 0 {
		return res, true
	}

	RemoveEnemy(w, hit.Owner)
	res.Killed = true
	if _, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind()); ok {
		gs.Score++
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: hit.Owner})

	if spawner != nil {
		e, err := spawner.Spawn(w)
		if err != nil {
			res.Err = errors.Join(res.Err, fmt.Errorf("weapon: respawn: %w", err))
		} else {
			res.Respawned = e
		}
	}
	return res, true
}

// WeaponSystem turns the tick's primary presses into shots.
type WeaponSystem struct {
	spawner *Spawner
	log     *zap.Logger
}

func NewWeaponSystem(spawner *Spawner, log *zap.Logger) *WeaponSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeaponSystem{spawner: spawner, log: log}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.WeaponComponent.Kind(), func(e ecs.Entity, in *component.Input, _ *component.Weapon) {
		for i := 0; i < in.PrimaryPresses; i++ {
			res, fired := FireWeapon(w, e, gs.Clock, s.spawner)
			if !fired {
				continue
			}
			if res.Err != nil {
				s.log.Warn("shot side effect failed", zap.Error(res.Err))
			}
			if res.Killed {
				s.log.Debug("enemy killed",
					zap.Stringer("region", res.RayHit.Kind),
					zap.Int("score", gs.Score))
			}
		}
	})
}
