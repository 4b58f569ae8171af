package system

import (
	"time"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// DamageEnemy subtracts amount from the enemy's health and returns what is
// left. Unknown or dead handles return zero.
func DamageEnemy(w *ecs.World, e ecs.Entity, amount float64) float64 {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	return h.Damage(amount)
}

// FlashEnemy starts or restarts the enemy's hit flash.
func FlashEnemy(w *ecs.World, e ecs.Entity, d time.Duration) {
	if !ecs.IsAlive(w, e) || d <= 0 {
		return
	}
	if f, ok := ecs.Get(w, e, component.HitFlashComponent.Kind()); ok {
		f.Remaining = d
		return
	}
	_ = ecs.Add(w, e, component.HitFlashComponent.Kind(), &component.HitFlash{Remaining: d})
}

// RemoveEnemy destroys the enemy together with its hit regions.
func RemoveEnemy(w *ecs.World, e ecs.Entity) bool {
	if en, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		for _, r := range en.Regions {
			ecs.DestroyEntity(w, ecs.Entity(r))
		}
	}
	return ecs.DestroyEntity(w, e)
}

// EnemyCount returns the number of live enemies.
func EnemyCount(w *ecs.World) int {
	return w.Count(component.EnemyComponent.Kind())
}
