package system

import (
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// FlashSystem counts down hit flashes and gun recoil by one tick of virtual
// time and removes them once expired. It runs in every phase so a flash
// started on the killing tick of the game still clears.
type FlashSystem struct{}

func NewFlashSystem() *FlashSystem { return &FlashSystem{} }

func (s *FlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HitFlashComponent.Kind(), func(e ecs.Entity, f *component.HitFlash) {
		f.Remaining -= common.TickDuration
		if f.Remaining <= 0 {
			ecs.Remove(w, e, component.HitFlashComponent.Kind())
		}
	})

	ecs.ForEach(w, component.RecoilComponent.Kind(), func(e ecs.Entity, r *component.Recoil) {
		r.Remaining -= common.TickDuration
		if r.Remaining <= 0 {
			ecs.Remove(w, e, component.RecoilComponent.Kind())
		}
	})
}
