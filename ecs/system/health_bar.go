package system

import (
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// HealthBarSystem keeps each enemy's floating bar in step with its health.
// The fill shrinks toward the bar's left edge.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	ecs.ForEach2(w, component.HealthBarComponent.Kind(), component.HealthComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar, h *component.Health) {
		bar.Scale = h.Fraction()
		bar.OffsetX = -bar.Width / 2 * (1 - bar.Scale)
	})
}
