package system

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

const StartPrompt = "CLICK TO START"

// HUDSystem projects session and player state into the HUD singleton.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{}
}

func (s *HUDSystem) Update(w *ecs.World) {
	_, hud, ok := ecs.Singleton(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}

	switch gs.Phase {
	case component.PhaseNotStarted:
		hud.Status = StartPrompt
	default:
		hud.Status = fmt.Sprintf("Score: %d", gs.Score)
	}
	hud.GameOver = gs.Phase == component.PhaseGameOver
	hud.Crosshair = gs.Phase == component.PhaseRunning

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			hud.HealthFill = h.Fraction()
		}
	}
}
