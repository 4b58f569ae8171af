package entity

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/prefabs"
)

// NewSession creates the game-state, HUD and arena singletons.
func NewSession(w *ecs.World, tuning *prefabs.Tuning) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.GameStateComponent.Kind(), &component.GameState{Phase: component.PhaseNotStarted}); err != nil {
		return 0, fmt.Errorf("session: add game state: %w", err)
	}

	if err := ecs.Add(w, entity, component.HUDComponent.Kind(), &component.HUD{HealthFill: 1}); err != nil {
		return 0, fmt.Errorf("session: add hud: %w", err)
	}

	arena := ArenaFromSpec(tuning.Arena, tuning.Enemy)
	if err := ecs.Add(w, entity, component.ArenaComponent.Kind(), &arena); err != nil {
		return 0, fmt.Errorf("session: add arena: %w", err)
	}

	return entity, nil
}
