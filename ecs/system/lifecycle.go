package system

import (
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"go.uber.org/zap"
)

// LifecycleSystem advances the virtual clock and drives the
// NotStarted -> Running -> GameOver machine from input.
type LifecycleSystem struct {
	log *zap.Logger
}

func NewLifecycleSystem(log *zap.Logger) *LifecycleSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &LifecycleSystem{log: log}
}

func (s *LifecycleSystem) Update(w *ecs.World) {
	session, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}
	gs.Clock += common.TickDuration
	gs.Ticks++

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	switch gs.Phase {
	case component.PhaseNotStarted:
		if input.PrimaryPresses == 0 {
			return
		}
		// The starting press only grabs the pointer.
		input.PrimaryPresses = 0
		gs.Phase = component.PhaseRunning
		gs.PointerCaptured = true
		w.Events().Push(ecs.Event{Kind: ecs.EventGameStarted, Entity: session})
		s.log.Info("game started")
	case component.PhaseRunning:
		if input.ReleasePressed {
			gs.PointerCaptured = false
		} else if input.PrimaryPresses > 0 {
			gs.PointerCaptured = true
		}
	case component.PhaseGameOver:
		if input.ResetPressed && !ecs.Has(w, session, component.ResetRequestComponent.Kind()) {
			_ = ecs.Add(w, session, component.ResetRequestComponent.Kind(), &component.ResetRequest{})
			s.log.Info("reset requested", zap.Int("score", gs.Score))
		}
	}
}

// GameOverSystem moves Running to GameOver the first tick the player's
// health is exhausted.
type GameOverSystem struct {
	log *zap.Logger
}

func NewGameOverSystem(log *zap.Logger) *GameOverSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameOverSystem{log: log}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	session, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok || !gs.Running() {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || !health.Dead() {
		return
	}
	gs.Phase = component.PhaseGameOver
	w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: session, Data: gs.Score})
	s.log.Info("game over", zap.Int("score", gs.Score), zap.Duration("clock", gs.Clock))
}

func gameRunning(w *ecs.World) bool {
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	return ok && gs.Running()
}

// ResetRequested reports whether the platform should rebuild the world.
func ResetRequested(w *ecs.World) bool {
	session, ok := ecs.First(w, component.GameStateComponent.Kind())
	return ok && ecs.Has(w, session, component.ResetRequestComponent.Kind())
}
