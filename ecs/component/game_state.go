package component

import "time"

// Phase is the overall game state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// GameState is the session singleton. Clock is virtual time advanced by one
// tick duration per update in every phase.
type GameState struct {
	Phase Phase
	Score int
	Clock time.Duration
	Ticks uint64

	// PointerCaptured mirrors the platform's relative-mouse mode; the
	// platform layer applies it to the window.
	PointerCaptured bool
}

// Running reports whether gameplay systems should advance.
func (g *GameState) Running() bool {
	return g != nil && g.Phase == PhaseRunning
}

var GameStateComponent = NewComponent[GameState]()

// ResetRequest asks the platform layer to rebuild the world from initial
// conditions. Only raised from GameOver.
type ResetRequest struct{}

var ResetRequestComponent = NewComponent[ResetRequest]()
