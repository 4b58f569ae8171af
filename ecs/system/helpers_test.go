package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/prefabs"
	"go.uber.org/zap"
)

// scriptedInput hands out queued events on the next poll.
type scriptedInput struct {
	queue []InputEvent
}

func (s *scriptedInput) Poll() []InputEvent {
	out := s.queue
	s.queue = nil
	return out
}

func (s *scriptedInput) push(evts ...InputEvent) {
	s.queue = append(s.queue, evts...)
}

func (s *scriptedInput) press() {
	s.push(InputEvent{Kind: InputPrimaryPress})
}

func (s *scriptedInput) key(k component.Key) {
	s.push(InputEvent{Kind: InputKeyDown, Key: k})
}

type testGame struct {
	*Pipeline
	in     *scriptedInput
	player ecs.Entity
}

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	return tuning
}

func newTestGame(t *testing.T, tune func(*prefabs.Tuning)) *testGame {
	t.Helper()
	tuning := loadTuning(t)
	if tune != nil {
		tune(tuning)
	}
	in := &scriptedInput{}
	p, err := NewPipeline(Options{Tuning: tuning, Source: in, Seed: 7, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	player, ok := ecs.First(p.World, component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("expected a player")
	}
	return &testGame{Pipeline: p, in: in, player: player}
}

// newDuelGame is a running game with a single stationary enemy ten units
// straight ahead of the player.
func newDuelGame(t *testing.T) (*testGame, ecs.Entity) {
	t.Helper()
	g := newTestGame(t, func(tn *prefabs.Tuning) { tn.Arena.EnemyCount = 1 })
	g.start(t)
	enemy := g.onlyEnemy(t)
	g.place(t, enemy, mgl64.Vec3{0, 0, -10})
	return g, enemy
}

func (g *testGame) start(t *testing.T) {
	t.Helper()
	g.in.press()
	g.World.Update()
	if g.state(t).Phase != component.PhaseRunning {
		t.Fatalf("expected game to be running after first press")
	}
}

func (g *testGame) tick(n int) {
	for i := 0; i < n; i++ {
		g.World.Update()
	}
}

func (g *testGame) state(t *testing.T) *component.GameState {
	t.Helper()
	_, gs, ok := ecs.Singleton(g.World, component.GameStateComponent.Kind())
	if !ok {
		t.Fatalf("expected game state")
	}
	return gs
}

func (g *testGame) playerHealth(t *testing.T) *component.Health {
	t.Helper()
	h, ok := ecs.Get(g.World, g.player, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("expected player health")
	}
	return h
}

func (g *testGame) playerState(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(g.World, g.player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("expected player component")
	}
	return p
}

func (g *testGame) onlyEnemy(t *testing.T) ecs.Entity {
	t.Helper()
	enemies := g.World.Query(component.EnemyComponent.Kind())
	if len(enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(enemies))
	}
	return enemies[0]
}

// place pins an enemy in position. Speed zero keeps it there and a phase of
// -pi/2 keeps its bob on the ground for well over a second.
func (g *testGame) place(t *testing.T, e ecs.Entity, pos mgl64.Vec3) {
	t.Helper()
	tr, ok := ecs.Get(g.World, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("expected enemy transform")
	}
	en, ok := ecs.Get(g.World, e, component.EnemyComponent.Kind())
	if !ok {
		t.Fatalf("expected enemy component")
	}
	tr.Position = pos
	en.Speed = 0
	en.Phase = -math.Pi / 2
}

func (g *testGame) enemyHealth(t *testing.T, e ecs.Entity) float64 {
	t.Helper()
	h, ok := ecs.Get(g.World, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("expected enemy health for %v", e)
	}
	return h.Current
}

// cooldownTicks is enough ticks for a 180ms cooldown to lapse.
const cooldownTicks = 11

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
