package system

import (
	"testing"

	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

func TestClockAdvancesInEveryPhase(t *testing.T) {
	g := newTestGame(t, nil)
	g.tick(3)
	if got := g.state(t).Clock; got != 3*common.TickDuration {
		t.Fatalf("expected clock %v before start, got %v", 3*common.TickDuration, got)
	}

	g.start(t)
	g.playerHealth(t).Current = 0
	g.tick(1)
	if g.state(t).Phase != component.PhaseGameOver {
		t.Fatalf("expected game over")
	}
	before := g.state(t).Clock
	g.tick(2)
	if got := g.state(t).Clock - before; got != 2*common.TickDuration {
		t.Fatalf("expected clock to keep running in game over, advanced %v", got)
	}
}

func TestStartTransition(t *testing.T) {
	g := newTestGame(t, nil)

	g.in.key(component.KeyForward)
	g.in.push(InputEvent{Kind: InputMotion, DX: 50})
	g.tick(1)
	gs := g.state(t)
	if gs.Phase != component.PhaseNotStarted {
		t.Fatalf("expected keys and motion to leave the game idle, got %v", gs.Phase)
	}
	if gs.PointerCaptured {
		t.Fatalf("pointer should not be captured before start")
	}

	g.in.press()
	g.tick(1)
	if gs.Phase != component.PhaseRunning || !gs.PointerCaptured {
		t.Fatalf("expected running with captured pointer, got %v captured=%v", gs.Phase, gs.PointerCaptured)
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	g := newTestGame(t, nil)
	g.start(t)
	g.state(t).Score = 4
	g.playerHealth(t).Current = 0.1

	overs := 0
	var score any
	for i := 0; i < 10; i++ {
		g.playerHealth(t).Current -= 0.1
		g.tick(1)
		for _, evt := range g.World.Events().Drain() {
			if evt.Kind == ecs.EventGameOver {
				overs++
				score = evt.Data
			}
		}
	}
	if overs != 1 {
		t.Fatalf("expected exactly one game over event, got %d", overs)
	}
	if score != 4 {
		t.Fatalf("expected final score 4 in the event, got %v", score)
	}
}

func TestResetOnlyFromGameOver(t *testing.T) {
	g := newTestGame(t, nil)

	g.in.key(component.KeyReset)
	g.tick(1)
	if ResetRequested(g.World) {
		t.Fatalf("reset should be ignored before start")
	}

	g.start(t)
	g.in.key(component.KeyReset)
	g.tick(1)
	if ResetRequested(g.World) {
		t.Fatalf("reset should be ignored while running")
	}

	g.playerHealth(t).Current = 0
	g.tick(1)
	g.in.key(component.KeyReset)
	g.tick(1)
	if !ResetRequested(g.World) {
		t.Fatalf("expected reset request in game over")
	}
}

func TestGameOverFreezesGameplay(t *testing.T) {
	g, enemy := newDuelGame(t)
	en, _ := ecs.Get(g.World, enemy, component.EnemyComponent.Kind())
	en.Speed = 0.05

	g.playerHealth(t).Current = 0
	g.tick(1)
	if g.state(t).Phase != component.PhaseGameOver {
		t.Fatalf("expected game over")
	}

	tr, _ := ecs.Get(g.World, enemy, component.TransformComponent.Kind())
	pos := tr.Position
	player := g.playerState(t)
	yaw := player.Yaw

	g.in.key(component.KeyForward)
	g.in.push(InputEvent{Kind: InputMotion, DX: 100})
	g.in.press()
	g.tick(5)

	if tr.Position != pos {
		t.Fatalf("enemy moved during game over: %+v -> %+v", pos, tr.Position)
	}
	if player.Yaw != yaw {
		t.Fatalf("look applied during game over")
	}
	if n := g.World.Count(component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("expected no shots during game over, got %d projectiles", n)
	}
	if g.playerHealth(t).Current != 0 {
		t.Fatalf("expected health to stay at zero")
	}
}

func TestEscapeReleasesPointer(t *testing.T) {
	g := newTestGame(t, nil)
	g.start(t)
	player := g.playerState(t)

	g.in.key(component.KeyRelease)
	g.tick(1)
	if g.state(t).PointerCaptured {
		t.Fatalf("expected escape to release the pointer")
	}

	yaw := player.Yaw
	g.in.push(InputEvent{Kind: InputMotion, DX: 100})
	g.tick(1)
	if player.Yaw != yaw {
		t.Fatalf("look applied while released")
	}

	g.in.press()
	g.tick(1)
	if !g.state(t).PointerCaptured {
		t.Fatalf("expected a press to recapture the pointer")
	}
	g.in.push(InputEvent{Kind: InputMotion, DX: 100})
	g.tick(1)
	if player.Yaw == yaw {
		t.Fatalf("expected look after recapture")
	}
}
