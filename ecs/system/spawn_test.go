package system

import (
	"testing"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/prefabs"
)

func testArena(t *testing.T) *component.Arena {
	t.Helper()
	tuning := loadTuning(t)
	arena := entity.ArenaFromSpec(tuning.Arena, tuning.Enemy)
	return &arena
}

func TestSpawnScriptMatchesDefaultPlacement(t *testing.T) {
	script, err := LoadSpawnScript("spawn.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	arena := testArena(t)

	tests := []struct {
		name  string
		draws [4]float64
	}{
		{name: "zero draws", draws: [4]float64{0, 0, 0, 0}},
		{name: "middle", draws: [4]float64{0.5, 0.5, 0.5, 0.5}},
		{name: "mixed", draws: [4]float64{0.13, 0.92, 0.41, 0.77}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := script.Place(tt.draws, arena)
			if err != nil {
				t.Fatalf("place: %v", err)
			}
			want := defaultPlacement(tt.draws, arena)
			if !almostEqual(got.Position.X(), want.Position.X()) || !almostEqual(got.Position.Z(), want.Position.Z()) {
				t.Fatalf("position %+v, want %+v", got.Position, want.Position)
			}
			if !almostEqual(got.Speed, want.Speed) || !almostEqual(got.Phase, want.Phase) {
				t.Fatalf("speed/phase %v/%v, want %v/%v", got.Speed, got.Phase, want.Speed, want.Phase)
			}
		})
	}
}

func TestCompileSpawnScriptErrors(t *testing.T) {
	if _, err := CompileSpawnScript("broken.tengo", []byte("x := (")); err == nil {
		t.Fatalf("expected compile error")
	}

	script, err := CompileSpawnScript("partial.tengo", []byte("x := 1.0\nz := 2.0"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := script.Place([4]float64{}, testArena(t)); err == nil {
		t.Fatalf("expected error for missing outputs")
	}
}

func TestSpawnerFallsBackWhenScriptFails(t *testing.T) {
	script, err := CompileSpawnScript("partial.tengo", []byte("x := 1.0"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	arena := testArena(t)

	withScript := NewSpawner(3, script, nil).Place(arena)
	builtin := NewSpawner(3, nil, nil).Place(arena)
	if withScript != builtin {
		t.Fatalf("expected fallback placement %+v, got %+v", builtin, withScript)
	}
}

func TestSpawnerIsDeterministic(t *testing.T) {
	arena := testArena(t)
	a := NewSpawner(42, nil, nil)
	b := NewSpawner(42, nil, nil)
	for i := 0; i < 10; i++ {
		if pa, pb := a.Place(arena), b.Place(arena); pa != pb {
			t.Fatalf("placement %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestFillPopulatesArena(t *testing.T) {
	g := newTestGame(t, nil)
	enemies := g.World.Query(component.EnemyComponent.Kind())
	if len(enemies) != 6 {
		t.Fatalf("expected 6 enemies, got %d", len(enemies))
	}

	for _, e := range enemies {
		tr, _ := ecs.Get(g.World, e, component.TransformComponent.Kind())
		if tr.Position.X() < -60 || tr.Position.X() >= 60 || tr.Position.Z() < -60 || tr.Position.Z() >= 60 {
			t.Fatalf("enemy outside the arena: %+v", tr.Position)
		}
		en, _ := ecs.Get(g.World, e, component.EnemyComponent.Kind())
		if en.Speed < 0.02 || en.Speed >= 0.04 {
			t.Fatalf("speed %v outside [0.02, 0.04)", en.Speed)
		}
	}
}

func TestSpawnSystemTopsUpAfterTuningChange(t *testing.T) {
	g := newTestGame(t, nil)
	g.start(t)

	_, arena, _ := ecs.Singleton(g.World, component.ArenaComponent.Kind())
	arena.EnemyCount = 9
	g.tick(1)
	if n := EnemyCount(g.World); n != 9 {
		t.Fatalf("expected 9 enemies, got %d", n)
	}
}

func TestSpawnWithoutArena(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewSpawner(1, nil, nil).Spawn(w); err == nil {
		t.Fatalf("expected error without arena")
	}
	if err := NewSpawner(1, nil, nil).Fill(w); err == nil {
		t.Fatalf("expected error without arena")
	}
}

func TestSpawnPushesEvent(t *testing.T) {
	g := newTestGame(t, func(tn *prefabs.Tuning) { tn.Arena.EnemyCount = 0 })
	e, err := g.Spawner.Spawn(g.World)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	events := g.World.Events().Drain()
	found := false
	for _, evt := range events {
		if evt.Kind == ecs.EventEnemySpawn && evt.Entity == e {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected spawn event for %v in %+v", e, events)
	}
}
