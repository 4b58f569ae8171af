package system

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStartPressDoesNotFire(t *testing.T) {
	g := newTestGame(t, nil)
	g.in.press()
	g.World.Update()

	if g.state(t).Phase != component.PhaseRunning {
		t.Fatalf("expected running after first press")
	}
	if n := g.World.Count(component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("expected the starting press not to fire, got %d projectiles", n)
	}
	if n := g.World.Events().Count(ecs.EventFired); n != 0 {
		t.Fatalf("expected no fired events, got %d", n)
	}
}

func TestFireIgnoredUnlessRunning(t *testing.T) {
	g := newTestGame(t, nil)
	h := g.playerHealth(t)
	g.start(t)
	h.Current = 0
	g.tick(1)
	if g.state(t).Phase != component.PhaseGameOver {
		t.Fatalf("expected game over")
	}

	g.in.press()
	g.tick(1)
	if n := g.World.Count(component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("expected no shots after game over, got %d projectiles", n)
	}
}

func TestWeaponCooldown(t *testing.T) {
	g, _ := newDuelGame(t)

	tests := []struct {
		name    string
		wait    int
		presses int
		want    int
	}{
		{name: "first shot", presses: 1, want: 1},
		{name: "same tick double press", presses: 2, want: 0},
		{name: "inside cooldown", wait: cooldownTicks - 3, presses: 1, want: 0},
		{name: "after cooldown", wait: 2, presses: 1, want: 1},
	}

	for _, tt := range tests {
		g.tick(tt.wait)
		for i := 0; i < tt.presses; i++ {
			g.in.press()
		}
		g.World.Update()
		if got := g.World.Events().Count(ecs.EventFired); got != tt.want {
			t.Fatalf("%s: expected %d shots, got %d", tt.name, tt.want, got)
		}
	}
}

func TestFireWeaponCooldownBoundary(t *testing.T) {
	g, _ := newDuelGame(t)
	weapon, ok := ecs.Get(g.World, g.player, component.WeaponComponent.Kind())
	if !ok {
		t.Fatalf("expected weapon")
	}

	now := g.state(t).Clock
	if _, ok := FireWeapon(g.World, g.player, now, nil); !ok {
		t.Fatalf("expected first shot to fire")
	}
	if _, ok := FireWeapon(g.World, g.player, now+weapon.Cooldown-1, nil); ok {
		t.Fatalf("expected shot 1ns before cooldown end to be dropped")
	}
	if _, ok := FireWeapon(g.World, g.player, now+weapon.Cooldown, nil); !ok {
		t.Fatalf("expected shot at exactly the cooldown to fire")
	}
}

func TestProjectileSpawnAndLifetime(t *testing.T) {
	g, _ := newDuelGame(t)
	g.in.press()
	g.World.Update()

	projectiles := g.World.Query(component.ProjectileComponent.Kind())
	if len(projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(projectiles))
	}
	proj := projectiles[0]

	tr, _ := ecs.Get(g.World, proj, component.TransformComponent.Kind())
	p, _ := ecs.Get(g.World, proj, component.ProjectileComponent.Kind())
	// Spawned 0.8 ahead of the eye, then moved once this tick.
	if !almostEqual(tr.Position.Z(), -(0.8 + 2.2)) || !almostEqual(tr.Position.Y(), 1.7) {
		t.Fatalf("unexpected projectile position %+v", tr.Position)
	}
	if !almostEqual(p.Velocity.Z(), -2.2) {
		t.Fatalf("unexpected projectile velocity %+v", p.Velocity)
	}

	g.tick(33)
	if !ecs.IsAlive(g.World, proj) {
		t.Fatalf("expected projectile alive after 34 ticks")
	}
	g.tick(1)
	if ecs.IsAlive(g.World, proj) {
		t.Fatalf("expected projectile gone after 35 ticks")
	}
}

func TestHeadAndBodyDamageToKill(t *testing.T) {
	g, enemy := newDuelGame(t)
	p := g.playerState(t)

	aimBody := math.Atan((1.0 - 1.7) / 10)

	steps := []struct {
		name   string
		pitch  float64
		region component.RegionKind
		want   float64
	}{
		{name: "headshot", pitch: 0, region: component.RegionHead, want: 40},
		{name: "body", pitch: aimBody, region: component.RegionBody, want: 20},
	}

	for _, s := range steps {
		p.Pitch = s.pitch
		g.in.press()
		g.World.Update()
		events := g.World.Events().Drain()
		var hit *HitInfo
		for _, evt := range events {
			if evt.Kind == ecs.EventEnemyHit {
				info := evt.Data.(HitInfo)
				hit = &info
			}
		}
		if hit == nil {
			t.Fatalf("%s: expected a hit", s.name)
		}
		if hit.Region != s.region {
			t.Fatalf("%s: expected %s region, got %s", s.name, s.region, hit.Region)
		}
		if got := g.enemyHealth(t, enemy); !almostEqual(got, s.want) {
			t.Fatalf("%s: expected health %v, got %v", s.name, s.want, got)
		}
		g.tick(cooldownTicks)
	}

	regions, _ := ecs.Get(g.World, enemy, component.EnemyComponent.Kind())
	regionHandles := regions.Regions

	p.Pitch = aimBody
	g.in.press()
	g.World.Update()

	if ecs.IsAlive(g.World, enemy) {
		t.Fatalf("expected enemy removed at zero health")
	}
	for _, r := range regionHandles {
		if ecs.IsAlive(g.World, ecs.Entity(r)) {
			t.Fatalf("expected hit region %v removed with its enemy", ecs.Entity(r))
		}
	}
	if g.state(t).Score != 1 {
		t.Fatalf("expected score 1, got %d", g.state(t).Score)
	}
	if n := EnemyCount(g.World); n != 1 {
		t.Fatalf("expected registry refilled to 1, got %d", n)
	}
	if n := g.World.Events().Count(ecs.EventEnemyKilled); n != 1 {
		t.Fatalf("expected one kill event, got %d", n)
	}
	if n := g.World.Events().Count(ecs.EventEnemySpawn); n != 1 {
		t.Fatalf("expected one replacement spawn, got %d", n)
	}
}

func TestMissDoesNothing(t *testing.T) {
	g, enemy := newDuelGame(t)
	g.playerState(t).Yaw = math.Pi

	g.in.press()
	g.World.Update()

	if got := g.enemyHealth(t, enemy); got != 100 {
		t.Fatalf("expected untouched enemy, got health %v", got)
	}
	if n := g.World.Events().Count(ecs.EventFired); n != 1 {
		t.Fatalf("expected the shot to fire, got %d", n)
	}
	if n := g.World.Events().Count(ecs.EventEnemyHit); n != 0 {
		t.Fatalf("expected a miss, got %d hits", n)
	}
}

func TestHitFlashAndRecoilExpire(t *testing.T) {
	g, enemy := newDuelGame(t)
	g.in.press()
	g.World.Update()

	if !ecs.Has(g.World, enemy, component.HitFlashComponent.Kind()) {
		t.Fatalf("expected hit flash after a hit")
	}
	if !ecs.Has(g.World, g.player, component.RecoilComponent.Kind()) {
		t.Fatalf("expected recoil after firing")
	}

	g.tick(4)
	if ecs.Has(g.World, g.player, component.RecoilComponent.Kind()) {
		t.Fatalf("expected recoil to clear within 80ms")
	}
	if !ecs.Has(g.World, enemy, component.HitFlashComponent.Kind()) {
		t.Fatalf("expected hit flash to last 100ms")
	}

	g.tick(3)
	if ecs.Has(g.World, enemy, component.HitFlashComponent.Kind()) {
		t.Fatalf("expected hit flash to clear after 100ms")
	}
}

func TestRepeatedHitRestartsFlash(t *testing.T) {
	g, enemy := newDuelGame(t)
	FlashEnemy(g.World, enemy, 100*common.TickDuration)
	FlashEnemy(g.World, enemy, 2*common.TickDuration)

	f, ok := ecs.Get(g.World, enemy, component.HitFlashComponent.Kind())
	if !ok || f.Remaining != 2*common.TickDuration {
		t.Fatalf("expected flash timer restarted, got %+v", f)
	}
}

// withoutArena readies a one-shot kill whose replacement spawn has nowhere
// to go.
func withoutArena(t *testing.T) (*testGame, ecs.Entity) {
	t.Helper()
	g, enemy := newDuelGame(t)
	h, ok := ecs.Get(g.World, enemy, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("expected enemy health")
	}
	h.Current = 1
	arena, _, ok := ecs.Singleton(g.World, component.ArenaComponent.Kind())
	if !ok {
		t.Fatalf("expected arena")
	}
	ecs.DestroyEntity(g.World, arena)
	return g, enemy
}

func TestFireWeaponReportsRespawnFailure(t *testing.T) {
	g, enemy := withoutArena(t)

	res, fired := FireWeapon(g.World, g.player, g.state(t).Clock, g.Spawner)
	if !fired {
		t.Fatalf("expected the shot to fire")
	}
	if !res.Killed || ecs.IsAlive(g.World, enemy) {
		t.Fatalf("expected the kill to stand without a respawn")
	}
	if !errors.Is(res.Err, errNoArena) {
		t.Fatalf("expected respawn error to wrap errNoArena, got %v", res.Err)
	}
	if res.Respawned != ecs.NoEntity {
		t.Fatalf("expected no replacement, got %v", res.Respawned)
	}
	if g.state(t).Score != 1 {
		t.Fatalf("expected the kill scored, got %d", g.state(t).Score)
	}
}

func TestWeaponSystemLogsShotFailures(t *testing.T) {
	g, _ := withoutArena(t)
	core, logs := observer.New(zapcore.DebugLevel)
	ws := NewWeaponSystem(g.Spawner, zap.New(core))

	in, ok := ecs.Get(g.World, g.player, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("expected player input")
	}
	in.PrimaryPresses = 1
	ws.Update(g.World)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("shot side effect failed")
	if warns.Len() != 1 {
		t.Fatalf("expected one warning, got %d of %d entries", warns.Len(), logs.Len())
	}
	if _, ok := warns.All()[0].ContextMap()["error"]; !ok {
		t.Fatalf("expected the error field on the warning")
	}
}
