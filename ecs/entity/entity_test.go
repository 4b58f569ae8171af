package entity

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/prefabs"
)

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	return tuning
}

func TestNewEnemyCreatesRegions(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	tmpl := EnemyTemplateFromSpec(tuning.Enemy)

	e, err := NewEnemy(w, tmpl, Placement{Position: mgl64.Vec3{3, 0, -4}, Speed: 0.03, Phase: 1})
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}

	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		t.Fatalf("expected enemy component")
	}
	if en.Speed != 0.03 || en.Phase != 1 || en.ContactRange != 1.2 {
		t.Fatalf("unexpected enemy %+v", en)
	}

	tests := []struct {
		name   string
		handle uint64
		kind   component.RegionKind
		center float64
		half   mgl64.Vec3
	}{
		{name: "body", handle: en.Regions[0], kind: component.RegionBody, center: 0.9, half: mgl64.Vec3{0.4, 0.7, 0.3}},
		{name: "head", handle: en.Regions[1], kind: component.RegionHead, center: 1.65, half: mgl64.Vec3{0.25, 0.25, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ecs.Get(w, ecs.Entity(tt.handle), component.HitRegionComponent.Kind())
			if !ok {
				t.Fatalf("expected region")
			}
			if ecs.Entity(r.Owner) != e || r.Kind != tt.kind {
				t.Fatalf("unexpected region %+v", r)
			}
			if r.Center.Y() != tt.center || r.HalfExtents != tt.half {
				t.Fatalf("unexpected box %+v / %+v", r.Center, r.HalfExtents)
			}
		})
	}

	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	if h.Current != 100 || h.Max != 100 {
		t.Fatalf("unexpected health %+v", h)
	}
	bar, _ := ecs.Get(w, e, component.HealthBarComponent.Kind())
	if bar.Scale != 1 || bar.Width != 0.8 {
		t.Fatalf("unexpected bar %+v", bar)
	}
}

func TestNewPlayer(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	e, err := NewPlayer(w, tuning.Player, tuning.Weapon)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Position != (mgl64.Vec3{0, 1.7, 0}) {
		t.Fatalf("expected player at eye height, got %+v", tr.Position)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !p.Grounded {
		t.Fatalf("expected player grounded")
	}
	wpn, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
	if wpn.Cooldown != 180*time.Millisecond || wpn.FlashDuration != 100*time.Millisecond {
		t.Fatalf("unexpected weapon %+v", wpn)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatalf("player missing tag or input")
	}
}

func TestApplyTuningPreservesRuntimeState(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	player, err := NewPlayer(w, tuning.Player, tuning.Weapon)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if _, err := NewSession(w, tuning); err != nil {
		t.Fatalf("new session: %v", err)
	}
	enemy, err := NewEnemy(w, EnemyTemplateFromSpec(tuning.Enemy), Placement{Speed: 0.025})
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}

	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Yaw, p.Pitch = 1.1, -0.3
	wpn, _ := ecs.Get(w, player, component.WeaponComponent.Kind())
	wpn.ReadyAt = 5 * time.Second

	tuning.Player.MoveSpeed = 0.5
	tuning.Weapon.CooldownMS = 90
	tuning.Enemy.ContactDamage = 1
	tuning.Arena.EnemyCount = 3
	ApplyTuning(w, tuning)

	if p.MoveSpeed != 0.5 || p.Yaw != 1.1 || p.Pitch != -0.3 {
		t.Fatalf("unexpected player after reload %+v", p)
	}
	if wpn.Cooldown != 90*time.Millisecond || wpn.ReadyAt != 5*time.Second {
		t.Fatalf("unexpected weapon after reload %+v", wpn)
	}
	en, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if en.ContactDamage != 1 || en.Speed != 0.025 {
		t.Fatalf("unexpected enemy after reload %+v", en)
	}
	_, arena, _ := ecs.Singleton(w, component.ArenaComponent.Kind())
	if arena.EnemyCount != 3 {
		t.Fatalf("expected arena count 3, got %d", arena.EnemyCount)
	}
}

func TestNewProjectile(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewProjectile(w, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, -2.2}, 35)
	if err != nil {
		t.Fatalf("new projectile: %v", err)
	}
	pr, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok || pr.Velocity != (mgl64.Vec3{0, 0, -2.2}) {
		t.Fatalf("unexpected projectile %+v", pr)
	}
	ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind())
	if !ok || ttl.Frames != 35 {
		t.Fatalf("unexpected ttl %+v", ttl)
	}
}
