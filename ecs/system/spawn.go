package system

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"go.uber.org/zap"
)

var errNoArena = errors.New("spawn: no arena")

// Spawner places enemies in the arena. Placement goes through the script
// when one is loaded and falls back to the built-in rule if it fails.
type Spawner struct {
	rng    *rand.Rand
	script *SpawnScript
	log    *zap.Logger
}

func NewSpawner(seed uint64, script *SpawnScript, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spawner{
		rng:    rand.New(rand.NewPCG(seed, seed)),
		script: script,
		log:    log,
	}
}

// SetScript swaps the placement script; nil selects the built-in rule.
func (s *Spawner) SetScript(script *SpawnScript) {
	s.script = script
}

// Place draws one placement without touching the world.
func (s *Spawner) Place(arena *component.Arena) entity.Placement {
	draws := [4]float64{s.rng.Float64(), s.rng.Float64(), s.rng.Float64(), s.rng.Float64()}
	if s.script != nil {
		p, err := s.script.Place(draws, arena)
		if err == nil {
			return p
		}
		s.log.Warn("spawn script failed, using default placement",
			zap.String("script", s.script.Path()), zap.Error(err))
	}
	return defaultPlacement(draws, arena)
}

func defaultPlacement(draws [4]float64, arena *component.Arena) entity.Placement {
	return entity.Placement{
		Position: mgl64.Vec3{(draws[0] - 0.5) * 2 * arena.HalfExtent, 0, (draws[1] - 0.5) * 2 * arena.HalfExtent},
		Speed: arena.Enemy.SpeedMin + draws[2]*arena.Enemy.SpeedJitter,
		Phase: draws[3] * 2 * math.Pi,
	}
}

// Spawn creates one enemy at a fresh placement.
func (s *Spawner) Spawn(w *ecs.World) (ecs.Entity, error) {
	_, arena, ok := ecs.Singleton(w, component.ArenaComponent.Kind())
	if !ok {
		return ecs.NoEntity, errNoArena
	}
	e, err := entity.NewEnemy(w, arena.Enemy, s.Place(arena))
	if err != nil {
		return ecs.NoEntity, err
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemySpawn, Entity: e})
	return e, nil
}

// Fill spawns until the live enemy count reaches the arena's target.
func (s *Spawner) Fill(w *ecs.World) error {
	_, arena, ok := ecs.Singleton(w, component.ArenaComponent.Kind())
	if !ok {
		return errNoArena
	}
	for EnemyCount(w) < arena.EnemyCount {
		if _, err := s.Spawn(w); err != nil {
			return err
		}
	}
	return nil
}

// SpawnSystem keeps the registry at its target size. Kills are replaced in
// the same tick by the weapon; this catches count changes from a tuning
// reload.
type SpawnSystem struct {
	spawner *Spawner
	log     *zap.Logger
}

func NewSpawnSystem(spawner *Spawner, log *zap.Logger) *SpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnSystem{spawner: spawner, log: log}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s.spawner == nil || !gameRunning(w) {
		return
	}
	if err := s.spawner.Fill(w); err != nil {
		s.log.Error("fill arena", zap.Error(err))
	}
}
