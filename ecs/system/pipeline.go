package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/prefabs"
	"go.uber.org/zap"
)

// Options configures a freshly built world.
type Options struct {
	Tuning *prefabs.Tuning
	Source InputSource
	Seed   uint64
	Logger *zap.Logger
}

// Pipeline is a world wired with the fixed per-tick system order together
// with the collaborators the platform layer needs to reach.
type Pipeline struct {
	World   *ecs.World
	Spawner *Spawner
	Contact *ContactSystem
}

// NewPipeline builds the session, the player and the initial enemies, then
// registers systems in tick order.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Tuning == nil {
		return nil, errors.New("pipeline: nil tuning")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, opts.Tuning); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if _, err := entity.NewPlayer(w, opts.Tuning.Player, opts.Tuning.Weapon); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	var script *SpawnScript
	if name := opts.Tuning.Arena.SpawnScript; name != "" {
		s, err := LoadSpawnScript(name)
		if err != nil {
			log.Warn("spawn script unavailable, using default placement", zap.Error(err))
		} else {
			script = s
		}
	}
	spawner := NewSpawner(opts.Seed, script, log)
	if err := spawner.Fill(w); err != nil {
		return nil, fmt.Errorf("pipeline: spawn enemies: %w", err)
	}
	// Initial spawns are not gameplay events.
	w.Events().Drain()

	contact := NewContactSystem()
	for _, s := range []ecs.System{
		NewInputSystem(opts.Source),
		NewLifecycleSystem(log),
		NewLookSystem(),
		NewWeaponSystem(spawner, log),
		NewPlayerControllerSystem(),
		NewProjectileSystem(),
		NewTTLSystem(),
		NewEnemyAISystem(),
		contact,
		NewHealthBarSystem(),
		NewFlashSystem(),
		NewSpawnSystem(spawner, log),
		NewGameOverSystem(log),
		NewHUDSystem(),
	} {
		w.AddSystem(s)
	}

	return &Pipeline{World: w, Spawner: spawner, Contact: contact}, nil
}

// NewWorld is NewPipeline for callers that only need the world.
func NewWorld(opts Options) (*ecs.World, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return p.World, nil
}
