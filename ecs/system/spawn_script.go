package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/prefabs"
)

var spawnScriptInputs = []string{
	"rand_x", "rand_z", "rand_speed", "rand_phase",
	"half_extent", "speed_min", "speed_jitter",
}

var spawnScriptOutputs = []string{"x", "z", "speed", "phase"}

// SpawnScript is a compiled placement script. It maps four uniform draws to
// an enemy position, speed and bob phase.
type SpawnScript struct {
	path     string
	compiled *tengo.Compiled
}

// LoadSpawnScript compiles the named script from the prefab scripts
// directory. Disk copies override the embedded ones.
func LoadSpawnScript(name string) (*SpawnScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("spawn script %q: %w", name, err)
	}
	return CompileSpawnScript(name, src)
}

func CompileSpawnScript(name string, src []byte) (*SpawnScript, error) {
	script := tengo.NewScript(src)
	for _, in := range spawnScriptInputs {
		_ = script.Add(in, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script %q: compile: %w", name, err)
	}
	return &SpawnScript{path: name, compiled: compiled}, nil
}

func (s *SpawnScript) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Place runs the script for one enemy.
func (s *SpawnScript) Place(draws [4]float64, arena *component.Arena) (entity.Placement, error) {
	if s == nil || s.compiled == nil {
		return entity.Placement{}, fmt.Errorf("spawn script: not compiled")
	}
	values := []float64{
		draws[0], draws[1], draws[2], draws[3],
		arena.HalfExtent, arena.Enemy.SpeedMin, arena.Enemy.SpeedJitter,
	}
	for i, in := range spawnScriptInputs {
		if err := s.compiled.Set(in, values[i]); err != nil {
			return entity.Placement{}, fmt.Errorf("spawn script %q: set %s: %w", s.path, in, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return entity.Placement{}, fmt.Errorf("spawn script %q: run: %w", s.path, err)
	}

	out := make(map[string]float64, len(spawnScriptOutputs))
	for _, name := range spawnScriptOutputs {
		if !s.compiled.IsDefined(name) {
			return entity.Placement{}, fmt.Errorf("spawn script %q: %s not defined", s.path, name)
		}
		out[name] = s.compiled.Get(name).Float()
	}

	return entity.Placement{
		Position: mgl64.Vec3{out["x"], 0, out["z"]},
		Speed:    out["speed"],
		Phase:    out["phase"],
	}, nil
}
