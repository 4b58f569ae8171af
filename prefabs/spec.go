package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	WeaponFile = "weapon.yaml"
	EnemyFile  = "enemy.yaml"
	ArenaFile  = "arena.yaml"
)

// TuningFiles lists the prefab files that make up a Tuning.
var TuningFiles = []string{PlayerFile, WeaponFile, EnemyFile, ArenaFile}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning is every gameplay constant, grouped by prefab file.
type Tuning struct {
	Player PlayerSpec
	Weapon WeaponSpec
	Enemy  EnemySpec
	Arena  ArenaSpec
}

func LoadTuning() (*Tuning, error) {
	player, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	weapon, err := LoadSpec[WeaponSpec](WeaponFile)
	if err != nil {
		return nil, err
	}
	enemy, err := LoadSpec[EnemySpec](EnemyFile)
	if err != nil {
		return nil, err
	}
	arena, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	return &Tuning{Player: player, Weapon: weapon, Enemy: enemy, Arena: arena}, nil
}

// IsTuningFile reports whether a changed file name affects LoadTuning.
func IsTuningFile(name string) bool {
	clean := cleanPrefabPath(name)
	for _, f := range TuningFiles {
		if clean == f {
			return true
		}
	}
	return false
}

type PlayerSpec struct {
	Name        string  `yaml:"name"`
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	Gravity     float64 `yaml:"gravity"`
	EyeHeight   float64 `yaml:"eye_height"`
	Sensitivity float64 `yaml:"sensitivity"`
	Health      float64 `yaml:"health"`
}

type WeaponSpec struct {
	Name               string  `yaml:"name"`
	CooldownMS         int     `yaml:"cooldown_ms"`
	HeadDamage         float64 `yaml:"head_damage"`
	BodyDamage         float64 `yaml:"body_damage"`
	MuzzleOffset       float64 `yaml:"muzzle_offset"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime int     `yaml:"projectile_lifetime"`
	HitFlashMS         int     `yaml:"hit_flash_ms"`
	RecoilMS           int     `yaml:"recoil_ms"`
	RecoilKick         float64 `yaml:"recoil_kick"`
}

type EnemySpec struct {
	Name          string        `yaml:"name"`
	Health        float64       `yaml:"health"`
	SpeedMin      float64       `yaml:"speed_min"`
	SpeedJitter   float64       `yaml:"speed_jitter"`
	BobStep       float64       `yaml:"bob_step"`
	BobHeight     float64       `yaml:"bob_height"`
	ContactRange  float64       `yaml:"contact_range"`
	ContactDamage float64       `yaml:"contact_damage"`
	Hitboxes      []HitboxSpec  `yaml:"hitboxes"`
	HealthBar     HealthBarSpec `yaml:"health_bar"`
	Color         *YAMLColor    `yaml:"color"`
	LimbColor     *YAMLColor    `yaml:"limb_color"`
	FlashColor    *YAMLColor    `yaml:"flash_color"`
}

// Hitbox returns the hitbox spec for a region name.
func (s EnemySpec) Hitbox(region string) (HitboxSpec, bool) {
	for _, hb := range s.Hitboxes {
		if hb.Region == region {
			return hb, true
		}
	}
	return HitboxSpec{}, false
}

type HitboxSpec struct {
	Region  string  `yaml:"region"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Depth   float64 `yaml:"depth"`
	OffsetY float64 `yaml:"offset_y"`
}

type HealthBarSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"`
}

type ArenaSpec struct {
	Name         string     `yaml:"name"`
	EnemyCount   int        `yaml:"enemy_count"`
	HalfExtent   float64    `yaml:"half_extent"`
	SpawnScript  string     `yaml:"spawn_script"`
	ArmSwingRate float64    `yaml:"arm_swing_rate"`
	ArmSwingAmp  float64    `yaml:"arm_swing_amp"`
	GroundSize   float64    `yaml:"ground_size"`
	GroundColor  *YAMLColor `yaml:"ground_color"`
	SkyColor     *YAMLColor `yaml:"sky_color"`
	FogNear      float64    `yaml:"fog_near"`
	FogFar       float64    `yaml:"fog_far"`
	FOV          float64    `yaml:"fov"`
	Near         float64    `yaml:"near"`
	Far          float64    `yaml:"far"`
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	s = strings.TrimPrefix(s, "0x")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
