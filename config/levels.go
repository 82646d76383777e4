package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var levelsYAML []byte

// Point is a spawn position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned area.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PickupSpawn places one collectible.
type PickupSpawn struct {
	X    float64    `yaml:"x"`
	Y    float64    `yaml:"y"`
	Kind PickupKind `yaml:"kind"`
}

// BossSpawn configures a level's boss. Health is per level, not derived.
type BossSpawn struct {
	Name           string  `yaml:"name"`
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Health         int     `yaml:"health"`
	AttackInterval float64 `yaml:"attack_interval"` // seconds
}

// AttackEvery returns the boss attack cadence, falling back to the shared default.
func (b *BossSpawn) AttackEvery() time.Duration {
	if b == nil || b.AttackInterval <= 0 {
		return Boss.DefaultAttackInterval
	}
	return time.Duration(b.AttackInterval * float64(time.Second))
}

// LevelConfig describes one level of the run.
type LevelConfig struct {
	Number  int           `yaml:"number"`
	Name    string        `yaml:"name"`
	Spawn   Point         `yaml:"spawn"`
	Exit    Rect          `yaml:"exit"`
	Enemies []Point       `yaml:"enemies"`
	Pickups []PickupSpawn `yaml:"pickups"`
	Boss    *BossSpawn    `yaml:"boss"`
}

// HasBoss reports whether the exit stays locked until a boss falls.
func (l LevelConfig) HasBoss() bool {
	return l.Boss != nil
}

type LevelTable struct {
	Levels []LevelConfig `yaml:"levels"`
}

// Count is the number of levels in a run.
func (t *LevelTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.Levels)
}

// Level returns the level with the given 1-based number.
func (t *LevelTable) Level(number int) (LevelConfig, bool) {
	if t == nil {
		return LevelConfig{}, false
	}
	for _, l := range t.Levels {
		if l.Number == number {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// ParseLevelTable decodes and validates a YAML level table.
func ParseLevelTable(data []byte) (*LevelTable, error) {
	var table LevelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse level table: %w", err)
	}
	if err := validateLevelTable(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

func validateLevelTable(t *LevelTable) error {
	if len(t.Levels) == 0 {
		return errors.New("level table has no levels")
	}
	for i, l := range t.Levels {
		if l.Number != i+1 {
			return fmt.Errorf("level %d: expected number %d", l.Number, i+1)
		}
		if l.Boss != nil && l.Boss.Health <= 0 {
			return fmt.Errorf("level %d: boss health must be positive", l.Number)
		}
		for _, p := range l.Pickups {
			switch p.Kind {
			case PickupCoin, PickupMushroom, PickupFireFlower, PickupStar:
			default:
				return fmt.Errorf("level %d: unknown pickup kind %q", l.Number, p.Kind)
			}
		}
	}
	return nil
}

// Levels is the built-in level table.
var Levels *LevelTable

func init() {
	table, err := ParseLevelTable(levelsYAML)
	if err != nil {
		panic("failed to load built-in levels: " + err.Error())
	}
	Levels = table
}
