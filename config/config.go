package config

import "time"

// Body is a collision body size for one power tier.
// Offsets are relative to the sprite origin and only matter to a renderer.
type Body struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// PowerConfig contains power tier and invincibility tuning
type PowerConfig struct {
	StarDuration        time.Duration // Star invincibility window (reset, never extended)
	DamageGraceDuration time.Duration // Invincibility after a non-lethal downgrade
	Bodies              map[PowerTier]Body
}

// CombatConfig contains contact classification and projectile values
type CombatConfig struct {
	// Jump-kill: player bottom must sit this far above the enemy's vertical center.
	// Kept below half of EnemyHeight so a swept landing always qualifies.
	StompMargin  float64
	StompRebound float64 // Vertical speed after a jump-kill (y-down, negative is up)

	EnemyWidth  float64
	EnemyHeight float64

	FireballSpeed    float64
	FireballWidth    float64
	FireballHeight   float64
	FireballLifetime time.Duration

	DamageFlashSeconds float32
}

// RevivalConfig contains co-op revival tuning
type RevivalConfig struct {
	CountdownSeconds int
	TickInterval     time.Duration
	OffsetX          float64 // Revived player lands this far from the surviving partner
	OffsetY          float64
	DefaultSpawnX    float64 // Used when no surviving partner can be found
	DefaultSpawnY    float64
}

// BossConfig contains boss encounter tuning shared by every boss level
type BossConfig struct {
	DamagePerHit          int
	Width                 float64
	Height                float64
	DefaultAttackInterval time.Duration
	BreathWidth           float64
	BreathHeight          float64
	BreathLifetime        time.Duration
	HitFlashSeconds       float32
}

// ScoreConfig contains score rewards
type ScoreConfig struct {
	Coin          int
	Enemy         int
	PowerUp       int
	LevelComplete int
	BossDefeat    int

	LevelTransitionDelay time.Duration
}

// Config holds general session configuration
type Config struct {
	TPS         int // Frames per second of the host loop
	SpaceWidth  int
	SpaceHeight int
	CellSize    int
	AppName     string // gdata application name
}

// FrameDuration is the clock step applied per host frame.
func (c *Config) FrameDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// Global configuration instances
var C *Config
var Power PowerConfig
var Combat CombatConfig
var Revival RevivalConfig
var Boss BossConfig
var Score ScoreConfig

func init() {
	C = &Config{
		TPS:         60,
		SpaceWidth:  6400,
		SpaceHeight: 640,
		CellSize:    16,
		AppName:     "stompers",
	}

	Power = PowerConfig{
		StarDuration:        10 * time.Second,
		DamageGraceDuration: 3 * time.Second,
		Bodies: map[PowerTier]Body{
			TierNormal: {Width: 16, Height: 16},
			TierSuper:  {Width: 16, Height: 32, OffsetY: -16},
			TierFire:   {Width: 16, Height: 32, OffsetY: -16},
		},
	}

	Combat = CombatConfig{
		StompMargin:  5,
		StompRebound: -8,

		EnemyWidth:  16,
		EnemyHeight: 16,

		FireballSpeed:    6,
		FireballWidth:    8,
		FireballHeight:   8,
		FireballLifetime: 2 * time.Second,

		DamageFlashSeconds: 0.25,
	}

	Revival = RevivalConfig{
		CountdownSeconds: 30,
		TickInterval:     time.Second,
		OffsetX:          50,
		OffsetY:          0,
		DefaultSpawnX:    100,
		DefaultSpawnY:    300,
	}

	Boss = BossConfig{
		DamagePerHit:          1,
		Width:                 48,
		Height:                48,
		DefaultAttackInterval: 3 * time.Second,
		BreathWidth:           48,
		BreathHeight:          16,
		BreathLifetime:        1500 * time.Millisecond,
		HitFlashSeconds:       0.2,
	}

	Score = ScoreConfig{
		Coin:          10,
		Enemy:         50,
		PowerUp:       50,
		LevelComplete: 100,
		BossDefeat:    500,

		LevelTransitionDelay: 2 * time.Second,
	}
}
