package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Store is the key-value store session state is mirrored into.
// *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store Store

// InitPersistence opens the platform data store for the session.
// A store already installed with SetStore is kept.
func InitPersistence() error {
	if store != nil {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetStore replaces the active store. A nil store disables persistence.
func SetStore(s Store) {
	store = s
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) LoadItem(key string) ([]byte, error) {
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

// Store keys
const (
	keyScore             = "score"
	keyCurrentLevel      = "currentLevel"
	keyGameMode          = "gameMode"
	keyCoinsCollected    = "coinsCollected"
	keyEnemiesDefeated   = "enemiesDefeated"
	keyPowerUpsCollected = "powerUpsCollected"
	keyLevelsCompleted   = "levelsCompleted"
	keyBossesDefeated    = "bossesDefeated"
	keyPoweredUp         = "isPoweredUp"
	keyFirePower         = "hasFirePower"
	keyAlive             = "isAlive"
)

// playerKey returns the per-player key; player 2 keys carry a "2" suffix.
func playerKey(base string, id int) string {
	if id == 2 {
		return base + "2"
	}
	return base
}

// PlayerSnapshot is the persisted part of one player.
type PlayerSnapshot struct {
	PoweredUp bool
	FirePower bool
	Alive     bool
}

func snapshotPlayer(p *components.PlayerData) PlayerSnapshot {
	return PlayerSnapshot{
		PoweredUp: p.Tier >= cfg.TierSuper,
		FirePower: p.Tier == cfg.TierFire,
		Alive:     p.Alive,
	}
}

// Tier rebuilds the power tier from the stored flags.
func (s PlayerSnapshot) Tier() cfg.PowerTier {
	switch {
	case s.FirePower:
		return cfg.TierFire
	case s.PoweredUp:
		return cfg.TierSuper
	}
	return cfg.TierNormal
}

// SessionContext is the typed view of everything written to the store.
type SessionContext struct {
	Score        int
	CurrentLevel int
	Mode         cfg.GameMode
	Stats        components.Stats
	Players      [2]PlayerSnapshot // index 0 is player 1
}

// DefaultSessionContext is what a session starts from when nothing is stored.
func DefaultSessionContext() SessionContext {
	return SessionContext{
		CurrentLevel: 1,
		Mode:         cfg.SinglePlayer,
		Players: [2]PlayerSnapshot{
			{Alive: true},
			{Alive: true},
		},
	}
}

// CaptureSession snapshots the live session and players.
func CaptureSession(e *ecs.ECS) SessionContext {
	ctx := DefaultSessionContext()

	if entry, ok := components.Session.First(e.World); ok {
		session := components.Session.Get(entry)
		ctx.Score = session.Score
		ctx.CurrentLevel = session.CurrentLevel
		ctx.Mode = session.Mode
		ctx.Stats = session.Stats
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		if p.ID == 1 || p.ID == 2 {
			ctx.Players[p.ID-1] = snapshotPlayer(p)
		}
	})

	return ctx
}

type storeField struct {
	key   string
	value any
}

func (c SessionContext) fields() []storeField {
	return []storeField{
		{keyScore, c.Score},
		{keyCurrentLevel, c.CurrentLevel},
		{keyGameMode, c.Mode.String()},
		{keyCoinsCollected, c.Stats.CoinsCollected},
		{keyEnemiesDefeated, c.Stats.EnemiesDefeated},
		{keyPowerUpsCollected, c.Stats.PowerUpsCollected},
		{keyLevelsCompleted, c.Stats.LevelsCompleted},
		{keyBossesDefeated, c.Stats.BossesDefeated},
		{playerKey(keyPoweredUp, 1), c.Players[0].PoweredUp},
		{playerKey(keyFirePower, 1), c.Players[0].FirePower},
		{playerKey(keyAlive, 1), c.Players[0].Alive},
		{playerKey(keyPoweredUp, 2), c.Players[1].PoweredUp},
		{playerKey(keyFirePower, 2), c.Players[1].FirePower},
		{playerKey(keyAlive, 2), c.Players[1].Alive},
	}
}

// SaveSessionContext writes every field of ctx under its own key.
// The first failure is returned after all fields were attempted.
func SaveSessionContext(ctx SessionContext) error {
	if store == nil {
		return nil
	}

	var firstErr error
	for _, f := range ctx.fields() {
		data, err := json.Marshal(f.value)
		if err == nil {
			err = store.SaveItem(f.key, data)
		}
		if err != nil {
			log.Printf("Warning: Could not save %s: %v", f.key, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// LoadSessionContext reads the stored session. Missing or unreadable keys
// keep their defaults; ok is false when no store is configured.
func LoadSessionContext() (SessionContext, bool) {
	ctx := DefaultSessionContext()
	if store == nil {
		return ctx, false
	}

	loadValue(keyScore, &ctx.Score)
	loadValue(keyCurrentLevel, &ctx.CurrentLevel)
	loadValue(keyCoinsCollected, &ctx.Stats.CoinsCollected)
	loadValue(keyEnemiesDefeated, &ctx.Stats.EnemiesDefeated)
	loadValue(keyPowerUpsCollected, &ctx.Stats.PowerUpsCollected)
	loadValue(keyLevelsCompleted, &ctx.Stats.LevelsCompleted)
	loadValue(keyBossesDefeated, &ctx.Stats.BossesDefeated)

	var mode string
	if loadValue(keyGameMode, &mode) {
		ctx.Mode = cfg.ParseGameMode(mode)
	}

	for i := range ctx.Players {
		id := i + 1
		loadValue(playerKey(keyPoweredUp, id), &ctx.Players[i].PoweredUp)
		loadValue(playerKey(keyFirePower, id), &ctx.Players[i].FirePower)
		loadValue(playerKey(keyAlive, id), &ctx.Players[i].Alive)
	}

	if ctx.Score < 0 {
		ctx.Score = 0
	}
	if ctx.CurrentLevel < 1 {
		ctx.CurrentLevel = 1
	}

	return ctx, true
}

// loadValue decodes key into dst, reporting whether a value was found.
func loadValue(key string, dst any) bool {
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("Warning: Could not parse %s: %v", key, err)
		return false
	}
	return true
}

// PersistSession mirrors the live session into the store.
func PersistSession(e *ecs.ECS) {
	_ = SaveSessionContext(CaptureSession(e))
}

