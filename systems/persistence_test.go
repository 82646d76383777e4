package systems

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/automoto/stompers/config"
	"github.com/quasilyte/gdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) SaveItem(string, []byte) error  { return errors.New("disk on fire") }

func TestSessionRoundTripAcrossWorlds(t *testing.T) {
	e, st := newSession(t, cfg.CoOp)
	p1 := mustPlayer(t, e, 1)
	p2 := mustPlayer(t, e, 2)

	CollectFireFlower(e, p1)
	CollectMushroom(e, p2)
	CollectCoin(e)
	CollectCoin(e)
	AddScore(e, 75)
	sessionOf(e).Stats.EnemiesDefeated = 4
	PersistSession(e)
	want := CaptureSession(e)

	SetStore(st)
	resumed := ecs.NewECS(donburi.NewWorld())
	StartSession(resumed, SessionOptions{Mode: cfg.SinglePlayer, Continue: true})

	got := sessionOf(resumed)
	assert.Equal(t, cfg.CoOp, got.Mode, "stored mode wins when continuing")
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Stats, got.Stats)
	assert.Equal(t, cfg.TierFire, tierOf(mustPlayer(t, resumed, 1)))
	assert.Equal(t, cfg.TierSuper, tierOf(mustPlayer(t, resumed, 2)))
}

func TestAdvanceLevelRoundTripsThroughStore(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	p1 := mustPlayer(t, e, 1)
	CollectFireFlower(e, p1)
	CollectCoin(e)
	ReachExit(e)
	want := CaptureSession(e)

	advance(e, cfg.Score.LevelTransitionDelay)

	assert.Equal(t, 2, sessionOf(e).CurrentLevel)
	assert.Equal(t, want.Score, sessionOf(e).Score)
	assert.Equal(t, want.Stats, sessionOf(e).Stats)
	assert.Equal(t, cfg.TierFire, tierOf(p1))

	ctx, ok := LoadSessionContext()
	require.True(t, ok)
	assert.Equal(t, 2, ctx.CurrentLevel)
	assert.Equal(t, want.Players, ctx.Players)
}

func TestAdvanceLevelKeepsLiveStateWhenStoreFails(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	p1 := mustPlayer(t, e, 1)
	CollectFireFlower(e, p1)
	CollectCoin(e)

	SetStore(failingStore{})
	ReachExit(e)
	score, stats := sessionOf(e).Score, sessionOf(e).Stats

	advance(e, cfg.Score.LevelTransitionDelay)

	assert.Equal(t, 2, sessionOf(e).CurrentLevel)
	assert.Equal(t, score, sessionOf(e).Score)
	assert.Equal(t, stats, sessionOf(e).Stats)
	assert.Equal(t, cfg.TierFire, tierOf(p1))
}

func TestStoreKeys(t *testing.T) {
	e, st := newSession(t, cfg.CoOp)
	CollectMushroom(e, mustPlayer(t, e, 2))
	CollectCoin(e)

	cases := map[string]string{
		"score":             "10",
		"currentLevel":      "1",
		"gameMode":          `"CoOp"`,
		"coinsCollected":    "1",
		"enemiesDefeated":   "0",
		"powerUpsCollected": "0",
		"levelsCompleted":   "0",
		"bossesDefeated":    "0",
		"isPoweredUp":       "false",
		"hasFirePower":      "false",
		"isAlive":           "true",
		"isPoweredUp2":      "true",
		"hasFirePower2":     "false",
		"isAlive2":          "true",
	}
	for key, want := range cases {
		data, err := st.LoadItem(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, string(data), key)
	}
}

func TestDeathIsPersisted(t *testing.T) {
	e, st := newSession(t, cfg.CoOp)
	HandlePlayerDeath(e, mustPlayer(t, e, 2))

	data, _ := st.LoadItem("isAlive2")
	assert.Equal(t, "false", string(data))
}

func TestMissingKeysUseDefaults(t *testing.T) {
	SetStore(NewMemoryStore())
	t.Cleanup(func() { SetStore(nil) })

	ctx, ok := LoadSessionContext()
	require.True(t, ok)
	assert.Equal(t, DefaultSessionContext(), ctx)
	assert.Equal(t, cfg.SinglePlayer, ctx.Mode)
	assert.Equal(t, 1, ctx.CurrentLevel)
	assert.Equal(t, cfg.TierNormal, ctx.Players[0].Tier())
}

func TestCorruptValuesUseDefaults(t *testing.T) {
	st := NewMemoryStore()
	SetStore(st)
	t.Cleanup(func() { SetStore(nil) })

	require.NoError(t, st.SaveItem("score", []byte("not json")))
	require.NoError(t, st.SaveItem("gameMode", []byte(`"Versus"`)))
	require.NoError(t, st.SaveItem("currentLevel", []byte("-3")))

	ctx, _ := LoadSessionContext()
	assert.Equal(t, 0, ctx.Score)
	assert.Equal(t, cfg.SinglePlayer, ctx.Mode)
	assert.Equal(t, 1, ctx.CurrentLevel)
}

func TestStoreErrorsAreSwallowed(t *testing.T) {
	SetStore(failingStore{})
	t.Cleanup(func() { SetStore(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() {
		StartSession(e, SessionOptions{Mode: cfg.CoOp, Continue: true})
		CollectCoin(e)
	})
	assert.Equal(t, cfg.SinglePlayer, sessionOf(e).Mode, "unreadable mode falls back to single player")
	assert.Equal(t, cfg.Score.Coin, sessionOf(e).Score)
	assert.Error(t, SaveSessionContext(CaptureSession(e)))
}

func TestNoStoreIsANoOp(t *testing.T) {
	SetStore(nil)

	_, ok := LoadSessionContext()
	assert.False(t, ok)
	assert.NoError(t, SaveSessionContext(DefaultSessionContext()))
}

func TestSnapshotTier(t *testing.T) {
	cases := []struct {
		snap PlayerSnapshot
		want cfg.PowerTier
	}{
		{PlayerSnapshot{}, cfg.TierNormal},
		{PlayerSnapshot{PoweredUp: true}, cfg.TierSuper},
		{PlayerSnapshot{PoweredUp: true, FirePower: true}, cfg.TierFire},
		{PlayerSnapshot{FirePower: true}, cfg.TierFire},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.snap.Tier())
	}
}

func TestGdataStore(t *testing.T) {
	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("stompers_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(filepath.Dir(m.ItemPath(keyScore)))
	})
	SetStore(m)
	t.Cleanup(func() { SetStore(nil) })

	want := DefaultSessionContext()
	want.Score = 1234
	want.CurrentLevel = 3
	want.Mode = cfg.CoOp
	want.Stats.BossesDefeated = 1
	want.Players[1] = PlayerSnapshot{PoweredUp: true, FirePower: true, Alive: false}

	require.NoError(t, SaveSessionContext(want))
	got, ok := LoadSessionContext()
	require.True(t, ok)
	assert.Equal(t, want, got)
}
