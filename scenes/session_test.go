package scenes

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/messages"
	"github.com/automoto/stompers/systems"
	"github.com/quasilyte/gdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func useMemoryStore(t *testing.T) *systems.MemoryStore {
	t.Helper()
	st := systems.NewMemoryStore()
	systems.SetStore(st)
	t.Cleanup(func() { systems.SetStore(nil) })
	return st
}

func TestSceneBuildsWorldLazily(t *testing.T) {
	useMemoryStore(t)
	s := NewSessionSceneWithConfig(SessionConfig{
		Mode:        cfg.CoOp,
		PlayerNames: [2]string{"Ada", "Bo"},
	})

	w := s.ECS().World
	require.NotNil(t, w)
	assert.Same(t, s.ECS(), s.ECS())
	assert.Equal(t, cfg.SessionPlaying, s.State())

	n := 0
	components.Player.Each(w, func(e *donburi.Entry) {
		n++
	})
	assert.Equal(t, 2, n)
}

func TestSceneFramesAdvanceClock(t *testing.T) {
	useMemoryStore(t)
	s := NewSessionScene()

	for i := 0; i < cfg.C.TPS; i++ {
		s.Update()
	}

	assert.InDelta(t, 1.0, systems.Now(s.ECS()).Seconds(), 0.02)
}

func TestSceneDeliversNotifications(t *testing.T) {
	useMemoryStore(t)
	s := NewSessionScene()

	var over []messages.GameOverEvent
	messages.GameOver.Subscribe(s.ECS().World, func(w donburi.World, ev messages.GameOverEvent) {
		over = append(over, ev)
	})

	p, ok := components.Player.First(s.ECS().World)
	require.True(t, ok)
	systems.HandlePlayerDeath(s.ECS(), p)
	s.Update()

	assert.Equal(t, cfg.SessionGameOver, s.State())
	require.Len(t, over, 1)
	assert.Equal(t, 1, over[0].Level)

	s.Restart()
	s.Update()
	assert.Equal(t, cfg.SessionPlaying, s.State())
	assert.True(t, components.Player.Get(p).Alive)
}

func TestSceneContinuesStoredRun(t *testing.T) {
	useMemoryStore(t)
	first := NewSessionSceneWithConfig(SessionConfig{Mode: cfg.CoOp})
	systems.AddScore(first.ECS(), 250)

	resumed := NewSessionSceneWithConfig(SessionConfig{Continue: true})
	session := systems.GetOrCreateSession(resumed.ECS())

	assert.Equal(t, 250, session.Score)
	assert.Equal(t, cfg.CoOp, session.Mode)
}

func TestSceneOpensPlatformStore(t *testing.T) {
	appName := fmt.Sprintf("stompers_scene_test_%d", time.Now().UnixNano())
	prev := cfg.C.AppName
	cfg.C.AppName = appName
	systems.SetStore(nil)
	t.Cleanup(func() {
		cfg.C.AppName = prev
		systems.SetStore(nil)
	})

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(filepath.Dir(m.ItemPath("score")))
	})

	s := NewSessionScene()
	systems.CollectCoin(s.ECS())

	data, err := m.LoadItem("score")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(cfg.Score.Coin), string(data))
}

func TestSceneKeepsInstalledStore(t *testing.T) {
	st := useMemoryStore(t)
	s := NewSessionScene()
	systems.CollectCoin(s.ECS())

	data, err := st.LoadItem("score")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(cfg.Score.Coin), string(data))
}
