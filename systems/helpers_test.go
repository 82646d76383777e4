package systems

import (
	"testing"
	"time"

	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newSession starts a session on level 1 backed by an in-memory store.
func newSession(t *testing.T, mode cfg.GameMode) (*ecs.ECS, *MemoryStore) {
	t.Helper()

	st := NewMemoryStore()
	SetStore(st)
	t.Cleanup(func() { SetStore(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	StartSession(e, SessionOptions{Mode: mode})
	return e, st
}

func mustPlayer(t *testing.T, e *ecs.ECS, id int) *donburi.Entry {
	t.Helper()
	p, ok := findPlayer(e, id)
	require.True(t, ok, "player %d", id)
	return p
}

func sessionOf(e *ecs.ECS) *components.SessionData {
	return GetOrCreateSession(e)
}

func advance(e *ecs.ECS, d time.Duration) {
	GetOrCreateTimers(e).Advance(d)
}

// frame runs the session systems for one tick, the way the scene orders them.
func frame(e *ecs.ECS) {
	WithPauseCheck(UpdateTimers)(e)
	WithGameplayChecks(UpdateContacts)(e)
	UpdateRevival(e)
	UpdateEffects(e)
	UpdateObjects(e)
	UpdateNotifications(e)
}

// standAbove places player so its feet sit gap above the top of other.
func standAbove(player, other *donburi.Entry, gap float64) {
	ob := Physics.Bounds(other)
	pb := Physics.Bounds(player)
	Physics.SetPosition(player, ob.X, ob.Y-pb.H-gap)
}

// standBeside places player level with other, overlapping its left edge.
func standBeside(player, other *donburi.Entry) {
	ob := Physics.Bounds(other)
	pb := Physics.Bounds(player)
	Physics.SetPosition(player, ob.X-pb.W+2, ob.Bottom()-pb.H)
}

func tierOf(player *donburi.Entry) cfg.PowerTier {
	return components.Player.Get(player).Tier
}

func aliveOf(player *donburi.Entry) bool {
	return components.Player.Get(player).Alive
}

func countOf[T any](e *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
