package systems

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/messages"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateRevival returns the singleton revival state, creating it if needed
func GetOrCreateRevival(e *ecs.ECS) *components.RevivalData {
	if _, ok := components.Revival.First(e.World); !ok {
		ent := archetypes.Revival.Spawn(e)
		components.Revival.SetValue(ent, components.RevivalData{
			Tickets: make(map[int]*components.RevivalTicket),
		})
	}

	ent, _ := components.Revival.First(e.World)
	rv := components.Revival.Get(ent)
	if rv.Tickets == nil {
		rv.Tickets = make(map[int]*components.RevivalTicket)
	}
	return rv
}

// HandlePlayerDeath marks a player dead. Deaths are settled by UpdateRevival
// at the end of the frame, so two deaths in one frame are seen together.
// A death of an already dead player is ignored.
func HandlePlayerDeath(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil || !p.Alive {
		return
	}

	p.Alive = false
	clearInvincibility(e, player)
	Physics.SetVelocity(player, 0, 0)

	rv := GetOrCreateRevival(e)
	rv.PendingDeaths = append(rv.PendingDeaths, p.ID)

	messages.PlayerDied.Publish(e.World, messages.PlayerDiedEvent{PlayerID: p.ID})
	PersistSession(e)
}

// UpdateRevival settles this frame's deaths: game over in single player or
// when nobody is left alive, otherwise a countdown per newly dead player.
func UpdateRevival(e *ecs.ECS) {
	rv := GetOrCreateRevival(e)
	if len(rv.PendingDeaths) == 0 {
		return
	}
	pending := rv.PendingDeaths
	rv.PendingDeaths = nil

	session := GetOrCreateSession(e)
	if session.State == cfg.SessionGameOver || session.State == cfg.SessionRunComplete {
		return
	}

	if session.Mode != cfg.CoOp {
		GameOver(e)
		return
	}

	if !anyPlayerAlive(e) {
		rv.Collapsed = true
		GameOver(e)
		return
	}

	for _, id := range pending {
		if _, running := rv.Tickets[id]; running {
			continue
		}
		startRevival(e, rv, id)
	}
}

// ActiveRevival returns the running countdown for a dead player, if any.
func ActiveRevival(e *ecs.ECS, playerID int) (*components.RevivalTicket, bool) {
	t, ok := GetOrCreateRevival(e).Tickets[playerID]
	return t, ok
}

// CancelRevivals stops every countdown before its next tick.
func CancelRevivals(e *ecs.ECS) {
	rv := GetOrCreateRevival(e)
	for id, t := range rv.Tickets {
		t.Cancelled = true
		t.Timer.Cancel()
		delete(rv.Tickets, id)
	}
	rv.PendingDeaths = nil
}

func startRevival(e *ecs.ECS, rv *components.RevivalData, id int) {
	ticket := &components.RevivalTicket{
		DeadPlayerID:     id,
		RemainingSeconds: cfg.Revival.CountdownSeconds,
	}
	ticket.Timer = GetOrCreateTimers(e).Every(cfg.Revival.TickInterval, timer.ScopeRun, func() {
		tickRevival(e, ticket)
	})
	rv.Tickets[id] = ticket

	messages.RevivalTick.Publish(e.World, messages.RevivalTickEvent{
		PlayerID:         id,
		RemainingSeconds: ticket.RemainingSeconds,
	})
}

func tickRevival(e *ecs.ECS, t *components.RevivalTicket) {
	if t.Cancelled {
		return
	}
	t.RemainingSeconds--
	messages.RevivalTick.Publish(e.World, messages.RevivalTickEvent{
		PlayerID:         t.DeadPlayerID,
		RemainingSeconds: t.RemainingSeconds,
	})
	if t.RemainingSeconds > 0 {
		return
	}

	t.Timer.Cancel()
	delete(GetOrCreateRevival(e).Tickets, t.DeadPlayerID)

	dead, ok := findPlayer(e, t.DeadPlayerID)
	if !ok {
		return
	}
	partner, found := findPlayer(e, partnerID(t.DeadPlayerID))
	if found && !components.Player.Get(partner).Alive {
		return
	}
	if !found {
		partner = nil
	}
	revive(e, dead, partner)
}

// revive brings a dead player back at Super tier next to partner, or at
// the default spawn when there is no partner to stand next to.
func revive(e *ecs.ECS, player, partner *donburi.Entry) {
	p := playerData(player)
	if p == nil || p.Alive {
		return
	}

	p.Alive = true
	clearInvincibility(e, player)
	if p.Tier != cfg.TierSuper {
		setTier(e, player, cfg.TierSuper)
	} else {
		applyBodySize(player, cfg.TierSuper)
	}

	x, y := cfg.Revival.DefaultSpawnX, cfg.Revival.DefaultSpawnY
	if partner != nil && partner.Valid() {
		pb := Physics.Bounds(partner)
		body := cfg.Power.Bodies[cfg.TierSuper]
		x = pb.X + cfg.Revival.OffsetX
		y = pb.Bottom() - body.Height + cfg.Revival.OffsetY
	}
	Physics.SetPosition(player, x, y)
	Physics.SetVelocity(player, 0, 0)

	messages.PlayerRevived.Publish(e.World, messages.PlayerRevivedEvent{
		PlayerID: p.ID,
		X:        x,
		Y:        y,
	})
	PersistSession(e)
}

func partnerID(id int) int {
	if id == 1 {
		return 2
	}
	return 1
}

func anyPlayerAlive(e *ecs.ECS) bool {
	alive := false
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).Alive {
			alive = true
		}
	})
	return alive
}
