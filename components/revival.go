package components

import (
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// RevivalTicket is a running countdown for one dead co-op player.
type RevivalTicket struct {
	DeadPlayerID     int
	RemainingSeconds int
	Cancelled        bool
	Timer            *timer.Timer
}

// RevivalData is the singleton revival state.
type RevivalData struct {
	Tickets       map[int]*RevivalTicket // Keyed by dead player id, at most one each
	PendingDeaths []int                  // Deaths recorded this frame, settled by UpdateRevival
	Collapsed     bool                   // Both players died; no further revivals
}

var Revival = donburi.NewComponentType[RevivalData]()
