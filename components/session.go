package components

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// Stats are cumulative over a run and only cleared by a full reset.
type Stats struct {
	CoinsCollected    int
	EnemiesDefeated   int
	PowerUpsCollected int
	LevelsCompleted   int
	BossesDefeated    int
}

// SessionData is the singleton run state.
type SessionData struct {
	Score        int
	Stats        Stats
	CurrentLevel int
	TotalLevels  int
	Mode         cfg.GameMode
	State        cfg.SessionStateID
	InputFrozen  bool
	Paused       bool // Stops the session clock and contacts
	PlayerNames  [2]string

	TransitionTimer *timer.Timer // Pending level advance after the exit is reached
}

var Session = donburi.NewComponentType[SessionData]()
