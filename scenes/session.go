package scenes

import (
	"sync"

	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionConfig holds the settings a session is started with
type SessionConfig struct {
	Mode        cfg.GameMode
	PlayerNames [2]string
	Continue    bool // Resume the stored run
}

// SessionScene owns one run's ECS world. The host calls Update once per frame.
type SessionScene struct {
	ecs    *ecs.ECS
	config SessionConfig
	once   sync.Once
}

// NewSessionScene creates a single player scene with default names
func NewSessionScene() *SessionScene {
	return &SessionScene{}
}

// NewSessionSceneWithConfig creates a scene for the given mode and players
func NewSessionSceneWithConfig(config SessionConfig) *SessionScene {
	return &SessionScene{config: config}
}

// Update advances the session by one frame.
func (s *SessionScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

// ECS returns the scene's world, building it on first use so presentation
// code can subscribe to notifications before the first frame.
func (s *SessionScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

// State returns where the run currently is.
func (s *SessionScene) State() cfg.SessionStateID {
	return systems.GetOrCreateSession(s.ECS()).State
}

// Restart begins a fresh run with the same mode and players.
func (s *SessionScene) Restart() {
	systems.ResetRun(s.ECS())
}

func (s *SessionScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// The clock runs through level transitions and game over, only pause stops it
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTimers))

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))

	// Deaths are settled after every contact of the frame
	ecs.AddSystem(systems.UpdateRevival)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateNotifications)

	s.ecs = ecs

	// Failure leaves the run unpersisted; it still plays
	_ = systems.InitPersistence()

	systems.StartSession(s.ecs, systems.SessionOptions{
		Mode:        s.config.Mode,
		PlayerNames: s.config.PlayerNames,
		Continue:    s.config.Continue,
	})
}
