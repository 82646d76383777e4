package components

import "github.com/yohamta/donburi"

// ExitData is the level goal. Boss levels start with the exit locked.
type ExitData struct {
	Locked  bool
	Reached bool
}

var Exit = donburi.NewComponentType[ExitData]()
