package components

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Kind cfg.PickupKind
}

var Pickup = donburi.NewComponentType[PickupData]()
