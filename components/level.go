package components

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Config cfg.LevelConfig
}

var Level = donburi.NewComponentType[LevelData]()
