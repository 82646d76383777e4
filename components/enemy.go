package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	TypeName string
	Reward   int // Score granted when defeated
}

var Enemy = donburi.NewComponentType[EnemyData]()
