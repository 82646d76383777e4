package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Exit       = donburi.NewTag().SetName("Exit")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Projectile = donburi.NewTag().SetName("Projectile")
	Hazard     = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for overlap queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvBoss       = "Boss"
	ResolvExit       = "exit"
	ResolvPickup     = "pickup"
	ResolvProjectile = "Projectile"
	ResolvHazard     = "hazard"
)
