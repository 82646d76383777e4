package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks a fading hit flash. Value goes from 1 to 0; a renderer
// can use it as a tint strength. It never gates damage.
type FlashData struct {
	Tween *gween.Tween
	Value float32
}

var Flash = donburi.NewComponentType[FlashData]()
