package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platforms along a gween sequence.
var Tween = donburi.NewComponentType[gween.Sequence]()
