package components

import (
	"github.com/yohamta/donburi"
)

// LevelData holds the demo level's pixel dimensions, which bound the camera.
type LevelData struct {
	Width  int
	Height int
}

var Level = donburi.NewComponentType[LevelData]()
