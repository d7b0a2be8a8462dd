package components

import (
	"github.com/automoto/shakecam/shake"
	"github.com/yohamta/donburi"
)

// ShakeData attaches the shake controller to the camera entity.
type ShakeData struct {
	Controller *shake.Controller
	Preset     int // index into config.Shake.Presets of the last trigger
}

var Shake = donburi.NewComponentType[ShakeData]()
