package components

import (
	"github.com/automoto/shakecam/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData holds the camera's world position. The shake controller mutates
// Position in place; everything else in the demo only reads it. Z is unused
// by the renderer but carried so shake offsets stay reversible in all three
// components.
type CameraData struct {
	Position   gamemath.Vec3
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
