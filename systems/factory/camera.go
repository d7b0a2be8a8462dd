package factory

import (
	"github.com/automoto/shakecam/archetypes"
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/shake"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera entity with a shake controller bound to its
// position and configured with the first preset.
func CreateCamera(ecs *ecs.ECS, startX, startY float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	// Bind the controller to the component storage, not a local copy.
	camData := components.Camera.Get(camera)
	camData.Position.X = startX
	camData.Position.Y = startY

	preset := cfg.Shake.Presets[0]
	ctrl := shake.NewController(&camData.Position, shake.Options{
		MaxAmplitude:         preset.MaxAmplitude,
		Frequency:            preset.Frequency,
		AccelerationDuration: preset.AccelerationDuration,
		FalloffDuration:      preset.FalloffDuration,
		DirectionDeg:         preset.DirectionDeg,
	})
	components.Shake.Set(camera, &components.ShakeData{Controller: ctrl})

	return camera
}
