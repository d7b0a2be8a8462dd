package systems

import (
	"log"
	"math"

	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/shake"
	"github.com/automoto/shakecam/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with smoothing and look-ahead, then drives
// the shake controller with the frame's delta time.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	ctrl := components.Shake.Get(cameraEntry).Controller

	followPlayer(e, camera, ctrl)

	// One tick of shake. The controller mutates camera.Position directly.
	ctrl.Update(1.0 / cfg.C.TPS)
}

// followPlayer moves the camera toward the player. The follow step edits the
// camera position while the controller may have a live offset on it, so it
// works on the unshaken base (position minus the controller's offset) and
// re-adds the offset afterward.
func followPlayer(e *ecs.ECS, camera *components.CameraData, ctrl *shake.Controller) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	// Only update look-ahead when the player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > cfg.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.DirectionX * cfg.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + camera.LookAheadX
	targetY := playerObject.Y

	// Constrain the target so the level always fills the screen
	screenWidth := float64(cfg.C.Width)
	screenHeight := float64(cfg.C.Height)
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		levelWidth := float64(level.Width)
		levelHeight := float64(level.Height)

		targetX = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, targetX))
		targetY = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, targetY))
	}

	offset := ctrl.Offset()
	base := camera.Position.Sub(offset)
	base.X += (targetX - base.X) * cfg.Camera.FollowSmoothing
	base.Y += (targetY - base.Y) * cfg.Camera.FollowSmoothing
	camera.Position = base.Add(offset)
}

// TriggerShake starts (or restarts) the camera shake with the given preset.
func TriggerShake(e *ecs.ECS, presetIndex int) {
	if presetIndex < 0 || presetIndex >= len(cfg.Shake.Presets) {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	preset := cfg.Shake.Presets[presetIndex]
	shakeData := components.Shake.Get(cameraEntry)
	ctrl := shakeData.Controller

	ctrl.SetMaxAmplitude(preset.MaxAmplitude)
	ctrl.SetFrequency(preset.Frequency)
	ctrl.SetAccelerationDuration(preset.AccelerationDuration)
	ctrl.SetFalloffDuration(preset.FalloffDuration)
	if preset.DirectionDeg != nil {
		ctrl.SetDirection(*preset.DirectionDeg)
	} else {
		ctrl.ClearDirection()
	}
	shakeData.Preset = presetIndex

	if ctrl.AliasesAt(cfg.C.TPS) {
		log.Printf("Warning: shake frequency %.1f aliases at %.0f tps", ctrl.Frequency(), cfg.C.TPS)
	}

	ctrl.Start()
}

// StopShake ends the camera shake, restoring the unshaken camera position.
func StopShake(e *ecs.ECS) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Shake.Get(cameraEntry).Controller.Stop()
	}
}
