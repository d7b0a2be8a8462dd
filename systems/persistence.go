package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/shakecam/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedTuning represents the shake tuning stored on disk.
type SavedTuning struct {
	MaxAmplitude         float64  `json:"maxAmplitude"`
	Frequency            float64  `json:"frequency"`
	AccelerationDuration float64  `json:"accelerationDuration"`
	FalloffDuration      float64  `json:"falloffDuration"`
	DirectionDeg         *float64 `json:"directionDeg,omitempty"`
	Preset               int      `json:"preset"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shakecam",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads the saved shake tuning from disk. Returns nil with no
// error when nothing has been saved yet.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var tuning SavedTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &tuning, nil
}

// SaveTuning saves shake tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// SaveCurrentTuning snapshots the controller's live parameters to disk.
func SaveCurrentTuning(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	shakeData := components.Shake.Get(cameraEntry)
	ctrl := shakeData.Controller

	saved := &SavedTuning{
		MaxAmplitude:         ctrl.MaxAmplitude(),
		Frequency:            ctrl.Frequency(),
		AccelerationDuration: ctrl.AccelerationDuration(),
		FalloffDuration:      ctrl.FalloffDuration(),
		Preset:               shakeData.Preset,
	}
	if deg, ok := ctrl.Direction(); ok {
		saved.DirectionDeg = &deg
	}
	_ = SaveTuning(saved)
}

// ApplySavedTuning pushes loaded tuning onto the controller.
func ApplySavedTuning(e *ecs.ECS, saved *SavedTuning) {
	if saved == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	shakeData := components.Shake.Get(cameraEntry)
	ctrl := shakeData.Controller

	ctrl.SetMaxAmplitude(saved.MaxAmplitude)
	ctrl.SetFrequency(saved.Frequency)
	ctrl.SetAccelerationDuration(saved.AccelerationDuration)
	ctrl.SetFalloffDuration(saved.FalloffDuration)
	if saved.DirectionDeg != nil {
		ctrl.SetDirection(*saved.DirectionDeg)
	} else {
		ctrl.ClearDirection()
	}
	shakeData.Preset = saved.Preset
}
