package systems

import (
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShakeControl maps the preset keys onto the shake controller.
// Retriggering a preset mid-shake restarts the envelope from zero.
func UpdateShakeControl(e *ecs.ECS) {
	input := getOrCreateInput(e)

	presetActions := []cfg.ActionID{
		cfg.ActionShakeRumble,
		cfg.ActionShakeImpact,
		cfg.ActionShakeQuake,
	}
	for i, action := range presetActions {
		if GetAction(input, action).JustPressed {
			TriggerShake(e, i)
		}
	}

	if GetAction(input, cfg.ActionStopShake).JustPressed {
		StopShake(e)
	}

	if GetAction(input, cfg.ActionToggleTuner).JustPressed {
		tuner := GetOrCreateTuner(e)
		tuner.Visible = !tuner.Visible
		if !tuner.Visible && tuner.Dirty {
			SaveCurrentTuning(e)
			tuner.Dirty = false
		}
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debugEnabled = !debugEnabled
	}
}

// GetOrCreateTuner returns the singleton tuner state, creating it if needed.
func GetOrCreateTuner(e *ecs.ECS) *components.TunerData {
	entry, ok := components.Tuner.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Tuner))
	}
	return components.Tuner.Get(entry)
}
