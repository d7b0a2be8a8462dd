package systems

import (
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each floating platform along its tween
// sequence. Sequences restart when they complete, so the platforms cycle
// forever.
func UpdateFloatingPlatforms(e *ecs.ECS) {
	dt := float32(1.0 / cfg.C.TPS)

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		y, _, seqDone := tw.Update(dt)
		obj.Y = float64(y)
		if seqDone {
			tw.Reset()
		}
	})
}
