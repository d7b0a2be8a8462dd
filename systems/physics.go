package systems

import (
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction, speed clamping and gravity to every entity
// with a Physics component.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
	})
}
