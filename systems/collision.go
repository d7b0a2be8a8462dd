package systems

import (
	"github.com/automoto/shakecam/components"
	"github.com/automoto/shakecam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by its speed, stopping at solid objects.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
	})
}

func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		physics.SpeedX = 0
		return
	}

	object.X += dx
}

func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++ // probe one pixel below to stay grounded on platforms
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.Y += dy
		return
	}

	if dy < 0 {
		// Bumped a ceiling.
		physics.SpeedY = 0
		return
	}

	// Land on the highest solid under the player.
	ground := solids[0]
	for _, s := range solids[1:] {
		if s.Y < ground.Y {
			ground = s
		}
	}
	object.Y = ground.Y - object.H
	physics.SpeedY = 0
	physics.OnGround = ground
}
