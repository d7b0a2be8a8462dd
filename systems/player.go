package systems

import (
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies movement input to the player's physics state.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)

		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			physics.SpeedX -= cfg.Player.Acceleration
			player.DirectionX = -1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			physics.SpeedX += cfg.Player.Acceleration
			player.DirectionX = 1
		}
		if GetAction(input, cfg.ActionJump).JustPressed && physics.OnGround != nil {
			physics.SpeedY = -cfg.Player.JumpSpeed
		}
	})
}
