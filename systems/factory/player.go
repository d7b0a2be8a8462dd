package factory

import (
	"github.com/automoto/shakecam/archetypes"
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.Set(player, &components.PlayerData{DirectionX: 1})
	components.Physics.Set(player, &components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	return player
}
