package factory

import (
	"github.com/automoto/shakecam/archetypes"
	"github.com/automoto/shakecam/components"
	"github.com/automoto/shakecam/leveldata"
	"github.com/automoto/shakecam/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSolidObject builds a collision object for a level rect.
func NewSolidObject(r leveldata.Rect) *resolv.Object {
	return resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
}

func CreatePlatform(ecs *ecs.ECS, object *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	return platform
}

func CreateFloatingPlatform(ecs *ecs.ECS, object *resolv.Object) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	// The floating platform moves using a *gween.Sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	obj := components.Object.Get(platform)
	tw.Add(
		gween.New(float32(obj.Y), float32(obj.Y-64), 2, ease.InOutSine),
		gween.New(float32(obj.Y-64), float32(obj.Y), 2, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
