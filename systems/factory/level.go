package factory

import (
	"github.com/automoto/shakecam/archetypes"
	"github.com/automoto/shakecam/assets"
	"github.com/automoto/shakecam/components"
	"github.com/automoto/shakecam/leveldata"
	"github.com/automoto/shakecam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the embedded demo level and spawns its entity.
func CreateLevel(ecs *ecs.ECS) (*donburi.Entry, *leveldata.LevelData, error) {
	data, err := assets.LoadDemoLevel()
	if err != nil {
		return nil, nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Width:  data.Width,
		Height: data.Height,
	})
	return level, data, nil
}

// CreateWall spawns a static solid collision rect.
func CreateWall(ecs *ecs.ECS, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = wall
	space.Add(obj)
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	return wall
}
