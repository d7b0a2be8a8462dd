package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names recognized in the TMX file.
const (
	groupSolids    = "Solids"
	groupPlatforms = "Platforms"
	groupFloaters  = "FloatingPlatforms"
	groupSpawn     = "PlayerSpawn"
)

// Load parses a TMX file into LevelData. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, o := range og.Objects {
				data.Solids = append(data.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupPlatforms:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupFloaters:
			for _, o := range og.Objects {
				data.Floaters = append(data.Floaters, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Spawn = SpawnPoint{X: o.X, Y: o.Y}
				data.HasSpawn = true
			}
		}
	}

	if len(data.Solids) == 0 {
		return nil, fmt.Errorf("level %s has no %s objects", tmxPath, groupSolids)
	}

	return data, nil
}
