package assets

import (
	"embed"

	"github.com/automoto/shakecam/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// DemoLevelPath is the embedded path of the demo map.
const DemoLevelPath = "levels/demo.tmx"

// LoadDemoLevel parses the embedded demo level.
func LoadDemoLevel() (*leveldata.LevelData, error) {
	return leveldata.Load(assetFS, DemoLevelPath)
}
