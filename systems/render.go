package systems

import (
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the demo scene as flat rectangles offset by the camera
// position. The camera's world position maps to the screen center, so every
// shake offset shows up as a whole-scene displacement.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackdropColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Viewport in world coordinates, for culling
	viewX := camera.Position.X - float64(width)/2
	viewY := camera.Position.Y - float64(height)/2
	viewW := float64(width)
	viewH := float64(height)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)

		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			return
		}

		c := cfg.UI.WallColor
		switch {
		case entry.HasComponent(tags.Player):
			c = cfg.UI.PlayerColor
		case entry.HasComponent(tags.FloatingPlatform):
			c = cfg.UI.FloaterColor
		case entry.HasComponent(tags.Platform):
			c = cfg.UI.PlatformColor
		}

		vector.DrawFilledRect(screen,
			float32(obj.X+camX), float32(obj.Y+camY),
			float32(obj.W), float32(obj.H),
			c, false)
	})
}
