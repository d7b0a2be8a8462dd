package systems

import (
	"image/color"

	"github.com/automoto/shakecam/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugEnabled bool

// DrawDebug outlines every collision object in the space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags("solid") {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags("Player") {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		// Draw outline
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.DrawFilledRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.DrawFilledRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
