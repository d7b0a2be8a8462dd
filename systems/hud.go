package systems

import (
	"fmt"

	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the live shake readout: a signed amplitude bar and the
// active preset's parameters.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	shakeData := components.Shake.Get(cameraEntry)
	ctrl := shakeData.Controller

	margin := cfg.UI.HUDMargin
	barW := cfg.UI.AmplitudeBarWidth
	barH := cfg.UI.AmplitudeBarHeight

	// Background
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(barW), float32(barH),
		cfg.UI.BarBgColor, false)

	// Signed amplitude, drawn from the bar's center: right for positive,
	// left for negative.
	if max := ctrl.MaxAmplitude(); max != 0 {
		ratio := ctrl.CurrentAmplitude() / max
		half := barW / 2
		fill := half * ratio
		fg := cfg.UI.BarFgColor
		x := margin + half
		if fill < 0 {
			fg = cfg.UI.BarNegColor
			x += fill
			fill = -fill
		}
		vector.DrawFilledRect(screen,
			float32(x), float32(margin),
			float32(fill), float32(barH),
			fg, false)
	}

	title := fonts.Title.Get()
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()
	textX := int(margin)
	textY := int(margin + barH + 22)

	preset := cfg.Shake.Presets[shakeData.Preset]
	status := "idle"
	if ctrl.Shaking() {
		status = fmt.Sprintf("shaking %.2fs / %.2fs", ctrl.Elapsed(), ctrl.TotalDuration())
	}
	text.Draw(screen, preset.Name, title, textX, textY, cfg.UI.HUDTextColor)
	text.Draw(screen, status, face, textX, textY+16, cfg.UI.HUDTextColor)

	dir := "random"
	if deg, ok := ctrl.Direction(); ok {
		dir = fmt.Sprintf("%.0f deg", deg)
	}
	falloff := fmt.Sprintf("%.2fs", ctrl.FalloffDuration())
	if ctrl.FalloffDuration() < 0 {
		falloff = "off"
	}
	text.Draw(screen,
		fmt.Sprintf("amp %.1f  freq %.1f  rise %.2fs  falloff %s  dir %s",
			ctrl.MaxAmplitude(), ctrl.Frequency(), ctrl.AccelerationDuration(), falloff, dir),
		small, textX, textY+30, cfg.UI.HUDTextColor)

	text.Draw(screen,
		"1/2/3 shake  0 stop  TAB tuner  arrows move  X jump",
		small, textX, cfg.C.Height-8, cfg.UI.HUDTextColor)
}
