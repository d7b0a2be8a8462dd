package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// directionCycle is the list of fixed directions the tuner steps through.
// A nil entry means random per-frame direction.
var directionCycle = []*float64{nil, ptr(0), ptr(45), ptr(90), ptr(135)}

func ptr(v float64) *float64 { return &v }

// TunerUI holds the ebitenui overlay for live shake tuning
type TunerUI struct {
	UI    *ebitenui.UI
	Shake *components.ShakeData
	Tuner *components.TunerData

	// Widget references for updates
	amplitudeLabel *widget.Label
	frequencyLabel *widget.Label
	riseLabel      *widget.Label
	falloffLabel   *widget.Label
	totalLabel     *widget.Label
	directionLabel *widget.Label

	directionIndex int

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewTunerUI creates the tuning overlay bound to the camera's shake data
func NewTunerUI(shake *components.ShakeData, tuner *components.TunerData) *TunerUI {
	tui := &TunerUI{
		Shake: shake,
		Tuner: tuner,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TunerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit the 640x360 screen
	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TunerUI) buildUI() {
	// Root container anchored to the right side so the scene stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SHAKE TUNER", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	ctrl := tui.Shake.Controller
	step := cfg.Shake

	tui.amplitudeLabel = tui.addParamRow(panel, "Amplitude",
		func() { ctrl.SetMaxAmplitude(ctrl.MaxAmplitude() - step.AmplitudeStep) },
		func() { ctrl.SetMaxAmplitude(ctrl.MaxAmplitude() + step.AmplitudeStep) },
	)
	tui.frequencyLabel = tui.addParamRow(panel, "Frequency",
		func() { ctrl.SetFrequency(ctrl.Frequency() - step.FrequencyStep) },
		func() { ctrl.SetFrequency(ctrl.Frequency() + step.FrequencyStep) },
	)
	tui.riseLabel = tui.addParamRow(panel, "Rise",
		func() { ctrl.SetAccelerationDuration(ctrl.AccelerationDuration() - step.DurationStep) },
		func() { ctrl.SetAccelerationDuration(ctrl.AccelerationDuration() + step.DurationStep) },
	)
	tui.falloffLabel = tui.addParamRow(panel, "Falloff",
		func() { ctrl.SetFalloffDuration(ctrl.FalloffDuration() - step.DurationStep) },
		func() { ctrl.SetFalloffDuration(ctrl.FalloffDuration() + step.DurationStep) },
	)
	tui.totalLabel = tui.addParamRow(panel, "Total",
		func() { ctrl.SetTotalDuration(ctrl.TotalDuration() - step.DurationStep) },
		func() { ctrl.SetTotalDuration(ctrl.TotalDuration() + step.DurationStep) },
	)

	// Direction row cycles fixed angles instead of stepping
	dirRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	dirTitle := widget.NewLabel(
		widget.LabelOpts.Text("Direction:", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	dirRow.AddChild(dirTitle)

	tui.directionLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	dirRow.AddChild(tui.directionLabel)

	dirButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Cycle", &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tui.directionIndex = (tui.directionIndex + 1) % len(directionCycle)
			if deg := directionCycle[tui.directionIndex]; deg != nil {
				ctrl.SetDirection(*deg)
			} else {
				ctrl.ClearDirection()
			}
			tui.Tuner.Dirty = true
			tui.UpdateUI()
		}),
	)
	dirRow.AddChild(dirButton)
	panel.AddChild(dirRow)

	// Restart re-runs the envelope with the current tuning
	restartButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 24)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Restart Shake", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ctrl.Start()
		}),
	)
	panel.AddChild(restartButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Tab closes and saves", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	)
	panel.AddChild(hintLabel)

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// addParamRow builds a "name  - value +" row and returns its value label.
func (tui *TunerUI) addParamRow(panel *widget.Container, name string, dec, inc func()) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name+":", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	row.AddChild(tui.stepButton("-", func() {
		dec()
		tui.Tuner.Dirty = true
		tui.UpdateUI()
	}))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	row.AddChild(tui.stepButton("+", func() {
		inc()
		tui.Tuner.Dirty = true
		tui.UpdateUI()
	}))

	panel.AddChild(row)
	return valueLabel
}

func (tui *TunerUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(20, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TunerUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the value labels from the controller
func (tui *TunerUI) UpdateUI() {
	ctrl := tui.Shake.Controller

	if tui.amplitudeLabel != nil {
		tui.amplitudeLabel.Label = fmt.Sprintf("%.1f", ctrl.MaxAmplitude())
	}
	if tui.frequencyLabel != nil {
		tui.frequencyLabel.Label = fmt.Sprintf("%.1f", ctrl.Frequency())
	}
	if tui.riseLabel != nil {
		tui.riseLabel.Label = fmt.Sprintf("%.2fs", ctrl.AccelerationDuration())
	}
	if tui.falloffLabel != nil {
		if ctrl.FalloffDuration() < 0 {
			tui.falloffLabel.Label = "off"
		} else {
			tui.falloffLabel.Label = fmt.Sprintf("%.2fs", ctrl.FalloffDuration())
		}
	}
	if tui.totalLabel != nil {
		tui.totalLabel.Label = fmt.Sprintf("%.2fs", ctrl.TotalDuration())
	}
	if tui.directionLabel != nil {
		if deg, ok := ctrl.Direction(); ok {
			tui.directionLabel.Label = fmt.Sprintf("%.0f deg", deg)
		} else {
			tui.directionLabel.Label = "random"
		}
	}
}

// Update calls the UI's Update method
func (tui *TunerUI) Update() {
	tui.UI.Update()
	// Update labels on first frame after widgets are validated
	if !tui.initialized {
		tui.initialized = true
		tui.UpdateUI()
	}
}
