package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all demo entities and renderers live on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    float64 // logical ticks per second, used as the shake clock
}

// PlayerConfig contains movement configuration for the demo player
type PlayerConfig struct {
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	Gravity      float64
	Friction     float64

	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains global physics configuration
type PhysicsConfig struct {
	MaxFallSpeed float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// ShakePreset is a named shake tuning triggered from the demo.
type ShakePreset struct {
	Name                 string
	MaxAmplitude         float64 // world-space pixels
	Frequency            float64 // oscillation peaks per second
	AccelerationDuration float64 // seconds to reach max amplitude
	FalloffDuration      float64 // seconds to decay to zero; negative disables
	DirectionDeg         *float64
}

// ShakeConfig contains the demo's shake presets and tuner step sizes.
type ShakeConfig struct {
	Presets []ShakePreset

	// Tuner button step sizes
	AmplitudeStep float64
	FrequencyStep float64
	DurationStep  float64
}

// UIConfig contains HUD and overlay configuration
type UIConfig struct {
	AmplitudeBarWidth  float64
	AmplitudeBarHeight float64
	HUDMargin          float64

	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	BarNegColor   color.RGBA
	HUDTextColor  color.RGBA
	WallColor     color.RGBA
	PlatformColor color.RGBA
	FloaterColor  color.RGBA
	PlayerColor   color.RGBA
	BackdropColor color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Shake ShakeConfig
var UI UIConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		JumpSpeed:       9.0,
		Acceleration:    0.75,
		MaxSpeed:        4.0,
		Gravity:         0.5,
		Friction:        0.5,
		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 10.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}

	sideways := 90.0
	Shake = ShakeConfig{
		Presets: []ShakePreset{
			{
				// Gentle rumble: slow build, long tail.
				Name:                 "Rumble",
				MaxAmplitude:         3.0,
				Frequency:            11.0,
				AccelerationDuration: 0.6,
				FalloffDuration:      1.2,
			},
			{
				// Impact: instant peak, quick decay, fixed sideways kick.
				Name:                 "Impact",
				MaxAmplitude:         6.0,
				Frequency:            23.0,
				AccelerationDuration: 0.0,
				FalloffDuration:      0.35,
				DirectionDeg:         &sideways,
			},
			{
				// Quake: big slow ramp. Falloff is disabled, so the shake
				// cuts out at the top of the 1.5s rise.
				Name:                 "Quake",
				MaxAmplitude:         9.0,
				Frequency:            7.0,
				AccelerationDuration: 1.5,
				FalloffDuration:      -1,
			},
		},
		AmplitudeStep: 0.5,
		FrequencyStep: 1.0,
		DurationStep:  0.1,
	}

	UI = UIConfig{
		AmplitudeBarWidth:  130,
		AmplitudeBarHeight: 13,
		HUDMargin:          10,

		BarBgColor:    color.RGBA{40, 40, 40, 255},
		BarFgColor:    color.RGBA{40, 220, 40, 255},
		BarNegColor:   color.RGBA{220, 120, 40, 255},
		HUDTextColor:  color.RGBA{255, 255, 255, 255},
		WallColor:     color.RGBA{60, 60, 70, 255},
		PlatformColor: color.RGBA{100, 100, 100, 255},
		FloaterColor:  color.RGBA{100, 180, 255, 255},
		PlayerColor:   color.RGBA{0, 100, 255, 255},
		BackdropColor: color.RGBA{15, 25, 50, 255},
	}
}
