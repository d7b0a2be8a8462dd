// Package leveldata provides TMX parsing for the demo level. It has no
// dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// LevelData holds everything parsed from a demo level file.
type LevelData struct {
	Width  int // pixels
	Height int // pixels

	Solids    []Rect
	Platforms []Rect
	Floaters  []Rect

	Spawn    SpawnPoint
	HasSpawn bool
}

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is the player's starting position.
type SpawnPoint struct {
	X, Y float64
}
