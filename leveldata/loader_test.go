package leveldata

import (
	"os"
	"testing"
)

func TestLoadDemoLevel(t *testing.T) {
	data, err := Load(os.DirFS("../assets"), "levels/demo.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.Width != 960 || data.Height != 368 {
		t.Fatalf("map size = %dx%d, want 960x368", data.Width, data.Height)
	}
	if len(data.Solids) != 3 {
		t.Fatalf("solids = %d, want 3 boundary walls", len(data.Solids))
	}
	if len(data.Platforms) != 5 {
		t.Fatalf("platforms = %d, want 5", len(data.Platforms))
	}
	if len(data.Floaters) != 2 {
		t.Fatalf("floaters = %d, want 2", len(data.Floaters))
	}
	if !data.HasSpawn {
		t.Fatalf("no player spawn parsed")
	}
	if data.Spawn.X != 96 || data.Spawn.Y != 304 {
		t.Fatalf("spawn = (%v, %v), want (96, 304)", data.Spawn.X, data.Spawn.Y)
	}

	// Every rect must be inside the map bounds.
	rects := append([]Rect{}, data.Solids...)
	rects = append(rects, data.Platforms...)
	rects = append(rects, data.Floaters...)
	for _, r := range rects {
		if r.X < 0 || r.Y < 0 || r.X+r.W > float64(data.Width) || r.Y+r.H > float64(data.Height) {
			t.Fatalf("rect %+v outside %dx%d map", r, data.Width, data.Height)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(os.DirFS("../assets"), "levels/nope.tmx"); err == nil {
		t.Fatalf("expected error for missing level file")
	}
}
