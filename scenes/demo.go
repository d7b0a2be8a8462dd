package scenes

import (
	"sync"

	"github.com/automoto/shakecam/archetypes"
	"github.com/automoto/shakecam/components"
	cfg "github.com/automoto/shakecam/config"
	"github.com/automoto/shakecam/systems"
	"github.com/automoto/shakecam/systems/factory"
	"github.com/automoto/shakecam/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DemoScene is a small platformer used to exercise the camera shake
// controller against a moving target.
type DemoScene struct {
	ecs     *ecs.ECS
	tunerUI *ui.TunerUI
	once    sync.Once
}

func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if ds.tunerVisible() {
		ds.tunerUI.Update()
	}
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)

	if ds.tunerVisible() {
		ds.tunerUI.UI.Draw(screen)
	}
}

func (ds *DemoScene) tunerVisible() bool {
	if ds.tunerUI == nil {
		return false
	}
	entry, ok := components.Tuner.First(ds.ecs.World)
	if !ok {
		return false
	}
	return components.Tuner.Get(entry).Visible
}

func (ds *DemoScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateShakeControl)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ds.ecs = ecs

	// Level data drives the collision space dimensions.
	_, levelData, err := factory.CreateLevel(ds.ecs)
	if err != nil {
		panic("failed to load demo level: " + err.Error())
	}

	spaceEntry := factory.CreateSpace(ds.ecs, levelData.Width, levelData.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	for _, r := range levelData.Solids {
		factory.CreateWall(ds.ecs, space, r)
	}
	for _, r := range levelData.Platforms {
		obj := factory.NewSolidObject(r)
		space.Add(obj)
		factory.CreatePlatform(ds.ecs, obj)
	}
	for _, r := range levelData.Floaters {
		obj := factory.NewSolidObject(r)
		space.Add(obj)
		factory.CreateFloatingPlatform(ds.ecs, obj)
	}

	spawnX, spawnY := float64(levelData.Width)/2, float64(levelData.Height)/2
	if levelData.HasSpawn {
		spawnX, spawnY = levelData.Spawn.X, levelData.Spawn.Y
	}
	factory.CreatePlayer(ds.ecs, space, spawnX, spawnY)

	// Camera starts on the player so it does not pan in from (0,0).
	camera := factory.CreateCamera(ds.ecs, spawnX, spawnY)
	shakeData := components.Shake.Get(camera)

	// Restore tuning from a previous run, if any.
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		systems.ApplySavedTuning(ds.ecs, saved)
	}

	tunerEntry := archetypes.Tuner.Spawn(ds.ecs)
	tunerData := components.Tuner.Get(tunerEntry)
	ds.tunerUI = ui.NewTunerUI(shakeData, tunerData)
}
