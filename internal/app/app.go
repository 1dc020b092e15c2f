// internal/app/app.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/internal/event"
	"go-hexpod-campus/internal/layout"
	"go-hexpod-campus/internal/nav"
	"go-hexpod-campus/internal/utils"
	"go-hexpod-campus/pkg/geom"
)

// App owns one layout pass and the navigation controller over it.
type App struct {
	Settings        config.Settings
	Sites           []layout.TowerSite
	Network         *layout.Network
	Controller      *nav.Controller
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	gameTime float64
}

// NewApp loads the organization dataset, lays out the grid, builds the road
// network and wires the controller.
func NewApp(settings config.Settings) (*App, error) {
	if err := defs.LoadAll(settings.DataDir); err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	towers := defs.OrderedTowers()
	if len(towers) == 0 {
		return nil, fmt.Errorf("no towers defined in %s", settings.DataDir)
	}

	sites := layout.BuildSites(towers, defs.FloorLibrary)
	network := layout.BuildNetwork(sites)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	cfg := nav.DefaultConfig()
	cfg.ForwardConeRad = settings.ForwardConeDeg * math.Pi / 180
	cfg.EjectionDuration = settings.EjectionDuration

	a := &App{
		Settings:        settings,
		Sites:           sites,
		Network:         network,
		Controller:      nav.NewController(network, layout.SiteIndex(sites), rng, dispatcher, cfg),
		EventDispatcher: dispatcher,
		Rng:             rng,
	}

	listener := &appEventListener{}
	dispatcher.Subscribe(event.NavigationStarted, listener)
	dispatcher.Subscribe(event.NavigationStopped, listener)
	dispatcher.Subscribe(event.TowerEntered, listener)
	dispatcher.Subscribe(event.TowerExited, listener)
	dispatcher.Subscribe(event.FloorChanged, listener)
	dispatcher.Subscribe(event.RoadSwitched, listener)
	dispatcher.Subscribe(event.PodEjected, listener)
	dispatcher.Subscribe(event.PodLanded, listener)

	log.Printf("Campus ready: %d towers, %d roads", len(sites), len(network.Roads))
	return a, nil
}

// Update advances the simulation by one frame.
func (a *App) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.gameTime += deltaTime
	a.Controller.Simulate(deltaTime)
}

// GameTime returns the accumulated simulated time.
func (a *App) GameTime() float64 {
	return a.gameTime
}

// StartPosition picks where a fresh navigation session begins: the midpoint of
// the first road, or the center tower when the campus has no roads.
func (a *App) StartPosition() geom.Vec3 {
	if len(a.Network.Roads) > 0 {
		return a.Network.Roads[0].Segment.PointAlong(0.5)
	}
	return a.Sites[0].World
}

// appEventListener logs navigation milestones.
type appEventListener struct{}

func (l *appEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerEntered, event.FloorChanged:
		if tf, ok := e.Data.(event.TowerFloor); ok {
			log.Printf("%s: tower %s floor %d", e.Type, tf.TowerID, tf.Floor)
			return
		}
	}
	log.Printf("%s: %v", e.Type, e.Data)
}
