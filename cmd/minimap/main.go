// cmd/minimap/main.go
//
// Top-down debug viewer for the campus layout: draws the road network, tower
// footprints and spiral placement order without starting the 3D app. Handy for
// checking a dataset after editing the definition files.
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/internal/layout"
)

const worldToScreen = 0.55

type Minimap struct {
	sites []layout.TowerSite
	net   *layout.Network
}

func (m *Minimap) Update() error {
	return nil
}

func (m *Minimap) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2

	for _, road := range m.net.Roads {
		vector.StrokeLine(screen,
			cx+float32(road.Segment.From.X*worldToScreen), cy+float32(road.Segment.From.Z*worldToScreen),
			cx+float32(road.Segment.To.X*worldToScreen), cy+float32(road.Segment.To.Z*worldToScreen),
			2, config.RoadColor, true)
	}

	for i, site := range m.sites {
		x := cx + float32(site.World.X*worldToScreen)
		y := cy + float32(site.World.Z*worldToScreen)
		vector.DrawFilledCircle(screen, x, y, float32(site.Radius*worldToScreen), config.TowerColor, true)
		label := fmt.Sprintf("%d %s", i, site.ID)
		text.Draw(screen, label, basicfont.Face7x13, int(x)-len(label)*3, int(y)+4, config.HUDTextColor)
	}

	summary := fmt.Sprintf("%d towers, %d roads", len(m.sites), len(m.net.Roads))
	text.Draw(screen, summary, basicfont.Face7x13, 10, 20, config.HUDTextColor)
}

func (m *Minimap) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings("settings.yaml")
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadAll(settings.DataDir); err != nil {
		log.Fatal(err)
	}

	sites := layout.BuildSites(defs.OrderedTowers(), defs.FloorLibrary)
	m := &Minimap{sites: sites, net: layout.BuildNetwork(sites)}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hexpod Campus Minimap")
	if err := ebiten.RunGame(m); err != nil {
		log.Fatal(err)
	}
}
