// internal/ui/hud.go
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/internal/nav"
)

const (
	hudPanelWidth  = 300
	hudPanelMargin = 10
	hudLineHeight  = 22
	hudFontSize    = 18
)

// HUD is the navigation readout panel in the top-left corner of the viewer.
type HUD struct {
	lines []string
}

// NewHUD creates an empty panel.
func NewHUD() *HUD {
	return &HUD{}
}

// Update rebuilds the panel lines from the latest navigation snapshot.
func (h *HUD) Update(snap nav.Snapshot, gameTime float64) {
	h.lines = h.lines[:0]
	if !snap.Active {
		h.lines = append(h.lines, "navigation off - TAB to start")
		return
	}

	towerLabel := "-"
	if snap.TowerID != "" {
		towerLabel = snap.TowerID
		if def, ok := defs.TowerLibrary[snap.TowerID]; ok && def.Label != "" {
			towerLabel = def.Label
		}
	}

	h.lines = append(h.lines,
		fmt.Sprintf("mode: %s", snap.Mode),
		fmt.Sprintf("speed: %d/%d", snap.SpeedLevel, config.MaxSpeedLevel),
		fmt.Sprintf("heading: %s", snap.HeadingLabel),
		fmt.Sprintf("tower: %s  floor: %d", towerLabel, snap.Floor),
		fmt.Sprintf("camera: slot %d  height %d", snap.CameraSlot, snap.CameraHeight),
		fmt.Sprintf("pan: %d  tilt: %d", snap.CameraPan, snap.CameraTilt),
		fmt.Sprintf("session: %.0fs", gameTime),
	)
}

// Draw renders the panel. Must be called outside 3D mode.
func (h *HUD) Draw() {
	panel := config.HUDPanelColor
	text := config.HUDTextColor
	height := int32(len(h.lines)*hudLineHeight + 2*hudPanelMargin)
	rl.DrawRectangle(hudPanelMargin, hudPanelMargin, hudPanelWidth, height, rl.NewColor(panel.R, panel.G, panel.B, panel.A))
	for i, line := range h.lines {
		y := int32(hudPanelMargin*2 + i*hudLineHeight)
		rl.DrawText(line, hudPanelMargin*2, y, hudFontSize, rl.NewColor(text.R, text.G, text.B, text.A))
	}
}
