// internal/input/keymap.go
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/nav"
)

// Binding ties one raw key to one navigation action.
type Binding struct {
	Key    int32
	Action nav.Action
}

// DefaultKeymap is the fixed key table of the campus viewer.
var DefaultKeymap = []Binding{
	{rl.KeyTab, nav.ActionToggle},
	{rl.KeyEscape, nav.ActionExit},
	{rl.KeyW, nav.ActionSpeedUp},
	{rl.KeyS, nav.ActionSpeedDown},
	{rl.KeyA, nav.ActionRotateLeft},
	{rl.KeyD, nav.ActionRotateRight},
	{rl.KeyQ, nav.ActionPanFineLeft},
	{rl.KeyE, nav.ActionPanFineRight},
	{rl.KeyLeft, nav.ActionPanCoarseLeft},
	{rl.KeyRight, nav.ActionPanCoarseRight},
	{rl.KeyUp, nav.ActionTiltUp},
	{rl.KeyDown, nav.ActionTiltDown},
	{rl.KeyR, nav.ActionAscend},
	{rl.KeyF, nav.ActionDescend},
	{rl.KeyZero, nav.ActionCamSlot0},
	{rl.KeyOne, nav.ActionCamSlot1},
	{rl.KeyTwo, nav.ActionCamSlot2},
	{rl.KeyThree, nav.ActionCamSlot3},
	{rl.KeyFour, nav.ActionCamSlot4},
	{rl.KeyFive, nav.ActionCamSlot5},
	{rl.KeySix, nav.ActionCamSlot6},
	{rl.KeyH, nav.ActionHeightUp},
	{rl.KeyN, nav.ActionHeightDown},
	{rl.KeyHome, nav.ActionCamReset},
}

// Adapter polls raylib once per frame and turns key presses into discrete
// actions. The controller never sees raw keys.
type Adapter struct {
	keymap []Binding

	// TextFocused reports whether a text-entry control currently has focus.
	// While it returns true all navigation input is ignored.
	TextFocused func() bool
}

// NewAdapter creates an adapter over the default key table.
func NewAdapter() *Adapter {
	return &Adapter{keymap: DefaultKeymap}
}

// Poll returns the actions pressed since the previous frame, in key-table order.
func (a *Adapter) Poll() []nav.Action {
	if a.TextFocused != nil && a.TextFocused() {
		return nil
	}
	var actions []nav.Action
	for _, b := range a.keymap {
		if rl.IsKeyPressed(b.Key) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}
