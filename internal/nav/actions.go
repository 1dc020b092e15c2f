// internal/nav/actions.go
package nav

// Action is one discrete navigation input. Actions apply instantly and are
// idempotent within a frame; continuous motion happens only in Simulate.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionExit
	ActionSpeedUp
	ActionSpeedDown
	ActionRotateLeft
	ActionRotateRight
	ActionPanFineLeft
	ActionPanFineRight
	ActionPanCoarseLeft
	ActionPanCoarseRight
	ActionTiltUp
	ActionTiltDown
	ActionAscend
	ActionDescend
	ActionCamSlot0
	ActionCamSlot1
	ActionCamSlot2
	ActionCamSlot3
	ActionCamSlot4
	ActionCamSlot5
	ActionCamSlot6
	ActionHeightUp
	ActionHeightDown
	ActionCamReset
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionToggle:         "toggle",
	ActionExit:           "exit",
	ActionSpeedUp:        "speed-up",
	ActionSpeedDown:      "speed-down",
	ActionRotateLeft:     "rotate-left",
	ActionRotateRight:    "rotate-right",
	ActionPanFineLeft:    "pan-fine-left",
	ActionPanFineRight:   "pan-fine-right",
	ActionPanCoarseLeft:  "pan-coarse-left",
	ActionPanCoarseRight: "pan-coarse-right",
	ActionTiltUp:         "tilt-up",
	ActionTiltDown:       "tilt-down",
	ActionAscend:         "ascend",
	ActionDescend:        "descend",
	ActionCamSlot0:       "cam-slot-0",
	ActionCamSlot1:       "cam-slot-1",
	ActionCamSlot2:       "cam-slot-2",
	ActionCamSlot3:       "cam-slot-3",
	ActionCamSlot4:       "cam-slot-4",
	ActionCamSlot5:       "cam-slot-5",
	ActionCamSlot6:       "cam-slot-6",
	ActionHeightUp:       "height-up",
	ActionHeightDown:     "height-down",
	ActionCamReset:       "cam-reset",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// camSlot returns the slot index for slot-select actions, or -1.
func (a Action) camSlot() int {
	if a >= ActionCamSlot0 && a <= ActionCamSlot6 {
		return int(a - ActionCamSlot0)
	}
	return -1
}
