// internal/nav/state.go
package nav

import (
	"go-hexpod-campus/internal/layout"
	"go-hexpod-campus/pkg/geom"
)

// Mode is the vertical state of the pod.
type Mode string

const (
	ModeGrounded   Mode = "grounded"
	ModeAscending  Mode = "ascending"
	ModeDescending Mode = "descending"
	ModeEjected    Mode = "ejected"
)

// State is the single mutable navigation state. It is owned exclusively by the
// Controller; external readers only ever see a Snapshot.
type State struct {
	Active   bool
	Position geom.Vec3

	Heading      int // discrete pod rotation, 0..5, 60 degree steps
	CameraSlot   int // 0 = pod center, 1..6 = hex faces
	CameraHeight int // 0..4
	CameraPan    int // degrees, 0..359
	CameraTilt   int // degrees, 0..180; 90 = level

	SpeedLevel int // 0..5
	Mode       Mode
	Floor      int
	TowerID    string // empty when not inside a tower

	Road         *layout.Road
	RoadProgress float64 // 0..1 along Road

	EjectProgress float64 // 0..1 through the ejection arc
	EjectFrom     geom.Vec3
	EjectTo       geom.Vec3
	EjectPeak     float64

	// Tower the pod most recently stepped out of. Its boundary is ignored until
	// the pod has actually left the circle, otherwise the exit snap would
	// re-enter it on the next frame.
	exitedTowerID string
}

// Snapshot is the read-only copy of the navigation state handed to the HUD and
// renderer after each simulate call.
type Snapshot struct {
	Active       bool
	Position     geom.Vec3
	Heading      int
	HeadingLabel string
	CameraSlot   int
	CameraHeight int
	CameraPan    int
	CameraTilt   int
	SpeedLevel   int
	Mode         Mode
	Floor        int
	TowerID      string
	RoadID       string
	RoadProgress float64
}

var headingLabels = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// HeadingLabel maps a discrete 6-step heading onto the 8-sector compass rose
// (45 degree sectors centered on N).
func HeadingLabel(heading int) string {
	deg := (heading%6 + 6) % 6 * 60
	return headingLabels[((deg*2+45)/90)%8]
}

func (s *State) snapshot() Snapshot {
	roadID := ""
	if s.Road != nil {
		roadID = s.Road.ID
	}
	return Snapshot{
		Active:       s.Active,
		Position:     s.Position,
		Heading:      s.Heading,
		HeadingLabel: HeadingLabel(s.Heading),
		CameraSlot:   s.CameraSlot,
		CameraHeight: s.CameraHeight,
		CameraPan:    s.CameraPan,
		CameraTilt:   s.CameraTilt,
		SpeedLevel:   s.SpeedLevel,
		Mode:         s.Mode,
		Floor:        s.Floor,
		TowerID:      s.TowerID,
		RoadID:       roadID,
		RoadProgress: s.RoadProgress,
	}
}
