// internal/event/types.go
package event

const (
	NavigationStarted EventType = "NavigationStarted" // Data: geom.Vec3 start position
	NavigationStopped EventType = "NavigationStopped"
	TowerEntered      EventType = "TowerEntered" // Data: TowerFloor
	TowerExited       EventType = "TowerExited"  // Data: tower id string
	FloorChanged      EventType = "FloorChanged" // Data: TowerFloor
	RoadSwitched      EventType = "RoadSwitched" // Data: road id string
	PodEjected        EventType = "PodEjected"   // Data: tower id string
	PodLanded         EventType = "PodLanded"
)

// TowerFloor identifies one floor of one tower in event payloads.
type TowerFloor struct {
	TowerID string
	Floor   int
}
