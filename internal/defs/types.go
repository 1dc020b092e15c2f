// internal/defs/types.go
package defs

// TowerDefinition is one tower of the organization dataset. OrderIndex is the
// external placement priority: index 0 takes the grid center, later indices
// fill successive hex rings.
type TowerDefinition struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	OrderIndex int    `json:"orderIndex"`
}

// RingDefinition is one concentric ring of pod slots on a floor.
type RingDefinition struct {
	RadiusIndex int `json:"radiusIndex"`
	Slots       int `json:"slots"`
}

// FloorDefinition is one vertical level of a tower.
type FloorDefinition struct {
	TowerID    string           `json:"towerId"`
	OrderIndex int              `json:"orderIndex"`
	Rings      []RingDefinition `json:"rings"`
}

// PodDefinition places one occupant pod into a slot.
type PodDefinition struct {
	ID        string `json:"id"`
	TowerID   string `json:"towerId"`
	Floor     int    `json:"floor"`
	Ring      int    `json:"ring"`
	Slot      int    `json:"slot"`
	EntityID  string `json:"entityId"`
}

// EntityDefinition is the organizational entity occupying a pod, used for labels.
type EntityDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}
