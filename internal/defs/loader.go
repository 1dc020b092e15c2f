// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TowerLibrary holds all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// FloorLibrary holds floor definitions grouped by tower ID, sorted by OrderIndex.
var FloorLibrary map[string][]FloorDefinition

// PodLibrary holds all pod definitions, keyed by their ID.
var PodLibrary map[string]PodDefinition

// EntityLibrary holds all entity definitions, keyed by their ID.
var EntityLibrary map[string]EntityDefinition

// LoadAll reads every definition file from dir. Files are optional except
// towers.json; an empty world is an error.
func LoadAll(dir string) error {
	if err := LoadTowerDefinitions(filepath.Join(dir, "towers.json")); err != nil {
		return err
	}
	if err := LoadFloorDefinitions(filepath.Join(dir, "floors.json")); err != nil {
		return err
	}
	if err := LoadPodDefinitions(filepath.Join(dir, "pods.json")); err != nil {
		return err
	}
	return LoadEntityDefinitions(filepath.Join(dir, "entities.json"))
}

// LoadTowerDefinitions reads the tower file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadFloorDefinitions reads the floor file and populates the FloorLibrary.
// A missing file leaves every tower with zero floors.
func LoadFloorDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			FloorLibrary = make(map[string][]FloorDefinition)
			return nil
		}
		return fmt.Errorf("failed to read floor definitions file: %w", err)
	}

	var floorDefs []FloorDefinition
	if err := json.Unmarshal(file, &floorDefs); err != nil {
		return fmt.Errorf("failed to unmarshal floor definitions: %w", err)
	}

	FloorLibrary = make(map[string][]FloorDefinition)
	for _, def := range floorDefs {
		FloorLibrary[def.TowerID] = append(FloorLibrary[def.TowerID], def)
	}
	for towerID := range FloorLibrary {
		floors := FloorLibrary[towerID]
		sort.Slice(floors, func(i, j int) bool { return floors[i].OrderIndex < floors[j].OrderIndex })
		FloorLibrary[towerID] = floors
	}
	return nil
}

// LoadPodDefinitions reads the pod file and populates the PodLibrary.
func LoadPodDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			PodLibrary = make(map[string]PodDefinition)
			return nil
		}
		return fmt.Errorf("failed to read pod definitions file: %w", err)
	}

	var podDefs []PodDefinition
	if err := json.Unmarshal(file, &podDefs); err != nil {
		return fmt.Errorf("failed to unmarshal pod definitions: %w", err)
	}

	PodLibrary = make(map[string]PodDefinition)
	for _, def := range podDefs {
		PodLibrary[def.ID] = def
	}
	return nil
}

// LoadEntityDefinitions reads the entity file and populates the EntityLibrary.
func LoadEntityDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			EntityLibrary = make(map[string]EntityDefinition)
			return nil
		}
		return fmt.Errorf("failed to read entity definitions file: %w", err)
	}

	var entityDefs []EntityDefinition
	if err := json.Unmarshal(file, &entityDefs); err != nil {
		return fmt.Errorf("failed to unmarshal entity definitions: %w", err)
	}

	EntityLibrary = make(map[string]EntityDefinition)
	for _, def := range entityDefs {
		EntityLibrary[def.ID] = def
	}
	return nil
}

// OrderedTowers returns all loaded towers sorted by OrderIndex, ties broken by ID
// so that placement stays stable across runs.
func OrderedTowers() []TowerDefinition {
	towers := make([]TowerDefinition, 0, len(TowerLibrary))
	for _, def := range TowerLibrary {
		towers = append(towers, def)
	}
	sort.Slice(towers, func(i, j int) bool {
		if towers[i].OrderIndex != towers[j].OrderIndex {
			return towers[i].OrderIndex < towers[j].OrderIndex
		}
		return towers[i].ID < towers[j].ID
	})
	return towers
}
