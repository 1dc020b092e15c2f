package nav

import (
	"testing"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/internal/event"
	"go-hexpod-campus/internal/layout"
	"go-hexpod-campus/internal/utils"
	"go-hexpod-campus/pkg/geom"
)

func activeController(t *testing.T) *Controller {
	t.Helper()
	towers := []defs.TowerDefinition{
		{ID: "t0", OrderIndex: 0},
		{ID: "t1", OrderIndex: 1},
	}
	sites := layout.BuildSites(towers, nil)
	net := layout.BuildNetwork(sites)
	c := NewController(net, layout.SiteIndex(sites), utils.NewPRNGService(1), event.NewDispatcher(), DefaultConfig())
	c.Activate(geom.Vec3{X: 40})
	return c
}

func TestPanWrapsAround(t *testing.T) {
	c := activeController(t)

	// 0 minus one coarse step wraps below zero.
	c.Apply(ActionPanCoarseLeft)
	if got := c.Snapshot().CameraPan; got != 360-config.PanCoarseStep {
		t.Errorf("Expected pan %d, got %d", 360-config.PanCoarseStep, got)
	}

	c.Apply(ActionCamReset)
	for i := 0; i < 360; i++ {
		c.Apply(ActionPanFineRight)
	}
	if got := c.Snapshot().CameraPan; got != 0 {
		t.Errorf("Full fine rotation must land back at 0, got %d", got)
	}
}

func TestTiltClamps(t *testing.T) {
	c := activeController(t)

	for i := 0; i < 100; i++ {
		c.Apply(ActionTiltUp)
	}
	if got := c.Snapshot().CameraTilt; got != 180 {
		t.Errorf("Expected tilt clamp at 180, got %d", got)
	}
	for i := 0; i < 100; i++ {
		c.Apply(ActionTiltDown)
	}
	if got := c.Snapshot().CameraTilt; got != 0 {
		t.Errorf("Expected tilt clamp at 0, got %d", got)
	}
}

func TestHeightClamps(t *testing.T) {
	c := activeController(t)

	for i := 0; i < 20; i++ {
		c.Apply(ActionHeightUp)
	}
	if got := c.Snapshot().CameraHeight; got != config.CameraHeightLevel-1 {
		t.Errorf("Expected height clamp at %d, got %d", config.CameraHeightLevel-1, got)
	}
	for i := 0; i < 20; i++ {
		c.Apply(ActionHeightDown)
	}
	if got := c.Snapshot().CameraHeight; got != 0 {
		t.Errorf("Expected height clamp at 0, got %d", got)
	}
}

func TestRotateWrapsHeading(t *testing.T) {
	c := activeController(t)

	c.Apply(ActionRotateLeft)
	if got := c.Snapshot().Heading; got != 5 {
		t.Errorf("Rotate left from 0 must wrap to 5, got %d", got)
	}
	c.Apply(ActionRotateRight)
	if got := c.Snapshot().Heading; got != 0 {
		t.Errorf("Rotate right must wrap back to 0, got %d", got)
	}
}

func TestCamSlotSelection(t *testing.T) {
	c := activeController(t)

	c.Apply(ActionCamSlot4)
	if got := c.Snapshot().CameraSlot; got != 4 {
		t.Errorf("Expected slot 4, got %d", got)
	}
	c.Apply(ActionCamSlot0)
	if got := c.Snapshot().CameraSlot; got != 0 {
		t.Errorf("Expected slot 0, got %d", got)
	}

	if ActionNone.camSlot() != -1 || ActionAscend.camSlot() != -1 {
		t.Errorf("Non-slot actions must report -1")
	}
}

func TestCamResetRestoresDefaults(t *testing.T) {
	c := activeController(t)
	c.Apply(ActionCamSlot3)
	c.Apply(ActionPanCoarseRight)
	c.Apply(ActionTiltUp)
	c.Apply(ActionHeightUp)

	c.Apply(ActionCamReset)
	snap := c.Snapshot()
	if snap.CameraSlot != config.DefaultCamSlot ||
		snap.CameraHeight != config.DefaultCamHeight ||
		snap.CameraPan != config.DefaultCamPan ||
		snap.CameraTilt != config.DefaultCamTilt {
		t.Errorf("Reset did not restore camera defaults: %+v", snap)
	}
}

func TestHeadingLabels(t *testing.T) {
	tests := []struct {
		heading int
		want    string
	}{
		{0, "N"},
		{1, "NE"},
		{2, "SE"},
		{3, "S"},
		{4, "SW"},
		{5, "NW"},
		{6, "N"}, // wraps
		{-1, "NW"},
	}
	for _, tt := range tests {
		if got := HeadingLabel(tt.heading); got != tt.want {
			t.Errorf("Heading %d: expected %s, got %s", tt.heading, tt.want, got)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionAscend.String() != "ascend" {
		t.Errorf("Unexpected name %q", ActionAscend.String())
	}
	if Action(999).String() != "unknown" {
		t.Errorf("Out-of-range action must stringify as unknown")
	}
}
