// internal/nav/controller.go
package nav

import (
	"math"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/event"
	"go-hexpod-campus/internal/layout"
	"go-hexpod-campus/internal/utils"
	"go-hexpod-campus/pkg/geom"
	putils "go-hexpod-campus/pkg/utils"
)

// Config carries the tunable parts of the navigation behavior. Everything else
// comes from the config package constants.
type Config struct {
	ForwardConeRad   float64 // max angle between heading and road direction to count as forward
	EjectionDuration float64
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		ForwardConeRad:   config.ForwardConeDeg * math.Pi / 180,
		EjectionDuration: config.EjectionDuration,
	}
}

// Controller owns the navigation state machine. Apply and Simulate are
// synchronous and must never overlap; the host loop calls Simulate once per
// frame and Apply once per input event.
type Controller struct {
	cfg    Config
	net    *layout.Network
	sites  map[string]layout.TowerSite
	rng    *utils.PRNGService
	events *event.Dispatcher
	state  State
}

// NewController wires the controller to one layout pass. The PRNG decides the
// ejection landing road; inject a fixed seed for deterministic runs.
func NewController(net *layout.Network, sites map[string]layout.TowerSite, rng *utils.PRNGService, events *event.Dispatcher, cfg Config) *Controller {
	c := &Controller{
		cfg:    cfg,
		net:    net,
		sites:  sites,
		rng:    rng,
		events: events,
	}
	c.resetCamera()
	return c
}

// Snapshot returns the read-only copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return c.state.snapshot()
}

// Active reports whether navigation is running.
func (c *Controller) Active() bool {
	return c.state.Active
}

// Activate starts navigation from the given world position, snapping the pod
// onto the closest road. With no usable road the pod stays at the raw start.
func (c *Controller) Activate(start geom.Vec3) {
	c.state = State{
		Active:   true,
		Position: start,
		Mode:     ModeGrounded,
	}
	c.resetCamera()
	if road, t, ok := c.net.ClosestRoad(start); ok {
		c.state.Road = road
		c.state.RoadProgress = t
		c.state.Position = road.Segment.PointAlong(t)
	}
	c.events.Dispatch(event.Event{Type: event.NavigationStarted, Data: c.state.Position})
}

// Deactivate stops navigation. The state is retained but Apply and Simulate
// become no-ops until the next activation rebinds.
func (c *Controller) Deactivate() {
	if !c.state.Active {
		return
	}
	c.state.Active = false
	c.events.Dispatch(event.Event{Type: event.NavigationStopped})
}

// Apply executes one discrete action against the current state.
func (c *Controller) Apply(a Action) {
	if !c.state.Active {
		if a == ActionToggle {
			c.Activate(c.state.Position)
		}
		return
	}

	s := &c.state
	switch a {
	case ActionToggle, ActionExit:
		c.Deactivate()
	case ActionSpeedUp:
		if s.Mode == ModeGrounded {
			s.SpeedLevel = putils.Clamp(s.SpeedLevel+1, 0, config.MaxSpeedLevel)
		}
	case ActionSpeedDown:
		if s.Mode == ModeGrounded {
			s.SpeedLevel = putils.Clamp(s.SpeedLevel-1, 0, config.MaxSpeedLevel)
		}
	case ActionRotateLeft:
		s.Heading = (s.Heading + config.HeadingSteps - 1) % config.HeadingSteps
	case ActionRotateRight:
		s.Heading = (s.Heading + 1) % config.HeadingSteps
	case ActionPanFineLeft:
		s.CameraPan = wrapDeg(s.CameraPan - config.PanFineStep)
	case ActionPanFineRight:
		s.CameraPan = wrapDeg(s.CameraPan + config.PanFineStep)
	case ActionPanCoarseLeft:
		s.CameraPan = wrapDeg(s.CameraPan - config.PanCoarseStep)
	case ActionPanCoarseRight:
		s.CameraPan = wrapDeg(s.CameraPan + config.PanCoarseStep)
	case ActionTiltUp:
		s.CameraTilt = putils.Clamp(s.CameraTilt+config.TiltStep, 0, 180)
	case ActionTiltDown:
		s.CameraTilt = putils.Clamp(s.CameraTilt-config.TiltStep, 0, 180)
	case ActionHeightUp:
		s.CameraHeight = putils.Clamp(s.CameraHeight+1, 0, config.CameraHeightLevel-1)
	case ActionHeightDown:
		s.CameraHeight = putils.Clamp(s.CameraHeight-1, 0, config.CameraHeightLevel-1)
	case ActionCamReset:
		c.resetCamera()
	case ActionAscend:
		c.requestAscend()
	case ActionDescend:
		c.requestDescend()
	default:
		if slot := a.camSlot(); slot >= 0 {
			s.CameraSlot = slot
		}
	}
}

// Simulate advances the continuous state by the elapsed time in seconds.
func (c *Controller) Simulate(dt float64) {
	if !c.state.Active || dt <= 0 {
		return
	}
	switch c.state.Mode {
	case ModeGrounded:
		c.simulateGrounded(dt)
	case ModeAscending:
		c.simulateVertical(dt, +1)
	case ModeDescending:
		c.simulateVertical(dt, -1)
	case ModeEjected:
		c.simulateEjected(dt)
	}
}

// requestAscend climbs one floor, or ejects the pod over the roof when it is
// already on the tower's top floor. Outside a tower it is a no-op.
func (c *Controller) requestAscend() {
	s := &c.state
	if s.TowerID == "" || s.Mode != ModeGrounded {
		return
	}
	site, ok := c.sites[s.TowerID]
	if !ok {
		return
	}
	if s.Floor < site.FloorCount-1 {
		s.Mode = ModeAscending
		return
	}
	c.eject(site)
}

// requestDescend drops one floor, or steps out of the tower at ground level.
func (c *Controller) requestDescend() {
	s := &c.state
	if s.TowerID == "" || s.Mode != ModeGrounded {
		return
	}
	if s.Floor > 0 {
		s.Mode = ModeDescending
		return
	}
	c.exitTower()
}

// eject launches the parabolic flight off the tower roof. The landing point is
// the ground midpoint of one random connected road, or a fixed offset past the
// footprint when the tower has no roads.
func (c *Controller) eject(site layout.TowerSite) {
	s := &c.state
	s.EjectFrom = s.Position
	roads := c.net.ConnectedRoads(site.ID)
	if len(roads) > 0 {
		road := roads[c.rng.Intn(len(roads))]
		s.EjectTo = road.Segment.PointAlong(0.5)
	} else {
		s.EjectTo = site.World.Add(geom.Vec3{X: site.Radius + config.FallbackLandingGap})
	}
	s.EjectPeak = site.MaxFloorHeight + config.EjectionPeakMargin
	s.EjectProgress = 0
	s.Mode = ModeEjected
	c.events.Dispatch(event.Event{Type: event.PodEjected, Data: site.ID})
}

// exitTower clears the tower binding and snaps the pod back onto the road
// network at ground level.
func (c *Controller) exitTower() {
	s := &c.state
	exited := s.TowerID
	s.TowerID = ""
	s.Floor = 0
	s.exitedTowerID = exited
	s.Mode = ModeGrounded
	s.Position.Y = 0
	if road, t, ok := c.net.ClosestRoad(s.Position); ok {
		s.Road = road
		s.RoadProgress = t
		s.Position = road.Segment.PointAlong(t)
	}
	c.events.Dispatch(event.Event{Type: event.TowerExited, Data: exited})
}

func (c *Controller) simulateGrounded(dt float64) {
	s := &c.state
	if s.Road == nil || s.SpeedLevel == 0 {
		return
	}
	length := s.Road.Segment.Length()
	if length == 0 {
		return
	}

	headingAngle := headingToRad(s.Heading)
	roadAngle := s.Road.Segment.To.Sub(s.Road.Segment.From).AngleXZ()
	sign := 1.0
	if utils.AngleDiff(headingAngle, roadAngle) > c.cfg.ForwardConeRad {
		sign = -1.0
	}

	speed := float64(s.SpeedLevel) * config.SpeedUnitsPerLevel
	s.RoadProgress = geom.ClampF(s.RoadProgress+sign*speed*dt/length, 0, 1)
	s.Position = s.Road.Segment.PointAlong(s.RoadProgress)

	// Clear the re-entry guard once the pod is clear of the exited footprint.
	if s.exitedTowerID != "" {
		if site, ok := c.sites[s.exitedTowerID]; !ok || !geom.InCircle(s.Position, site.World, site.Radius) {
			s.exitedTowerID = ""
		}
	}

	if b, inside := c.net.BoundaryContaining(s.Position); inside && b.TowerID != s.exitedTowerID {
		c.enterTower(b.TowerID)
		return
	}

	if s.RoadProgress == 0 || s.RoadProgress == 1 {
		c.switchRoadAtJunction()
	}
}

// enterTower binds the pod to floor 0 of the tower it just rolled into.
func (c *Controller) enterTower(towerID string) {
	s := &c.state
	s.TowerID = towerID
	s.Floor = 0
	s.SpeedLevel = 0
	s.Road = nil
	s.RoadProgress = 0
	s.Position.Y = config.PodHeight / 2
	c.events.Dispatch(event.Event{Type: event.TowerEntered, Data: event.TowerFloor{TowerID: towerID, Floor: 0}})
}

// switchRoadAtJunction continues travel onto whichever road at the reached
// endpoint points closest to the pod's heading. With no candidate the pod just
// stays at the endpoint.
func (c *Controller) switchRoadAtJunction() {
	s := &c.state
	junction := s.Road.FromID
	if s.RoadProgress == 1 {
		junction = s.Road.ToID
	}

	headingAngle := headingToRad(s.Heading)
	var best *layout.Road
	bestProgress := 0.0
	bestDiff := math.Pi * 2
	for _, candidate := range c.net.ConnectedRoads(junction) {
		if candidate.Segment.Length() == 0 {
			continue
		}
		away := candidate.Segment.To.Sub(candidate.Segment.From)
		progress := 0.0
		if candidate.ToID == junction {
			away = away.Scale(-1)
			progress = 1.0
		}
		diff := utils.AngleDiff(headingAngle, away.AngleXZ())
		if diff < bestDiff {
			bestDiff = diff
			best = candidate
			bestProgress = progress
		}
	}
	if best == nil || best == s.Road {
		return
	}
	s.Road = best
	s.RoadProgress = bestProgress
	s.Position = best.Segment.PointAlong(bestProgress)
	c.events.Dispatch(event.Event{Type: event.RoadSwitched, Data: best.ID})
}

// simulateVertical moves the pod toward the adjacent floor at the fixed ascent
// rate; dir is +1 for ascending, -1 for descending.
func (c *Controller) simulateVertical(dt float64, dir int) {
	s := &c.state
	target := float64(s.Floor+dir)*config.FloorSpacing + config.PodHeight/2
	step := config.AscendSpeed * dt
	if math.Abs(target-s.Position.Y) <= step {
		s.Position.Y = target
		s.Floor += dir
		s.Mode = ModeGrounded
		c.events.Dispatch(event.Event{Type: event.FloorChanged, Data: event.TowerFloor{TowerID: s.TowerID, Floor: s.Floor}})
		return
	}
	if target > s.Position.Y {
		s.Position.Y += step
	} else {
		s.Position.Y -= step
	}
}

func (c *Controller) simulateEjected(dt float64) {
	s := &c.state
	s.EjectProgress += dt / c.cfg.EjectionDuration
	if s.EjectProgress < 1 {
		s.Position = geom.ParabolicPoint(s.EjectFrom, s.EjectTo, s.EjectProgress, s.EjectPeak)
		return
	}

	// Land exactly at the target, then rebind to the road network.
	landed := s.EjectTo
	landed.Y = 0
	exited := s.TowerID
	s.Position = landed
	s.TowerID = ""
	s.Floor = 0
	s.exitedTowerID = exited
	s.EjectProgress = 0
	s.EjectFrom = geom.Vec3{}
	s.EjectTo = geom.Vec3{}
	s.EjectPeak = 0
	s.Mode = ModeGrounded
	if road, t, ok := c.net.ClosestRoad(landed); ok {
		s.Road = road
		s.RoadProgress = t
		s.Position = road.Segment.PointAlong(t)
	}
	c.events.Dispatch(event.Event{Type: event.PodLanded, Data: exited})
}

func (c *Controller) resetCamera() {
	c.state.CameraSlot = config.DefaultCamSlot
	c.state.CameraHeight = config.DefaultCamHeight
	c.state.CameraPan = config.DefaultCamPan
	c.state.CameraTilt = config.DefaultCamTilt
}

// headingToRad converts a discrete heading step to radians.
func headingToRad(heading int) float64 {
	return float64(heading) / config.HeadingSteps * 2 * math.Pi
}

func wrapDeg(deg int) int {
	return ((deg % 360) + 360) % 360
}
