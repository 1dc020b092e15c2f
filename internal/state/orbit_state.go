// internal/state/orbit_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/app"
	"go-hexpod-campus/pkg/render"
)

// OrbitState is the overview mode: a free camera circling the campus.
// TAB hands control over to pod navigation.
type OrbitState struct {
	sm  *Machine
	app *app.App

	camera rl.Camera3D
	orbit  rl.Vector3
	angleT float32
}

// NewOrbitState creates the overview mode over the shared app.
func NewOrbitState(sm *Machine, a *app.App) *OrbitState {
	s := &OrbitState{sm: sm, app: a, angleT: 0.4}
	s.camera = rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       55,
		Projection: rl.CameraPerspective,
	}
	s.orbit = rl.NewVector3(120, 180, 180)
	return s
}

func (s *OrbitState) Enter() {}

func (s *OrbitState) Update(deltaTime float64) {
	s.app.Update(deltaTime)

	if rl.IsKeyDown(rl.KeyQ) {
		s.orbit = rl.Vector3RotateByAxisAngle(s.orbit, s.camera.Up, -0.02)
	}
	if rl.IsKeyDown(rl.KeyE) {
		s.orbit = rl.Vector3RotateByAxisAngle(s.orbit, s.camera.Up, 0.02)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.angleT += wheel * 0.05
		if s.angleT > 0.95 {
			s.angleT = 0.95
		} else if s.angleT < 0.05 {
			s.angleT = 0.05
		}
	}

	topDown := rl.NewVector3(0, 380, 0.1)
	s.camera.Position = rl.Vector3Add(s.orbit, rl.Vector3Scale(rl.Vector3Subtract(topDown, s.orbit), s.angleT))
	s.camera.Target = rl.NewVector3(0, 0, 0)

	if rl.IsKeyPressed(rl.KeyTab) {
		s.app.Controller.Activate(s.app.StartPosition())
		s.sm.SetState(NewPodState(s.sm, s.app))
	}
}

func (s *OrbitState) Draw() {
	rl.BeginMode3D(s.camera)
	render.DrawScene(s.app.Sites, s.app.Network)
	rl.EndMode3D()
	rl.DrawText("Q/E orbit, wheel tilt, TAB enter pod", 10, 10, 18, rl.RayWhite)
}

func (s *OrbitState) Exit() {}
