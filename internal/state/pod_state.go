// internal/state/pod_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/app"
	"go-hexpod-campus/internal/input"
	"go-hexpod-campus/internal/nav"
	"go-hexpod-campus/internal/ui"
	"go-hexpod-campus/pkg/render"
)

// PodState is the navigation mode: the camera rides the pod and the key table
// feeds the controller. Deactivating navigation returns to the orbit view.
type PodState struct {
	sm   *Machine
	app  *app.App
	keys *input.Adapter
	hud  *ui.HUD
}

// NewPodState creates the pod mode over the shared app.
func NewPodState(sm *Machine, a *app.App) *PodState {
	return &PodState{
		sm:   sm,
		app:  a,
		keys: input.NewAdapter(),
		hud:  ui.NewHUD(),
	}
}

func (s *PodState) Enter() {}

func (s *PodState) Update(deltaTime float64) {
	for _, action := range s.keys.Poll() {
		s.app.Controller.Apply(action)
	}
	s.app.Update(deltaTime)
	s.hud.Update(s.app.Controller.Snapshot(), s.app.GameTime())

	if !s.app.Controller.Active() {
		s.sm.SetState(NewOrbitState(s.sm, s.app))
	}
}

func (s *PodState) Draw() {
	snap := s.app.Controller.Snapshot()
	pose := nav.ComposeCamera(snap)

	camera := rl.Camera3D{
		Position:   render.ToVector3(pose.Position),
		Target:     render.ToVector3(pose.Position.Add(pose.Forward())),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(camera)
	render.DrawScene(s.app.Sites, s.app.Network)
	render.DrawPod(snap)
	rl.EndMode3D()
	s.hud.Draw()
}

func (s *PodState) Exit() {}
