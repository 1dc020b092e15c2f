// internal/state/state.go
package state

// State is one mode of the campus viewer (free orbit, pod navigation).
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
}

// Machine switches between viewer states.
type Machine struct {
	current State
}

// NewMachine creates a machine with no initial state.
func NewMachine() *Machine {
	return &Machine{}
}

// SetState leaves the current state and enters the new one.
func (m *Machine) SetState(newState State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = newState
	if m.current != nil {
		m.current.Enter()
	}
}

// Update advances the current state.
func (m *Machine) Update(deltaTime float64) {
	if m.current != nil {
		m.current.Update(deltaTime)
	}
}

// Draw renders the current state.
func (m *Machine) Draw() {
	if m.current != nil {
		m.current.Draw()
	}
}
