package game

import "fmt"

// Phase is the lifecycle stage of a match
type Phase int

const (
	// PhaseSetup - board loaded, agents not yet stepping
	PhaseSetup Phase = iota
	// PhaseRunning - sides alternate turns
	PhaseRunning
	// PhaseEnded - a side was wiped out or the turn limit was hit
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// CanReceiveActions returns true if the engine accepts orders in this phase
func (p Phase) CanReceiveActions() bool { return p == PhaseRunning }

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	switch p {
	case PhaseSetup:
		return target == PhaseRunning || target == PhaseEnded
	case PhaseRunning:
		return target == PhaseEnded
	default:
		return false
	}
}
