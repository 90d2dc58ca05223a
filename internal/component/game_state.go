// internal/component/game_state.go
package component

// BoardPhase is the host-side barrier around grid mutations.
type BoardPhase int

const (
	// BoardIdle accepts swaps and drags.
	BoardIdle BoardPhase = iota
	// BoardDragging holds a snapshot while a row or column shift is previewed.
	BoardDragging
	// BoardCascading rejects input until the clear-and-refill sequence settles.
	BoardCascading
)

func (p BoardPhase) String() string {
	switch p {
	case BoardIdle:
		return "idle"
	case BoardDragging:
		return "dragging"
	case BoardCascading:
		return "cascading"
	}
	return "unknown"
}
