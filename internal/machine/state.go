package machine

// State is one named configuration of the automaton.
//
// q0 is the initial state, q2 the sole accepting state, idle the terminal
// sink: once reached, no row in the table applies and the run is over.
type State string

const (
	StateQ0   State = "q0"
	StateQ1   State = "q1"
	StateQ2   State = "q2"
	StateIdle State = "idle"
)

// InitialState is the state every run history starts in.
const InitialState = StateQ0

func (s State) String() string { return string(s) }

// Accepting reports whether holding s at end of input marks the run
// successful.
func (s State) Accepting() bool { return s == StateQ2 }

// Terminal reports whether s has no outgoing transitions.
func (s State) Terminal() bool { return s == StateIdle }
