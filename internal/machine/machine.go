package machine

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Machine is the automaton engine for a single run.
//
// It owns the run history: the sequence of states visited (starting at the
// initial state) and the chronological log of symbols written to the tape.
// The two are bound by the invariant len(tapeWrites) == len(states)-1, which
// every Step preserves.
//
// The history is observational: accessors return copies and reading them
// never mutates the machine.
type Machine struct {
	table  *Table
	states []State
	writes []Symbol
}

// New constructs a machine over the default hardcoded table.
func New() *Machine { return NewWithTable(DefaultTable()) }

// NewWithTable constructs a machine over an explicit table.
func NewWithTable(t *Table) *Machine {
	return &Machine{
		table:  t,
		states: []State{InitialState},
	}
}

// Step consumes one input symbol.
//
// If the table has a row for (current state, sym), the written symbol and the
// next state are appended to the history and the transition is returned with
// ok=true. If no row exists the machine is left untouched and ok=false; once
// idle is reached this holds for every further symbol. Step never fails:
// invalid symbols are rejected at parse time, before they reach the engine.
func (m *Machine) Step(sym Symbol) (Transition, bool) {
	cur := m.Current()
	tr, ok := m.table.Lookup(cur, sym)
	if !ok {
		log.Debug().Stringer("state", cur).Stringer("symbol", sym).Msg("no transition")
		return Transition{}, false
	}
	m.writes = append(m.writes, tr.Write)
	m.states = append(m.states, tr.Next)
	log.Debug().
		Stringer("from", cur).
		Stringer("symbol", sym).
		Stringer("to", tr.Next).
		Stringer("write", tr.Write).
		Stringer("move", tr.Move).
		Msg("transition")
	return tr, true
}

// Current returns the most recently entered state.
func (m *Machine) Current() State { return m.states[len(m.states)-1] }

// Accepted reports whether the current state is accepting.
func (m *Machine) Accepted() bool { return m.Current().Accepting() }

// Path returns a copy of the states visited, in order.
func (m *Machine) Path() []State {
	out := make([]State, len(m.states))
	copy(out, m.states)
	return out
}

// TapeWrites returns a copy of the chronological write log.
func (m *Machine) TapeWrites() []Symbol {
	out := make([]Symbol, len(m.writes))
	copy(out, m.writes)
	return out
}

// FinalValue returns the tape read left to right: the reverse concatenation
// of the write log. The head conceptually moves leftward while writing, so
// chronological order is the mirror image of tape order. Only meaningful for
// an accepting run.
func (m *Machine) FinalValue() string {
	var b strings.Builder
	for i := len(m.writes) - 1; i >= 0; i-- {
		b.WriteString(string(m.writes[i]))
	}
	return b.String()
}
