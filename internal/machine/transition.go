package machine

import "fmt"

// Transition is the rule applied on reading a symbol in a state: the symbol
// to write, the state to move to and the head direction to report.
type Transition struct {
	Write Symbol
	Next  State
	Move  Direction
}

// Tuple renders the transition as a single grid cell.
func (t Transition) Tuple() string {
	return fmt.Sprintf("(%s, %s, %s)", t.Write, t.Next, t.Move)
}

type ruleKey struct {
	state  State
	symbol Symbol
}

// Table is the immutable transition mapping keyed by (state, symbol).
//
// It preserves first-seen key order: States and Symbols report the distinct
// states and symbols in the order rows were added, which is also the render
// order of the printed grid. The table is never mutated after construction,
// so sharing it read-only across callers needs no synchronization.
type Table struct {
	rows    map[ruleKey]Transition
	states  []State
	symbols []Symbol
}

func (t *Table) add(s State, in Symbol, tr Transition) {
	k := ruleKey{state: s, symbol: in}
	if _, dup := t.rows[k]; dup {
		panic(fmt.Sprintf("duplicate transition row (%s, %s)", s, in))
	}
	t.rows[k] = tr
	if !containsState(t.states, s) {
		t.states = append(t.states, s)
	}
	if !containsSymbol(t.symbols, in) {
		t.symbols = append(t.symbols, in)
	}
}

// Lookup returns the transition for (state, symbol).
//
// Absence is a normal quiescent condition, not a failure: it occurs for every
// (idle, *) pair and signals that the machine has nothing further to do.
func (t *Table) Lookup(s State, in Symbol) (Transition, bool) {
	tr, ok := t.rows[ruleKey{state: s, symbol: in}]
	return tr, ok
}

// States returns the distinct keyed states in first-seen order.
func (t *Table) States() []State {
	out := make([]State, len(t.states))
	copy(out, t.states)
	return out
}

// Symbols returns the distinct keyed input symbols in first-seen order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// defaultTable is the hardcoded rule set. It is total over
// {q0, q1, q2} x {0, 1, Θ}; idle has no outgoing rows.
var defaultTable = func() *Table {
	t := &Table{rows: make(map[ruleKey]Transition, 9)}
	t.add(StateQ0, SymbolZero, Transition{Write: SymbolZero, Next: StateQ1, Move: DirLeft})
	t.add(StateQ0, SymbolOne, Transition{Write: SymbolOne, Next: StateQ1, Move: DirLeft})
	t.add(StateQ0, SymbolTheta, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	t.add(StateQ1, SymbolZero, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	t.add(StateQ1, SymbolOne, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	t.add(StateQ1, SymbolTheta, Transition{Write: SymbolOne, Next: StateQ2, Move: DirLeft})
	t.add(StateQ2, SymbolZero, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	t.add(StateQ2, SymbolOne, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	t.add(StateQ2, SymbolTheta, Transition{Write: SymbolBlank, Next: StateIdle, Move: DirNone})
	return t
}()

// DefaultTable returns the hardcoded transition table shared by all runs.
func DefaultTable() *Table { return defaultTable }

func containsState(xs []State, s State) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func containsSymbol(xs []Symbol, s Symbol) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
