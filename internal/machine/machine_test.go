package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, m *Machine, syms ...Symbol) {
	t.Helper()
	for _, sym := range syms {
		m.Step(sym)
		require.Equal(t, len(m.Path())-1, len(m.TapeWrites()),
			"history invariant broken after reading %s", sym)
	}
}

func TestMachine_StartsAtQ0WithEmptyTape(t *testing.T) {
	m := New()
	assert.Equal(t, []State{StateQ0}, m.Path())
	assert.Empty(t, m.TapeWrites())
	assert.Equal(t, StateQ0, m.Current())
	assert.False(t, m.Accepted())
}

func TestMachine_AcceptingPath(t *testing.T) {
	// q0 --0--> q1 --Θ--> q2 is the only route into the accepting state.
	m := New()
	feed(t, m, SymbolZero, SymbolTheta)

	assert.Equal(t, []State{StateQ0, StateQ1, StateQ2}, m.Path())
	assert.Equal(t, []Symbol{SymbolZero, SymbolOne}, m.TapeWrites())
	assert.True(t, m.Accepted())
	assert.Equal(t, "10", m.FinalValue())
}

func TestMachine_AcceptingPathViaOne(t *testing.T) {
	m := New()
	feed(t, m, SymbolOne, SymbolTheta)

	assert.Equal(t, []State{StateQ0, StateQ1, StateQ2}, m.Path())
	assert.True(t, m.Accepted())
	assert.Equal(t, "11", m.FinalValue())
}

func TestMachine_Scenario01Theta(t *testing.T) {
	// "01#": the second symbol sends q1 to idle writing blank; Θ then finds
	// no row at idle and changes nothing.
	m := New()
	feed(t, m, SymbolZero, SymbolOne, SymbolTheta)

	assert.Equal(t, []State{StateQ0, StateQ1, StateIdle}, m.Path())
	assert.Equal(t, []Symbol{SymbolZero, SymbolBlank}, m.TapeWrites())
	assert.False(t, m.Accepted())
}

func TestMachine_Scenario00Theta(t *testing.T) {
	m := New()
	feed(t, m, SymbolZero, SymbolZero, SymbolTheta)

	assert.Equal(t, []State{StateQ0, StateQ1, StateIdle}, m.Path())
	assert.False(t, m.Accepted())
}

func TestMachine_ThetaAlone(t *testing.T) {
	m := New()
	feed(t, m, SymbolTheta)

	assert.Equal(t, []State{StateQ0, StateIdle}, m.Path())
	assert.Equal(t, []Symbol{SymbolBlank}, m.TapeWrites())
	assert.False(t, m.Accepted())
}

func TestMachine_IdleAbsenceIsPermanent(t *testing.T) {
	m := New()
	feed(t, m, SymbolTheta)
	require.Equal(t, StateIdle, m.Current())

	wantPath := m.Path()
	wantWrites := m.TapeWrites()
	for i := 0; i < 3; i++ {
		for _, sym := range []Symbol{SymbolZero, SymbolOne, SymbolTheta, SymbolBlank} {
			_, ok := m.Step(sym)
			assert.False(t, ok)
		}
	}
	assert.Equal(t, wantPath, m.Path())
	assert.Equal(t, wantWrites, m.TapeWrites())
}

func TestMachine_StepReportsTransition(t *testing.T) {
	m := New()
	tr, ok := m.Step(SymbolZero)
	require.True(t, ok)
	assert.Equal(t, Transition{Write: SymbolZero, Next: StateQ1, Move: DirLeft}, tr)
}

func TestMachine_Determinism(t *testing.T) {
	input := []Symbol{SymbolOne, SymbolTheta, SymbolZero}
	a := New()
	b := New()
	feed(t, a, input...)
	feed(t, b, input...)

	assert.Equal(t, a.Path(), b.Path())
	assert.Equal(t, a.TapeWrites(), b.TapeWrites())
	assert.Equal(t, a.FinalValue(), b.FinalValue())
}

func TestMachine_AccessorsReturnCopies(t *testing.T) {
	m := New()
	feed(t, m, SymbolZero)

	p := m.Path()
	p[0] = StateIdle
	assert.Equal(t, []State{StateQ0, StateQ1}, m.Path())

	w := m.TapeWrites()
	w[0] = SymbolBlank
	assert.Equal(t, []Symbol{SymbolZero}, m.TapeWrites())
}
