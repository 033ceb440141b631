package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol_AcceptedRunes(t *testing.T) {
	cases := []struct {
		ch   rune
		want Symbol
	}{
		{'0', SymbolZero},
		{'1', SymbolOne},
		{'#', SymbolTheta},
	}
	for _, c := range cases {
		got, err := ParseSymbol(c.ch)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseSymbol_RejectsEverythingElse(t *testing.T) {
	for _, ch := range []rune{'2', 'x', ' ', 'q', 'Θ', '⊔', '+', '\n'} {
		_, err := ParseSymbol(ch)
		require.Error(t, err, "rune %q", ch)

		var symErr *SymbolError
		require.True(t, errors.As(err, &symErr))
		assert.Equal(t, ch, symErr.Char)
	}
}

func TestParseSymbol_NoRuneParsesToBlank(t *testing.T) {
	// Blank is written-only; exhaustively sweep printable ASCII.
	for ch := rune(32); ch < 127; ch++ {
		sym, err := ParseSymbol(ch)
		if err != nil {
			continue
		}
		assert.NotEqual(t, SymbolBlank, sym, "rune %q", ch)
	}
}

func TestSymbolError_Message(t *testing.T) {
	err := &SymbolError{Char: 'x'}
	assert.Equal(t, "TM doesn't accept symbol: x", err.Error())
}
