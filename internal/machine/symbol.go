package machine

import "fmt"

// Symbol is one element of the tape alphabet.
//
// Zero and One are ordinary input symbols. Theta is the end-of-input marker,
// typed as '#' and displayed as Θ. Blank is the tape-erase marker: it is only
// ever produced by transitions, never parsed from input.
type Symbol string

const (
	SymbolZero  Symbol = "0"
	SymbolOne   Symbol = "1"
	SymbolTheta Symbol = "Θ"
	SymbolBlank Symbol = "⊔"
)

func (s Symbol) String() string { return string(s) }

// SymbolError reports an input rune outside the accepted alphabet.
//
// It is the only error kind in the system: table lookups signal absence via
// comma-ok, and stream failures propagate untyped.
type SymbolError struct {
	Char rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("TM doesn't accept symbol: %c", e.Char)
}

// ParseSymbol maps an input rune to its Symbol.
//
// Only '0', '1' and '#' are accepted. There is deliberately no rune that
// parses to Blank.
func ParseSymbol(ch rune) (Symbol, error) {
	switch ch {
	case '0':
		return SymbolZero, nil
	case '1':
		return SymbolOne, nil
	case '#':
		return SymbolTheta, nil
	default:
		return "", &SymbolError{Char: ch}
	}
}
