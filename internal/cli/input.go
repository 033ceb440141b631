package cli

import (
	"strings"
	"unicode"

	"turingtape/internal/machine"
)

// stripWhitespace removes every whitespace rune from a raw input line.
func stripWhitespace(line string) string {
	var b strings.Builder
	for _, ch := range line {
		if unicode.IsSpace(ch) {
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// ParseLine converts a whitespace-stripped line into symbols, in order.
//
// The first unparsable rune aborts the whole line with a
// *machine.SymbolError: the caller must discard everything, including the
// symbols parsed before the failure, so a partially valid line never reaches
// the engine.
func ParseLine(line string) ([]machine.Symbol, error) {
	syms := make([]machine.Symbol, 0, len(line))
	for _, ch := range line {
		sym, err := machine.ParseSymbol(ch)
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
	}
	return syms, nil
}
