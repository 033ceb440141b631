// Package report renders the transition table and run status to a console
// stream.
//
// It is purely presentational: every function consumes engine snapshots or
// the static table and never mutates either. The line formats here are the
// program's entire wire contract, so changes to them are breaking.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"turingtape/internal/machine"
)

// Printer writes the console report to a single stream.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer { return &Printer{w: w} }

// Header prints the banner preceding the rendered table.
func (p *Printer) Header() {
	fmt.Fprintln(p.w, "Transition table:")
}

// Table renders the transition table as a bordered grid.
//
// Layout: the header row is δ followed by the distinct symbols in table key
// order; each subsequent row is the state label followed by one transition
// tuple per symbol. All cells share a single width (the maximum display width
// over every cell) and are right-justified. Display width, not byte length,
// matters here: δ, Θ and ⊔ are multi-byte runes of width one.
//
// The one-row-per-state grouping relies on the fixed table being total over
// exactly the same symbols for every state.
func (p *Printer) Table(t *machine.Table) {
	symbols := t.Symbols()

	header := make([]string, 0, len(symbols)+1)
	header = append(header, "δ")
	for _, sym := range symbols {
		header = append(header, sym.String())
	}

	rows := make([][]string, 0, len(t.States()))
	for _, st := range t.States() {
		row := make([]string, 0, len(symbols)+1)
		row = append(row, st.String())
		for _, sym := range symbols {
			tr, ok := t.Lookup(st, sym)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, tr.Tuple())
		}
		rows = append(rows, row)
	}

	width := 0
	for _, row := range append([][]string{header}, rows...) {
		for _, cell := range row {
			if w := runewidth.StringWidth(cell); w > width {
				width = w
			}
		}
	}

	border := gridBorder(len(header), width)
	fmt.Fprintln(p.w, border)
	p.gridRow(header, width)
	fmt.Fprintln(p.w, border)
	for _, row := range rows {
		p.gridRow(row, width)
		fmt.Fprintln(p.w, border)
	}
}

func (p *Printer) gridRow(cells []string, width int) {
	var b strings.Builder
	for _, cell := range cells {
		b.WriteString("|")
		b.WriteString(runewidth.FillLeft(cell, width))
	}
	b.WriteString("|")
	fmt.Fprintln(p.w, b.String())
}

func gridBorder(columns, width int) string {
	var b strings.Builder
	for i := 0; i < columns; i++ {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("+")
	return b.String()
}

// Prompt prints the input prompt with no trailing newline.
func (p *Printer) Prompt() {
	fmt.Fprint(p.w, "Type value terminated by # character (theta equivalent): ")
}

// Reading announces the symbol about to be fed to the engine.
func (p *Printer) Reading(sym machine.Symbol) {
	fmt.Fprintf(p.w, "Reading symbol: %s\n", sym)
}

// Status prints the current state line. The accepting annotation is empty for
// non-accepting states, which leaves the line's trailing space in place.
func (p *Printer) Status(s machine.State) {
	fmt.Fprintf(p.w, "Current TM state: %s %s\n", s, acceptingSuffix(s))
}

// Written prints the symbol a transition wrote to the tape.
func (p *Printer) Written(sym machine.Symbol) {
	fmt.Fprintf(p.w, "Value written on tape: %s\n", sym)
}

// Direction prints the reported head movement.
func (p *Printer) Direction(d machine.Direction) {
	fmt.Fprintf(p.w, "Head direction of movement: %s\n", d)
}

// Rejected prints the message for an input rune outside the alphabet.
func (p *Printer) Rejected(err error) {
	fmt.Fprintln(p.w, err)
}

// Path prints the arrow-joined state change path.
func (p *Printer) Path(states []machine.State) {
	labels := make([]string, len(states))
	for i, s := range states {
		labels[i] = s.String()
	}
	fmt.Fprintf(p.w, "State change path: %s\n", strings.Join(labels, "→"))
}

// Final prints the final state line.
func (p *Printer) Final(s machine.State) {
	fmt.Fprintf(p.w, "Final TM state: %s %s\n", s, acceptingSuffix(s))
}

// FinalValue prints the tape value of an accepting run.
func (p *Printer) FinalValue(v string) {
	fmt.Fprintf(p.w, "Final value: %s\n", v)
}

func acceptingSuffix(s machine.State) string {
	if s.Accepting() {
		return "(accepting)"
	}
	return ""
}
