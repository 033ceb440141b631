// Package cli drives one interactive session of the transducer: banner,
// input loop, final report.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"turingtape/internal/machine"
	"turingtape/internal/report"
)

const (
	ExitSuccess = 0
	ExitIOError = 1
)

// Options configures a driver run. Both streams are injectable so black-box
// tests can drive a full session; nil defaults to the process streams.
type Options struct {
	In  io.Reader
	Out io.Writer
}

// Run drives one complete session.
//
// Sequence: print the transition table and the initial state, then prompt and
// read lines until one parses in full. Empty lines (after whitespace
// stripping) re-prompt. A line with any rune outside the alphabet is rejected
// and discarded whole, with zero engine mutation. The first fully valid line
// is fed to the engine symbol by symbol and the loop ends.
//
// The final report is emitted exactly once on every exit path, including a
// failing input stream, via the deferred scope guard below. A run that never
// consumed input still reports its single-state [q0] history.
func Run(opts Options) (exitCode int, err error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	m := machine.New()
	p := report.New(opts.Out)

	p.Header()
	p.Table(machine.DefaultTable())
	p.Status(m.Current())

	defer func() {
		p.Path(m.Path())
		p.Final(m.Current())
		if m.Accepted() {
			p.FinalValue(m.FinalValue())
		}
		log.Info().
			Stringer("final", m.Current()).
			Bool("accepted", m.Accepted()).
			Int("steps", len(m.TapeWrites())).
			Msg("run finished")
	}()

	scanner := bufio.NewScanner(opts.In)
	for {
		p.Prompt()
		if !scanner.Scan() {
			if serr := scanner.Err(); serr != nil {
				return ExitIOError, fmt.Errorf("reading input: %w", serr)
			}
			// EOF: nothing left to consume. Not an error; the deferred
			// report still runs.
			return ExitSuccess, nil
		}

		line := stripWhitespace(scanner.Text())
		if line == "" {
			continue
		}

		syms, perr := ParseLine(line)
		if perr != nil {
			var symErr *machine.SymbolError
			if errors.As(perr, &symErr) {
				p.Rejected(symErr)
				log.Debug().Str("line", line).Msg("line rejected")
				continue
			}
			return ExitIOError, perr
		}

		for _, sym := range syms {
			p.Reading(sym)
			if tr, ok := m.Step(sym); ok {
				p.Status(m.Current())
				p.Written(tr.Write)
				p.Direction(tr.Move)
			}
		}
		return ExitSuccess, nil
	}
}
