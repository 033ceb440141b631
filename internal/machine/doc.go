// Package machine defines the deterministic single-tape transducer.
//
// It is intentionally split into:
//   - Immutable rule definition (Table): the fixed (state, symbol) transition
//     rows, built once and shared read-only
//   - Mutable run history (Machine): the states visited and symbols written
//     during one execution
//
// The tape model is append-only: transitions report a head direction but no
// cursor exists, and the final tape value is read as the reverse of the
// chronological write log. The fixed table depends on this, so the model must
// not be "fixed" into a positional bidirectional tape.
package machine
