package machine

// Direction is the head movement reported by a transition.
//
// It is descriptive output only: the tape is append-only and no cursor is
// ever moved (see the package doc).
type Direction string

const (
	DirLeft  Direction = "L"
	DirRight Direction = "R"
	DirNone  Direction = "-"
)

func (d Direction) String() string { return string(d) }
