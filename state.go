package blink

// Pattern is one of the two flat fill patterns the shell paints with.
type Pattern int

const (
	PatternWhite Pattern = iota
	PatternBlack
)

func (p Pattern) String() string {
	if p == PatternBlack {
		return "black"
	}
	return "white"
}

// PaintState is the toggle that decides which pattern the next paint uses.
// It starts at white and flips exactly once per successfully completed
// paint; a paint that never acquired a drawing surface does not flip it.
// It is only ever touched from the dispatch-loop thread.
type PaintState struct {
	current Pattern
}

func (s *PaintState) Current() Pattern {
	return s.current
}

func (s *PaintState) Flip() {
	if s.current == PatternWhite {
		s.current = PatternBlack
	} else {
		s.current = PatternWhite
	}
}
