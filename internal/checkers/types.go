package checkers

type Color int8

const (
	NoColor Color = -1
	Light   Color = 0
	Dark    Color = 1
)

func (c Color) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	Man
	King
)

// Piece encodes color and kind in one byte: 0 empty, >0 light, <0 dark, abs = Kind.
type Piece int8

func makePiece(c Color, k Kind) Piece {
	if k == KindNone || c == NoColor {
		return 0
	}
	if c == Light {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return Light
	}
	return Dark
}

func (p Piece) IsKing() bool { return p.Kind() == King }

type Variant int8

const (
	Classic Variant = iota
	Giveaway
)

func (v Variant) String() string {
	if v == Giveaway {
		return "giveaway"
	}
	return "classic"
}

type Board struct {
	Squares [NumSquares]Piece
}

// Move is a single ply: one step or one capturing hop. A multi-jump is a
// sequence of Moves played under a forced continuation, not one Move.
type Move struct {
	From     int
	To       int
	Captured []int
	Score    int // move-ordering heuristic, never part of move identity
}

func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

// Equal ignores the ordering score.
func (m Move) Equal(o Move) bool {
	if m.From != o.From || m.To != o.To || len(m.Captured) != len(o.Captured) {
		return false
	}
	for i := range m.Captured {
		if m.Captured[i] != o.Captured[i] {
			return false
		}
	}
	return true
}

// NoSquare marks the absence of a forced-continuation square.
const NoSquare = -1

// Position is a board plus everything that distinguishes two states with the
// same piece placement: the mover, an outstanding multi-jump continuation,
// and the rule variant.
type Position struct {
	Board      Board
	SideToMove Color
	ForcedFrom int
	Variant    Variant
	Hash       uint64
}
