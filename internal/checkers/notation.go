package checkers

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidNotation = errors.New("invalid position notation")

// Encode writes a FEN-like string: eight '/'-separated rows with digit
// run-length for empties, then side (w/b), variant (c/g), and the forced
// continuation square ("-" when none).
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if p.Variant == Giveaway {
		sb.WriteByte('g')
	} else {
		sb.WriteByte('c')
	}
	sb.WriteByte(' ')
	if p.ForcedFrom == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(strconv.Itoa(p.ForcedFrom))
	}
	return sb.String()
}

// DecodePosition parses the Encode format and returns a fully hashed
// position.
func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return nil, ErrInvalidNotation
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidNotation
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidNotation
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			kind, ok := letterToKind[base]
			if !ok {
				return nil, ErrInvalidNotation
			}
			color := Dark
			if isUpper {
				color = Light
			}
			b.Squares[indexOf(r, c)] = makePiece(color, kind)
			c++
		}
		if c != Cols {
			return nil, ErrInvalidNotation
		}
	}

	var side Color
	switch parts[1] {
	case "w":
		side = Light
	case "b":
		side = Dark
	default:
		return nil, ErrInvalidNotation
	}

	var variant Variant
	switch parts[2] {
	case "c":
		variant = Classic
	case "g":
		variant = Giveaway
	default:
		return nil, ErrInvalidNotation
	}

	forced := NoSquare
	if parts[3] != "-" {
		n, err := strconv.Atoi(parts[3])
		if err != nil || n < 0 || n >= NumSquares {
			return nil, ErrInvalidNotation
		}
		forced = n
	}

	pos := &Position{
		Board:      b,
		SideToMove: side,
		ForcedFrom: forced,
		Variant:    variant,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

// Render draws the board for the terminal, light pieces uppercase.
func (p *Position) Render() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('0' + r))
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(pieceToChar(p.Board.Squares[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
