package model

import (
	"strconv"
	"strings"
)

// MaxGridSize is the largest grid the coordinate codec can address (columns A-Z)
const MaxGridSize = 26

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Add returns the position offset by n steps in the given direction
func (p Position) Add(d Direction, n int) Position {
	return Position{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

// String renders the position in coordinate notation, e.g. "C4"
func (p Position) String() string {
	return FormatCoordinate(p)
}

// Direction is a unit step across the grid
type Direction struct {
	DRow int
	DCol int
}

var (
	DirRight     = Direction{DRow: 0, DCol: 1}
	DirDown      = Direction{DRow: 1, DCol: 0}
	DirDownRight = Direction{DRow: 1, DCol: 1}
	DirUpRight   = Direction{DRow: -1, DCol: 1}
	DirLeft      = Direction{DRow: 0, DCol: -1}
	DirUp        = Direction{DRow: -1, DCol: 0}
	DirUpLeft    = Direction{DRow: -1, DCol: -1}
	DirDownLeft  = Direction{DRow: 1, DCol: -1}
)

// AllDirections returns the 8 placement directions, forward ones first
func AllDirections() []Direction {
	return []Direction{
		DirRight, DirDown, DirDownRight, DirUpRight,
		DirLeft, DirUp, DirUpLeft, DirDownLeft,
	}
}

// IsValid reports whether d is a unit vector other than (0,0)
func (d Direction) IsValid() bool {
	if d.DRow == 0 && d.DCol == 0 {
		return false
	}
	return d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1
}

// IsDiagonal reports whether d moves along both axes
func (d Direction) IsDiagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// FormatCoordinate renders a position as column letter plus 1-based row ("A1")
func FormatCoordinate(pos Position) string {
	if pos.Col < 0 || pos.Col >= MaxGridSize || pos.Row < 0 {
		return "?"
	}
	return string(rune('A'+pos.Col)) + strconv.Itoa(pos.Row+1)
}

// ParseCoordinate parses "A1"-style notation case-insensitively.
// The second return value is false for malformed input.
func ParseCoordinate(s string) (Position, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Position{}, false
	}

	col := rune(strings.ToUpper(s[:1])[0])
	if col < 'A' || col > 'Z' {
		return Position{}, false
	}

	digits := s[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Position{}, false
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return Position{}, false
	}

	return Position{Row: row - 1, Col: int(col - 'A')}, true
}
