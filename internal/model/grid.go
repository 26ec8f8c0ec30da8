package model

import (
	"fmt"
	"slices"
)

// CellState tracks what the guesser knows about a cell.
// States only ever move toward more information.
type CellState int

const (
	CellHidden         CellState = iota // Nothing known yet
	CellMiss                            // Guessed and empty; terminal
	CellPartiallyKnown                  // Known to hold a letter, letter not yet known
	CellRevealed                        // Letter known to the guesser
)

func (s CellState) String() string {
	switch s {
	case CellHidden:
		return "hidden"
	case CellMiss:
		return "miss"
	case CellPartiallyKnown:
		return "partially_known"
	case CellRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// IsHit returns true for states that mark a cell as holding a letter
func (s CellState) IsHit() bool {
	return s == CellPartiallyKnown || s == CellRevealed
}

func (s CellState) canAdvanceTo(next CellState) bool {
	switch s {
	case CellHidden:
		return next == CellMiss || next == CellPartiallyKnown || next == CellRevealed
	case CellPartiallyKnown:
		return next == CellRevealed
	default:
		return false
	}
}

// Cell is one square of the grid.
// Owners holds indices into the grid's word list.
type Cell struct {
	Pos    Position
	Letter rune // 0 means empty
	State  CellState
	Owners []int
}

// IsEmpty returns true if no word occupies the cell
func (c *Cell) IsEmpty() bool {
	return c.Letter == 0
}

// SetLetter claims the cell for a word. An occupied cell can only be shared
// by a word that needs the same letter there.
func (c *Cell) SetLetter(letter rune, word int) error {
	upper, ok := NormalizeLetter(letter)
	if !ok {
		return ErrInvalidLetter
	}

	if c.Letter == 0 {
		c.Letter = upper
		c.Owners = []int{word}
		return nil
	}
	if c.Letter != upper {
		return fmt.Errorf("%w: %s holds %c, want %c", ErrLetterConflict, c.Pos, c.Letter, upper)
	}
	if !slices.Contains(c.Owners, word) {
		c.Owners = append(c.Owners, word)
	}
	return nil
}

// SetState moves the cell to a new state. Setting the current state is a
// no-op; any move back toward less information fails with ErrStateRegression.
func (c *Cell) SetState(next CellState) error {
	if next == c.State {
		return nil
	}
	if !c.State.canAdvanceTo(next) {
		return fmt.Errorf("%w: %s %s -> %s", ErrStateRegression, c.Pos, c.State, next)
	}
	c.State = next
	return nil
}

// Word is a word hidden on the grid
type Word struct {
	Text      string // Normalized upper-case
	Start     Position
	Direction Direction
	Cells     []Position

	// FullyRevealed is derived; see Grid.CheckIfFullyRevealed
	FullyRevealed bool
	// Found is set once the guesser has identified the word
	Found bool
}

// Length returns the number of letters in the word
func (w *Word) Length() int {
	return len(w.Cells)
}

// WordPositions returns the cells a word of the given length would occupy
func WordPositions(start Position, dir Direction, length int) []Position {
	positions := make([]Position, length)
	for i := range length {
		positions[i] = start.Add(dir, i)
	}
	return positions
}

// Grid is a player's square letter grid.
// Cells and words live in flat arenas; cross-references are indices.
type Grid struct {
	Size  int
	cells []Cell // Row-major
	words []Word
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int) (*Grid, error) {
	if size < 1 || size > MaxGridSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}
	cells := make([]Cell, size*size)
	for row := range size {
		for col := range size {
			cells[row*size+col] = Cell{Pos: Position{Row: row, Col: col}}
		}
	}
	return &Grid{Size: size, cells: cells}, nil
}

// IsValidCoordinate returns true if the position is within bounds
func (g *Grid) IsValidCoordinate(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// Cell returns the cell at pos for reading or mutation
func (g *Grid) Cell(pos Position) (*Cell, error) {
	if !g.IsValidCoordinate(pos) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinate, pos)
	}
	return &g.cells[pos.Row*g.Size+pos.Col], nil
}

// Letter returns the letter at pos, or 0 if empty or out of bounds
func (g *Grid) Letter(pos Position) rune {
	cell, err := g.Cell(pos)
	if err != nil {
		return 0
	}
	return cell.Letter
}

// AddWord registers a word and returns its index
func (g *Grid) AddWord(w Word) int {
	g.words = append(g.words, w)
	return len(g.words) - 1
}

// NextWordIndex returns the index the next registered word will get
func (g *Grid) NextWordIndex() int {
	return len(g.words)
}

// Word returns the word at idx
func (g *Grid) Word(idx int) (*Word, error) {
	if idx < 0 || idx >= len(g.words) {
		return nil, ErrWordNotFound
	}
	return &g.words[idx], nil
}

// Words returns a copy of the placed words
func (g *Grid) Words() []Word {
	out := make([]Word, len(g.words))
	copy(out, g.words)
	return out
}

// WordCount returns the number of placed words
func (g *Grid) WordCount() int {
	return len(g.words)
}

// OccupiedCount returns the number of cells holding a letter
func (g *Grid) OccupiedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Letter != 0 {
			count++
		}
	}
	return count
}

// CheckIfFullyRevealed recomputes the word's FullyRevealed flag.
// Any Hidden or PartiallyKnown cell makes it false.
func (g *Grid) CheckIfFullyRevealed(idx int) bool {
	w, err := g.Word(idx)
	if err != nil {
		return false
	}
	revealed := true
	for _, pos := range w.Cells {
		cell, err := g.Cell(pos)
		if err != nil || cell.State == CellHidden || cell.State == CellPartiallyKnown {
			revealed = false
			break
		}
	}
	w.FullyRevealed = revealed
	return revealed
}

// ContainsLetter returns true if any unfound word contains the letter
func (g *Grid) ContainsLetter(letter rune) bool {
	for i := range g.words {
		if g.words[i].Found {
			continue
		}
		for _, r := range g.words[i].Text {
			if r == letter {
				return true
			}
		}
	}
	return false
}

// RevealLetter turns PartiallyKnown cells holding letter into Revealed cells
// and returns how many changed
func (g *Grid) RevealLetter(letter rune) (int, error) {
	changed := 0
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.Letter != letter || cell.State != CellPartiallyKnown {
			continue
		}
		if err := cell.SetState(CellRevealed); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// FindWord returns the index of the unfound word with the given text, or -1
func (g *Grid) FindWord(text string) int {
	text = NormalizeWord(text)
	for i := range g.words {
		if !g.words[i].Found && g.words[i].Text == text {
			return i
		}
	}
	return -1
}

// AllWordsFound returns true when every placed word has been found
func (g *Grid) AllWordsFound() bool {
	if len(g.words) == 0 {
		return false
	}
	for i := range g.words {
		if !g.words[i].Found {
			return false
		}
	}
	return true
}
