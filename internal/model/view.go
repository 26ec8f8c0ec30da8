package model

import "maps"

// CellView is the guesser's view of one cell. Letter is only set when Revealed.
type CellView struct {
	State  CellState
	Letter rune
}

// WordView is the hangman pattern of one hidden word.
// Pattern holds 0 for letters the guesser does not know yet.
type WordView struct {
	Length  int
	Pattern []rune
	Found   bool
	Text    string // Only set once found
}

// KnownCount returns how many letters of the pattern are known
func (w WordView) KnownCount() int {
	count := 0
	for _, r := range w.Pattern {
		if r != 0 {
			count++
		}
	}
	return count
}

// BoardView is everything a guesser may see of the opponent's grid
type BoardView struct {
	Size  int
	Cells [][]CellView // Cells[row][col]
	Words []WordView

	GuessedLetters  map[rune]bool
	KnownLetters    map[rune]bool
	GuessedWords    map[string]bool
	MissesRemaining int
}

// ViewFor builds the view a guesser with the given state has of this grid
func (g *Grid) ViewFor(gs *GuessState) *BoardView {
	view := &BoardView{
		Size:            g.Size,
		Cells:           make([][]CellView, g.Size),
		Words:           make([]WordView, len(g.words)),
		GuessedLetters:  maps.Clone(gs.GuessedLetters),
		KnownLetters:    maps.Clone(gs.KnownLetters),
		GuessedWords:    maps.Clone(gs.GuessedWords),
		MissesRemaining: gs.MissesRemaining(),
	}

	for row := range g.Size {
		view.Cells[row] = make([]CellView, g.Size)
		for col := range g.Size {
			cell := &g.cells[row*g.Size+col]
			cv := CellView{State: cell.State}
			if cell.State == CellRevealed {
				cv.Letter = cell.Letter
			}
			view.Cells[row][col] = cv
		}
	}

	for i := range g.words {
		w := &g.words[i]
		wv := WordView{
			Length:  w.Length(),
			Pattern: make([]rune, w.Length()),
			Found:   w.Found,
		}
		if w.Found {
			wv.Text = w.Text
		}
		for j, pos := range w.Cells {
			letter := g.Letter(pos)
			cell, _ := g.Cell(pos)
			if w.Found || gs.KnownLetters[letter] || (cell != nil && cell.State == CellRevealed) {
				wv.Pattern[j] = letter
			}
		}
		view.Words[i] = wv
	}

	return view
}

// SpentLetters returns every letter not worth guessing again: the ones
// already guessed plus the ones already known
func (v *BoardView) SpentLetters() map[rune]bool {
	out := make(map[rune]bool, len(v.GuessedLetters)+len(v.KnownLetters))
	maps.Copy(out, v.GuessedLetters)
	maps.Copy(out, v.KnownLetters)
	return out
}

// Cell returns the view of the cell at pos; out-of-bounds positions read as Miss
func (v *BoardView) Cell(pos Position) CellView {
	if pos.Row < 0 || pos.Row >= v.Size || pos.Col < 0 || pos.Col >= v.Size {
		return CellView{State: CellMiss}
	}
	return v.Cells[pos.Row][pos.Col]
}

// HiddenPositions returns every cell still in the Hidden state, row-major
func (v *BoardView) HiddenPositions() []Position {
	var out []Position
	for row := range v.Size {
		for col := range v.Size {
			if v.Cells[row][col].State == CellHidden {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// HitPositions returns every cell known to hold a letter, row-major
func (v *BoardView) HitPositions() []Position {
	var out []Position
	for row := range v.Size {
		for col := range v.Size {
			if v.Cells[row][col].State.IsHit() {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// UnfoundWords returns the patterns of words not yet found
func (v *BoardView) UnfoundWords() []WordView {
	var out []WordView
	for _, w := range v.Words {
		if !w.Found {
			out = append(out, w)
		}
	}
	return out
}

// TotalWordLetters returns the summed length of all hidden words
func (v *BoardView) TotalWordLetters() int {
	total := 0
	for _, w := range v.Words {
		total += w.Length
	}
	return total
}
