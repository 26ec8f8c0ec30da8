package match

import (
	"time"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Match is one human-versus-AI game held in memory. Each side hides words
// on its own grid and guesses at the other's.
type Match struct {
	ID         model.MatchID
	Difficulty model.Difficulty
	State      model.MatchState
	Turn       int
	Current    model.Side
	Winner     *model.Side // nil until someone wins
	Transcript []model.TurnRecord
	CreatedAt  time.Time
	UpdatedAt  time.Time

	grids   [2]*model.Grid       // Indexed by owning side
	guesses [2]*model.GuessState // Indexed by guessing side
}

// Grid returns the grid hidden by side
func (m *Match) Grid(side model.Side) *model.Grid {
	return m.grids[side]
}

// Guesses returns what side has learned about its opponent's grid
func (m *Match) Guesses(side model.Side) *model.GuessState {
	return m.guesses[side]
}

// ViewFor returns what side may see of its opponent's grid
func (m *Match) ViewFor(side model.Side) *model.BoardView {
	return m.grids[side.Opponent()].ViewFor(m.guesses[side])
}

// IsOver returns true once the match has finished or been abandoned
func (m *Match) IsOver() bool {
	return m.State != model.MatchStateInProgress
}

// WinnerName returns the winning side's name, or "" for a draw or abandon
func (m *Match) WinnerName() string {
	if m.Winner == nil {
		return ""
	}
	return m.Winner.String()
}

// Outcome describes the effect of one applied guess
type Outcome struct {
	Side       model.Side
	Guess      model.Guess
	Hit        bool
	FoundWords []string // Words completed by this guess
	MatchOver  bool
	Winner     *model.Side
}
