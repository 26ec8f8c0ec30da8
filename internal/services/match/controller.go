package match

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/clock"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/placement"
)

// MatchIDAlphabet is the character set for generated match IDs
const MatchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MatchIDLength is the length of generated match IDs
const MatchIDLength = 12

// Controller sets up matches and applies guesses to them
type Controller struct {
	cfg       config.MatchConfig
	placement *placement.Service
	words     placement.WordSource
	clock     clock.Clock
	logger    zerolog.Logger
}

// NewController creates a new match Controller
func NewController(
	cfg config.MatchConfig,
	placementService *placement.Service,
	words placement.WordSource,
	clk clock.Clock,
	logger zerolog.Logger,
) *Controller {
	return &Controller{
		cfg:       cfg,
		placement: placementService,
		words:     words,
		clock:     clk,
		logger:    logger.With().Str("component", "match").Logger(),
	}
}

// NewMatch creates a match with random words hidden on both grids
func (c *Controller) NewMatch(d model.Difficulty, rnd random.Random) (*Match, error) {
	var grids [2]*model.Grid
	for _, side := range []model.Side{model.SideHuman, model.SideAI} {
		grid, err := model.NewGrid(c.cfg.GridSize)
		if err != nil {
			return nil, err
		}
		_, err = c.placement.PlaceRandomWords(grid, c.words, rnd, placement.Options{
			Count:     c.cfg.WordCount,
			MinLength: c.cfg.MinWordLength,
			MaxLength: c.cfg.MaxWordLength,
			Attempts:  c.cfg.PlacementAttempts,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up %s grid: %w", side, err)
		}
		grids[side] = grid
	}

	id := model.MatchID(rnd.String(MatchIDLength, MatchIDAlphabet))
	return c.NewMatchWithGrids(id, d, grids[model.SideHuman], grids[model.SideAI]), nil
}

// NewMatchWithGrids creates a match from grids that already hold their words.
// The human guesses first.
func (c *Controller) NewMatchWithGrids(id model.MatchID, d model.Difficulty, human, ai *model.Grid) *Match {
	now := c.clock.Now()
	m := &Match{
		ID:         id,
		Difficulty: d,
		State:      model.MatchStateInProgress,
		Current:    model.SideHuman,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.grids[model.SideHuman] = human
	m.grids[model.SideAI] = ai
	m.guesses[model.SideHuman] = model.NewGuessState(c.cfg.MissLimit)
	m.guesses[model.SideAI] = model.NewGuessState(c.cfg.MissLimit)

	c.logger.Info().
		Str("match_id", string(id)).
		Str("difficulty", string(d)).
		Int("grid_size", human.Size).
		Msg("match created")
	return m
}

// ApplyGuess resolves side's guess against the opponent's grid and passes
// the turn. A cell state regression aborts the match.
func (c *Controller) ApplyGuess(m *Match, side model.Side, guess model.Guess) (Outcome, error) {
	if m.IsOver() {
		return Outcome{}, model.ErrMatchOver
	}
	if side != m.Current {
		return Outcome{}, model.ErrNotPlayerTurn
	}

	switch guess.Kind {
	case model.GuessLetter:
		guess = model.LetterGuess(guess.Letter)
	case model.GuessWord:
		guess = model.WordGuess(guess.Word)
	}

	gs := m.guesses[side]
	grid := m.grids[side.Opponent()]
	if gs.HasGuessed(guess) {
		return Outcome{}, fmt.Errorf("%w: %s", model.ErrAlreadyGuessed, guess)
	}

	hit, err := c.resolve(grid, gs, guess)
	if err != nil {
		if errors.Is(err, model.ErrStateRegression) {
			m.State = model.MatchStateAbandoned
			c.logger.Error().Err(err).Str("match_id", string(m.ID)).Msg("match aborted")
		}
		return Outcome{}, err
	}

	gs.Record(guess)
	if !hit {
		gs.RecordMiss()
	}

	out := Outcome{Side: side, Guess: guess, Hit: hit}
	out.FoundWords = markFoundWords(grid, gs)

	m.Turn++
	m.UpdatedAt = c.clock.Now()
	m.Transcript = append(m.Transcript, model.TurnRecord{Turn: m.Turn, Side: side, Guess: guess, Hit: hit})

	switch {
	case grid.AllWordsFound():
		c.finish(m, &side)
	case gs.OutOfMisses():
		winner := side.Opponent()
		c.finish(m, &winner)
	case m.Turn >= c.cfg.MaxTurns:
		c.finish(m, nil)
	default:
		m.Current = side.Opponent()
	}

	out.MatchOver = m.IsOver()
	out.Winner = m.Winner
	return out, nil
}

// resolve applies guess to grid and reports whether it hit
func (c *Controller) resolve(grid *model.Grid, gs *model.GuessState, guess model.Guess) (bool, error) {
	switch guess.Kind {
	case model.GuessLetter:
		if _, ok := model.NormalizeLetter(guess.Letter); !ok {
			return false, model.ErrInvalidLetter
		}
		if !grid.ContainsLetter(guess.Letter) {
			return false, nil
		}
		gs.KnownLetters[guess.Letter] = true
		_, err := grid.RevealLetter(guess.Letter)
		return true, err

	case model.GuessCoordinate:
		cell, err := grid.Cell(guess.Position)
		if err != nil {
			return false, err
		}
		if cell.State != model.CellHidden {
			return false, fmt.Errorf("%w: %s is already known", model.ErrAlreadyGuessed, guess.Position)
		}
		if cell.IsEmpty() {
			return false, cell.SetState(model.CellMiss)
		}
		next := model.CellPartiallyKnown
		if gs.KnownLetters[cell.Letter] {
			next = model.CellRevealed
		}
		return true, cell.SetState(next)

	case model.GuessWord:
		if !model.IsAlphaWord(guess.Word) {
			return false, fmt.Errorf("%w: %q", model.ErrInvalidWord, guess.Word)
		}
		idx := grid.FindWord(guess.Word)
		if idx < 0 {
			return false, nil
		}
		w, err := grid.Word(idx)
		if err != nil {
			return false, err
		}
		for _, pos := range w.Cells {
			cell, err := grid.Cell(pos)
			if err != nil {
				return false, err
			}
			if err := cell.SetState(model.CellRevealed); err != nil {
				return false, err
			}
		}
		for _, r := range w.Text {
			gs.KnownLetters[r] = true
			if _, err := grid.RevealLetter(r); err != nil {
				return false, err
			}
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown guess kind %d", guess.Kind)
	}
}

// markFoundWords flags every newly fully revealed word as found
func markFoundWords(grid *model.Grid, gs *model.GuessState) []string {
	var found []string
	for i := range grid.WordCount() {
		w, _ := grid.Word(i)
		if w.Found || !grid.CheckIfFullyRevealed(i) {
			continue
		}
		w.Found = true
		gs.FoundWords = append(gs.FoundWords, w.Text)
		found = append(found, w.Text)
	}
	return found
}

func (c *Controller) finish(m *Match, winner *model.Side) {
	m.State = model.MatchStateFinished
	m.Winner = winner
	c.logger.Info().
		Str("match_id", string(m.ID)).
		Str("winner", m.WinnerName()).
		Int("turns", m.Turn).
		Msg("match finished")
}

// Abandon ends a match early with no winner
func (c *Controller) Abandon(m *Match) {
	if m.IsOver() {
		return
	}
	m.State = model.MatchStateAbandoned
	m.UpdatedAt = c.clock.Now()
	c.logger.Info().Str("match_id", string(m.ID)).Msg("match abandoned")
}
