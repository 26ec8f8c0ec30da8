package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/mocks"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/dictionary"
	"github.com/mcoot/hiddenwords-go/internal/services/placement"
	"github.com/mcoot/hiddenwords-go/internal/storage/memory"
	"github.com/mcoot/hiddenwords-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	cfg        config.MatchConfig
	clock      *mocks.MockClock
	dict       *dictionary.Service
	controller *Controller
	match      *Match
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

func (s *ControllerSuite) SetupTest() {
	s.cfg = config.Default().Match
	s.cfg.GridSize = 6
	s.cfg.WordCount = 2
	s.cfg.MissLimit = 3
	s.cfg.MaxTurns = 50

	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.dict = dictionary.New(memory.New(), logger)
	s.Require().NoError(s.dict.LoadDefault())
	s.controller = NewController(s.cfg, placement.New(logger), s.dict, s.clock, logger)

	// Human hides CAT and TOE sharing the T; AI hides DOG
	human := s.grid(
		placed{"CAT", pos(0, 0), model.DirRight},
		placed{"TOE", pos(0, 2), model.DirDown},
	)
	ai := s.grid(placed{"DOG", pos(2, 1), model.DirRight})
	s.match = s.controller.NewMatchWithGrids("match-1", model.DifficultyNormal, human, ai)
}

type placed struct {
	word  string
	start model.Position
	dir   model.Direction
}

func (s *ControllerSuite) grid(words ...placed) *model.Grid {
	g, err := model.NewGrid(s.cfg.GridSize)
	s.Require().NoError(err)
	for _, w := range words {
		_, ok := placement.TryPlaceWord(g, w.word, w.start, w.dir)
		s.Require().True(ok, w.word)
	}
	return g
}

func (s *ControllerSuite) apply(side model.Side, g model.Guess) Outcome {
	out, err := s.controller.ApplyGuess(s.match, side, g)
	s.Require().NoError(err)
	return out
}

// Setup tests

func (s *ControllerSuite) TestNewMatchWithGrids() {
	s.Equal(model.MatchStateInProgress, s.match.State)
	s.Equal(model.SideHuman, s.match.Current)
	s.Equal(s.clock.Now(), s.match.CreatedAt)
	s.Equal(3, s.match.Guesses(model.SideAI).MissesRemaining())
	s.Equal(2, s.match.Grid(model.SideHuman).WordCount())
}

func (s *ControllerSuite) TestNewMatchPlacesRandomWords() {
	rnd := random.NewSeeded(5)
	m, err := s.controller.NewMatch(model.DifficultyHard, rnd)
	s.Require().NoError(err)

	s.Len(string(m.ID), MatchIDLength)
	s.Equal(model.DifficultyHard, m.Difficulty)
	s.Equal(2, m.Grid(model.SideHuman).WordCount())
	s.Equal(2, m.Grid(model.SideAI).WordCount())
}

func (s *ControllerSuite) TestNewMatchFailsWhenWordsCannotFit() {
	s.cfg.MinWordLength = 7
	s.cfg.MaxWordLength = 9
	controller := NewController(s.cfg, placement.New(testutil.NopLogger()), s.dict, s.clock, testutil.NopLogger())

	_, err := controller.NewMatch(model.DifficultyNormal, random.NewSeeded(1))
	s.Error(err)
}

// Turn order tests

func (s *ControllerSuite) TestTurnsAlternate() {
	s.apply(model.SideHuman, model.LetterGuess('Z'))
	s.Equal(model.SideAI, s.match.Current)

	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.LetterGuess('Q'))
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestRepeatGuessRejected() {
	s.apply(model.SideHuman, model.LetterGuess('D'))
	s.apply(model.SideAI, model.LetterGuess('E'))

	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.LetterGuess('d'))
	s.ErrorIs(err, model.ErrAlreadyGuessed)
	s.Equal(model.SideHuman, s.match.Current, "a rejected guess does not pass the turn")
}

// Letter guess tests

func (s *ControllerSuite) TestLetterHitBecomesKnown() {
	out := s.apply(model.SideHuman, model.LetterGuess('o'))
	s.True(out.Hit)
	s.True(s.match.Guesses(model.SideHuman).KnownLetters['O'])

	// The O cell is still hidden until located
	view := s.match.ViewFor(model.SideHuman)
	s.Equal(model.CellHidden, view.Cell(pos(2, 2)).State)
	s.Equal([]rune{0, 'O', 0}, view.Words[0].Pattern)
}

func (s *ControllerSuite) TestLetterMissCountsTowardLimit() {
	out := s.apply(model.SideHuman, model.LetterGuess('Z'))
	s.False(out.Hit)
	s.Equal(1, s.match.Guesses(model.SideHuman).Misses)
}

func (s *ControllerSuite) TestLetterRevealsPartiallyKnownCells() {
	s.apply(model.SideHuman, model.CoordinateGuess(pos(2, 1)))
	s.apply(model.SideAI, model.LetterGuess('Q'))
	s.Equal(model.CellPartiallyKnown, s.match.ViewFor(model.SideHuman).Cell(pos(2, 1)).State)

	s.apply(model.SideHuman, model.LetterGuess('D'))
	cell := s.match.ViewFor(model.SideHuman).Cell(pos(2, 1))
	s.Equal(model.CellRevealed, cell.State)
	s.Equal('D', cell.Letter)
}

func (s *ControllerSuite) TestInvalidLetter() {
	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.Guess{Kind: model.GuessLetter, Letter: '#'})
	s.ErrorIs(err, model.ErrInvalidLetter)
}

// Coordinate guess tests

func (s *ControllerSuite) TestCoordinateMiss() {
	out := s.apply(model.SideHuman, model.CoordinateGuess(pos(0, 0)))
	s.False(out.Hit)
	s.Equal(model.CellMiss, s.match.ViewFor(model.SideHuman).Cell(pos(0, 0)).State)
}

func (s *ControllerSuite) TestCoordinateOnKnownLetterReveals() {
	s.apply(model.SideHuman, model.LetterGuess('G'))
	s.apply(model.SideAI, model.LetterGuess('Q'))

	out := s.apply(model.SideHuman, model.CoordinateGuess(pos(2, 3)))
	s.True(out.Hit)
	s.Equal(model.CellView{State: model.CellRevealed, Letter: 'G'}, s.match.ViewFor(model.SideHuman).Cell(pos(2, 3)))
}

func (s *ControllerSuite) TestCoordinateOutOfBounds() {
	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.CoordinateGuess(pos(6, 0)))
	s.ErrorIs(err, model.ErrInvalidCoordinate)
}

func (s *ControllerSuite) TestCoordinateOnRevealedCellRejected() {
	s.apply(model.SideHuman, model.LetterGuess('Z'))
	s.apply(model.SideAI, model.WordGuess("cat"))
	s.apply(model.SideHuman, model.LetterGuess('Q'))

	_, err := s.controller.ApplyGuess(s.match, model.SideAI, model.CoordinateGuess(pos(0, 1)))
	s.ErrorIs(err, model.ErrAlreadyGuessed)
}

func (s *ControllerSuite) TestRepeatCoordinateRejected() {
	s.apply(model.SideHuman, model.CoordinateGuess(pos(2, 1)))
	s.apply(model.SideAI, model.LetterGuess('Q'))

	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.CoordinateGuess(pos(2, 1)))
	s.ErrorIs(err, model.ErrAlreadyGuessed)
}

// Word guess tests

func (s *ControllerSuite) TestWordGuessMiss() {
	out := s.apply(model.SideHuman, model.WordGuess("cat"))
	s.False(out.Hit)
	s.True(s.match.Guesses(model.SideHuman).GuessedWords["CAT"])
}

func (s *ControllerSuite) TestWordGuessFindsWord() {
	s.apply(model.SideHuman, model.LetterGuess('Z'))

	out := s.apply(model.SideAI, model.WordGuess("cat"))
	s.True(out.Hit)
	s.Equal([]string{"CAT"}, out.FoundWords)
	s.False(out.MatchOver)

	view := s.match.ViewFor(model.SideAI)
	s.True(view.Words[0].Found || view.Words[1].Found)
	// The shared T is revealed, so TOE shows it
	s.Equal(model.CellView{State: model.CellRevealed, Letter: 'T'}, view.Cell(pos(0, 2)))
	s.True(s.match.Guesses(model.SideAI).KnownLetters['T'])
}

func (s *ControllerSuite) TestLetterKnownFromFoundWordRejected() {
	s.apply(model.SideHuman, model.LetterGuess('Z'))
	s.apply(model.SideAI, model.WordGuess("cat"))
	s.apply(model.SideHuman, model.LetterGuess('Q'))

	// A only appears in the found CAT, so scoring it would count a miss
	_, err := s.controller.ApplyGuess(s.match, model.SideAI, model.LetterGuess('A'))
	s.ErrorIs(err, model.ErrAlreadyGuessed)
	s.Equal(0, s.match.Guesses(model.SideAI).Misses)
	s.Equal(model.SideAI, s.match.Current)
}

func (s *ControllerSuite) TestInvalidWord() {
	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.WordGuess("d0g"))
	s.ErrorIs(err, model.ErrInvalidWord)
}

// End of match tests

func (s *ControllerSuite) TestFindingEveryWordWins() {
	out := s.apply(model.SideHuman, model.WordGuess("DOG"))
	s.True(out.MatchOver)
	s.Require().NotNil(out.Winner)
	s.Equal(model.SideHuman, *out.Winner)
	s.Equal(model.MatchStateFinished, s.match.State)
	s.Equal("human", s.match.WinnerName())

	_, err := s.controller.ApplyGuess(s.match, model.SideAI, model.LetterGuess('E'))
	s.ErrorIs(err, model.ErrMatchOver)
}

func (s *ControllerSuite) TestRevealingEveryCellFindsWord() {
	humanMoves := []model.Guess{
		model.LetterGuess('D'),
		model.LetterGuess('O'),
		model.LetterGuess('G'),
		model.CoordinateGuess(pos(2, 1)),
		model.CoordinateGuess(pos(2, 2)),
	}
	// The AI only guesses letters it will hit, so it never runs out of misses
	aiMoves := []rune{'C', 'A', 'T', 'O', 'E'}
	for i, g := range humanMoves {
		s.apply(model.SideHuman, g)
		s.apply(model.SideAI, model.LetterGuess(aiMoves[i]))
	}

	out := s.apply(model.SideHuman, model.CoordinateGuess(pos(2, 3)))
	s.Equal([]string{"DOG"}, out.FoundWords)
	s.True(out.MatchOver)
	s.Require().NotNil(out.Winner)
	s.Equal(model.SideHuman, *out.Winner)
}

func (s *ControllerSuite) TestRunningOutOfMissesLoses() {
	s.apply(model.SideHuman, model.LetterGuess('Q'))
	s.apply(model.SideAI, model.LetterGuess('C'))
	s.apply(model.SideHuman, model.LetterGuess('X'))
	s.apply(model.SideAI, model.LetterGuess('A'))

	out := s.apply(model.SideHuman, model.LetterGuess('J'))
	s.True(out.MatchOver)
	s.Require().NotNil(s.match.Winner)
	s.Equal(model.SideAI, *s.match.Winner)
	s.Equal(0, s.match.Guesses(model.SideHuman).MissesRemaining())
}

func (s *ControllerSuite) TestTurnLimitIsADraw() {
	s.cfg.MaxTurns = 2
	s.cfg.MissLimit = 0
	controller := NewController(s.cfg, placement.New(testutil.NopLogger()), s.dict, s.clock, testutil.NopLogger())
	m := controller.NewMatchWithGrids("m", model.DifficultyEasy, s.match.Grid(model.SideHuman), s.match.Grid(model.SideAI))

	_, err := controller.ApplyGuess(m, model.SideHuman, model.LetterGuess('Z'))
	s.Require().NoError(err)
	out, err := controller.ApplyGuess(m, model.SideAI, model.LetterGuess('Z'))
	s.Require().NoError(err)
	s.True(out.MatchOver)
	s.Nil(out.Winner)
	s.Equal("", m.WinnerName())
}

func (s *ControllerSuite) TestTranscript() {
	s.apply(model.SideHuman, model.LetterGuess('D'))
	s.apply(model.SideAI, model.LetterGuess('Z'))

	s.Require().Len(s.match.Transcript, 2)
	s.Equal(model.TurnRecord{Turn: 1, Side: model.SideHuman, Guess: model.LetterGuess('D'), Hit: true}, s.match.Transcript[0])
	s.Equal(model.TurnRecord{Turn: 2, Side: model.SideAI, Guess: model.LetterGuess('Z'), Hit: false}, s.match.Transcript[1])
}

func (s *ControllerSuite) TestAbandon() {
	s.controller.Abandon(s.match)
	s.Equal(model.MatchStateAbandoned, s.match.State)

	_, err := s.controller.ApplyGuess(s.match, model.SideHuman, model.LetterGuess('E'))
	s.ErrorIs(err, model.ErrMatchOver)
}
