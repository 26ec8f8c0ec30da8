package simulation

import (
	"time"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/mocks"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
	"github.com/mcoot/hiddenwords-go/internal/services/match"
	"github.com/mcoot/hiddenwords-go/internal/services/placement"
	"github.com/mcoot/hiddenwords-go/internal/testutil"
)

func (s *SimulationSuite) TestTrackerRecordsHumanTurns() {
	logger := testutil.NopLogger()
	cfg := config.Default()
	human, err := model.NewGrid(6)
	s.Require().NoError(err)
	_, ok := placement.TryPlaceWord(human, "CAT", model.Position{}, model.DirRight)
	s.Require().True(ok)
	ai, err := model.NewGrid(6)
	s.Require().NoError(err)
	_, ok = placement.TryPlaceWord(ai, "DOG", model.Position{}, model.DirDown)
	s.Require().True(ok)

	clk := mocks.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	controller := match.NewController(cfg.Match, placement.New(logger), nil, clk, logger)
	m := controller.NewMatchWithGrids("T1", model.DifficultyNormal, human, ai)

	opp, err := bot.NewService(cfg.AI, nil, logger).InitializeDifficulty(model.DifficultyNormal, random.NewSeeded(1))
	s.Require().NoError(err)
	tracker := NewTracker(opp)

	play := func(side model.Side, g model.Guess) {
		out, err := controller.ApplyGuess(m, side, g)
		s.Require().NoError(err)
		if side == model.SideHuman {
			opp.ReportOpponentOutcome(out.Hit)
		}
		tracker.Observe(m, out)
	}

	// Three human hits lift a normal opponent one step
	play(model.SideHuman, model.LetterGuess('D'))
	play(model.SideAI, model.LetterGuess('Z'))
	play(model.SideHuman, model.LetterGuess('O'))
	play(model.SideAI, model.LetterGuess('Q'))
	play(model.SideHuman, model.LetterGuess('G'))

	skill := cfg.AI.Presets.Normal.InitialSkill
	raised := skill + cfg.AI.Skill.Step
	s.Require().Len(tracker.Trace(), 4)
	s.InDelta(skill, tracker.Trace()[0], 1e-9)
	s.InDelta(raised, tracker.Trace()[3], 1e-9)
	s.InDelta(raised, m.Transcript[4].SkillAfter, 1e-9)
	s.InDelta(skill, m.Transcript[1].SkillAfter, 1e-9)

	controller.Abandon(m)
	summary := tracker.Summary(m, "scripted")
	s.Equal(model.MatchID("T1"), summary.ID)
	s.Equal("scripted", summary.HumanStrategy)
	s.Equal(5, summary.Turns)
	s.Equal(2, summary.AIMisses)
	s.Equal(0, summary.HumanMisses)
	s.Equal(1, summary.SkillIncreases)
	s.Empty(summary.Winner)
	s.InDelta(raised, summary.FinalSkill, 1e-9)
}
