package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
	"github.com/mcoot/hiddenwords-go/internal/services/match"
	"github.com/mcoot/hiddenwords-go/internal/storage"
)

// DefaultConcurrency is used when Options.Concurrency is not positive
const DefaultConcurrency = 4

// Options configures a batch of simulated matches
type Options struct {
	Matches       int
	Concurrency   int
	Difficulty    model.Difficulty
	HumanStrategy string // Strategy standing in for the human side
	Seed          uint64 // Match i is seeded with Seed+i
}

// Service plays AI-vs-strategy matches without a human at the keyboard
type Service struct {
	matches *match.Controller
	bots    *bot.Service
	storage storage.Storage
	logger  zerolog.Logger
}

// New creates a new simulation Service
func New(matches *match.Controller, bots *bot.Service, storage storage.Storage, logger zerolog.Logger) *Service {
	return &Service{
		matches: matches,
		bots:    bots,
		storage: storage,
		logger:  logger.With().Str("component", "simulation").Logger(),
	}
}

// Run plays opts.Matches matches concurrently, saves a summary of each and
// returns the aggregate report. Summaries are ordered by match index.
func (s *Service) Run(ctx context.Context, opts Options) (*Report, []model.MatchSummary, error) {
	if opts.Matches <= 0 {
		return nil, nil, fmt.Errorf("%w: match count must be positive", model.ErrInvalidConfig)
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	s.logger.Info().
		Int("matches", opts.Matches).
		Int("concurrency", limit).
		Str("difficulty", string(opts.Difficulty)).
		Str("human_strategy", opts.HumanStrategy).
		Uint64("seed", opts.Seed).
		Msg("starting simulation")

	summaries := make([]model.MatchSummary, opts.Matches)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range opts.Matches {
		g.Go(func() error {
			rnd := random.NewSeeded(opts.Seed + uint64(i))
			summary, err := s.PlayMatch(gctx, opts.Difficulty, opts.HumanStrategy, rnd)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			if err := s.storage.SaveMatchSummary(gctx, &summary); err != nil {
				return fmt.Errorf("failed to save match %s: %w", summary.ID, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("simulation failed")
		return nil, nil, err
	}

	report := Summarize(summaries)
	s.logger.Info().
		Float64("ai_win_rate", report.AIWinRate).
		Float64("mean_final_skill", report.MeanFinalSkill).
		Msg("simulation finished")
	return &report, summaries, nil
}

// PlayMatch plays one match to completion. The human side is driven by the
// named strategy and the AI side by a fresh adaptive opponent.
func (s *Service) PlayMatch(ctx context.Context, d model.Difficulty, humanStrategy string, rnd random.Random) (model.MatchSummary, error) {
	m, err := s.matches.NewMatch(d, rnd)
	if err != nil {
		return model.MatchSummary{}, err
	}
	ai, err := s.bots.InitializeDifficulty(d, rnd)
	if err != nil {
		return model.MatchSummary{}, err
	}
	human, err := s.bots.NewStrategy(humanStrategy, d, rnd)
	if err != nil {
		return model.MatchSummary{}, err
	}

	players := [2]bot.Strategy{model.SideHuman: human, model.SideAI: ai}
	tracker := NewTracker(ai)

	for !m.IsOver() {
		if err := ctx.Err(); err != nil {
			s.matches.Abandon(m)
			return model.MatchSummary{}, err
		}

		side := m.Current
		player := players[side]
		guess, err := player.DecideGuess(m.ViewFor(side))
		if errors.Is(err, model.ErrNoGuessAvailable) {
			s.logger.Warn().Str("match_id", string(m.ID)).Str("side", side.String()).Msg("no guess available")
			s.matches.Abandon(m)
			break
		}
		if err != nil {
			return model.MatchSummary{}, err
		}

		out, err := s.matches.ApplyGuess(m, side, guess)
		if err != nil {
			return model.MatchSummary{}, fmt.Errorf("%s guessed %s: %w", side, guess, err)
		}
		player.ReportOutcome(guess, out.Hit)
		players[side.Opponent()].ReportOpponentOutcome(out.Hit)
		tracker.Observe(m, out)
	}

	return tracker.Summary(m, human.Name()), nil
}
