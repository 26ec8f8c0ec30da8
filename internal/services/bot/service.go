package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Service creates and drives AI opponents
type Service struct {
	cfg    config.AIConfig
	words  WordMatcher
	logger zerolog.Logger
}

// NewService creates a new bot Service
func NewService(cfg config.AIConfig, words WordMatcher, logger zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		words:  words,
		logger: logger.With().Str("component", "bot-service").Logger(),
	}
}

// InitializeDifficulty creates a fresh adaptive opponent at a preset
func (s *Service) InitializeDifficulty(d model.Difficulty, rnd random.Random) (*AdaptiveOpponent, error) {
	preset, err := s.cfg.Preset(d)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Str("difficulty", string(d)).
		Float64("skill", preset.InitialSkill).
		Msg("opponent initialized")
	return NewAdaptiveOpponent(s.cfg, preset, s.words, rnd, s.logger), nil
}

// NewStrategy creates a strategy by name; d only matters for adaptive play
func (s *Service) NewStrategy(name string, d model.Difficulty, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyAdaptive:
		return s.InitializeDifficulty(d, rnd)
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// DecideGuess returns the opponent's next guess for view
func (s *Service) DecideGuess(opp *AdaptiveOpponent, view *model.BoardView) (model.Guess, error) {
	return opp.DecideGuess(view)
}

// ReportOutcome feeds back the result of the opponent's own guess
func (s *Service) ReportOutcome(opp *AdaptiveOpponent, guess model.Guess, hit bool) {
	opp.ReportOutcome(guess, hit)
}

// ReportOpponentOutcome feeds back the human's guess against the AI's grid
func (s *Service) ReportOpponentOutcome(opp *AdaptiveOpponent, hit bool) {
	opp.ReportOpponentOutcome(hit)
}

// ThinkTime returns a presentation delay drawn uniformly from the configured range
func (s *Service) ThinkTime(rnd random.Random) time.Duration {
	lo := s.cfg.ThinkTime.Min()
	hi := s.cfg.ThinkTime.Max()
	return time.Duration(random.Uniform(rnd, float64(lo), float64(hi)))
}
