package simulation

import (
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
	"github.com/mcoot/hiddenwords-go/internal/services/match"
)

// Tracker follows the AI's skill through one match and builds its summary
type Tracker struct {
	ai      *bot.AdaptiveOpponent
	initial float64
	trace   []float64
}

// NewTracker starts tracking ai from its current skill
func NewTracker(ai *bot.AdaptiveOpponent) *Tracker {
	skill := ai.Skill()
	return &Tracker{ai: ai, initial: skill, trace: []float64{skill}}
}

// Observe records the AI's skill after an applied guess. Call it once the
// outcome has been reported to both players.
func (t *Tracker) Observe(m *match.Match, out match.Outcome) {
	skill := t.ai.Skill()
	if out.Side == model.SideHuman {
		t.trace = append(t.trace, skill)
	}
	if n := len(m.Transcript); n > 0 {
		m.Transcript[n-1].SkillAfter = skill
	}
}

// Trace returns the skill before the first guess and after every human guess
func (t *Tracker) Trace() []float64 {
	return t.trace
}

// Summary builds the record of m once it is over
func (t *Tracker) Summary(m *match.Match, humanStrategy string) model.MatchSummary {
	state := t.ai.Difficulty()
	return model.MatchSummary{
		ID:             m.ID,
		Difficulty:     m.Difficulty,
		HumanStrategy:  humanStrategy,
		AIStrategy:     t.ai.Name(),
		GridSize:       m.Grid(model.SideAI).Size,
		Winner:         m.WinnerName(),
		Turns:          m.Turn,
		HumanMisses:    m.Guesses(model.SideHuman).Misses,
		AIMisses:       m.Guesses(model.SideAI).Misses,
		InitialSkill:   t.initial,
		FinalSkill:     state.Skill,
		SkillTrace:     t.trace,
		SkillIncreases: state.Increases,
		SkillDecreases: state.Decreases,
		CreatedAt:      m.CreatedAt,
	}
}
