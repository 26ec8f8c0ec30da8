package simulation

import (
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Report aggregates a batch of match summaries
type Report struct {
	Matches   int
	AIWins    int
	HumanWins int
	NoWinner  int
	AIWinRate float64

	MeanFinalSkill   float64
	StdDevFinalSkill float64
	MedianFinalSkill float64
	MeanTurns        float64

	SkillIncreases int
	SkillDecreases int
}

// Summarize computes the aggregate report for summaries
func Summarize(summaries []model.MatchSummary) Report {
	r := Report{Matches: len(summaries)}
	if len(summaries) == 0 {
		return r
	}

	winners := lo.CountValuesBy(summaries, func(s model.MatchSummary) string { return s.Winner })
	r.AIWins = winners[model.SideAI.String()]
	r.HumanWins = winners[model.SideHuman.String()]
	r.NoWinner = r.Matches - r.AIWins - r.HumanWins
	r.AIWinRate = float64(r.AIWins) / float64(r.Matches)

	finals := lo.Map(summaries, func(s model.MatchSummary, _ int) float64 { return s.FinalSkill })
	turns := lo.Map(summaries, func(s model.MatchSummary, _ int) float64 { return float64(s.Turns) })

	if len(finals) > 1 {
		r.MeanFinalSkill, r.StdDevFinalSkill = stat.MeanStdDev(finals, nil)
	} else {
		r.MeanFinalSkill = finals[0]
	}
	sorted := slices.Clone(finals)
	slices.Sort(sorted)
	r.MedianFinalSkill = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	r.MeanTurns = stat.Mean(turns, nil)

	r.SkillIncreases = lo.SumBy(summaries, func(s model.MatchSummary) int { return s.SkillIncreases })
	r.SkillDecreases = lo.SumBy(summaries, func(s model.MatchSummary) int { return s.SkillDecreases })
	return r
}
