package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/analyzer"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
)

func newSuggestCmd() *cobra.Command {
	var (
		spec       boardSpec
		difficulty string
		skill      float64
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI for its next guess on a described board",
		Long: `Describe what is known about an opponent grid and print the guess the
AI would make. Cells use letter-column, number-row notation, e.g. B3.

  hiddenwords suggest --words "C?T,????" --hits B2,B3 --misses A1 --guessed QZ`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := model.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			preset, err := appCfg.AI.Preset(d)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("skill") {
				preset.InitialSkill = skill
			}
			if spec.Size == 0 {
				spec.Size = appCfg.Match.GridSize
			}

			view, err := buildView(spec)
			if err != nil {
				return err
			}

			a, err := requireApp(cmd)
			if err != nil {
				return err
			}
			var rnd random.Random = a.Random
			if cmd.Flags().Changed("seed") {
				rnd = random.NewSeeded(seed)
			}

			ai := bot.NewAdaptiveOpponent(appCfg.AI, preset, a.DictionaryService, rnd, logger)
			guess, err := ai.DecideGuess(view)
			if err != nil {
				return err
			}

			fill := bot.FillRatio(view)
			result := SuggestResult{
				Guess:     guess.String(),
				Kind:      guess.Kind.String(),
				Skill:     ai.Skill(),
				FillRatio: fill,
				Density:   analyzer.DensityCategory(fill).String(),
				Candidates: lo.Map(ai.WordCandidates(view), func(c bot.WordCandidate, _ int) WordCandidate {
					return WordCandidate{Word: c.Word, Confidence: c.Confidence}
				}),
			}

			NewOutput(opts.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&spec.Size, "size", 0, "Grid size (default: configured grid size)")
	f.StringSliceVar(&spec.Words, "words", nil, "Word patterns with ? for unknown letters, e.g. C?T,????")
	f.StringSliceVar(&spec.Hits, "hits", nil, "Cells known to hold an unknown letter")
	f.StringSliceVar(&spec.Revealed, "revealed", nil, "Revealed cells with their letter, e.g. B2=A")
	f.StringSliceVar(&spec.Misses, "misses", nil, "Cells known to be empty")
	f.StringVar(&spec.Guessed, "guessed", "", "Letters already tried that are not in any pattern")
	f.StringSliceVar(&spec.TriedWords, "tried-words", nil, "Whole words already guessed")
	f.IntVar(&spec.MissesLeft, "misses-left", -1, "Misses the AI has left, -1 for unlimited")
	f.StringVarP(&difficulty, "difficulty", "d", string(model.DifficultyNormal), "AI preset: easy, normal, hard")
	f.Float64Var(&skill, "skill", 0, "Override the preset's starting skill (0-1)")
	f.Uint64Var(&seed, "seed", 0, "Seed the AI's random choices")

	return cmd
}
