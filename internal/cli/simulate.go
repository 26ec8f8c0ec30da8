package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		matches     int
		concurrency int
		difficulty  string
		human       string
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a batch of matches between the AI and a scripted player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := model.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			a, err := requireApp(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(a.Clock.Now().UnixNano())
			}

			report, _, err := a.SimulationService.Run(cmd.Context(), simulation.Options{
				Matches:       matches,
				Concurrency:   concurrency,
				Difficulty:    d,
				HumanStrategy: human,
				Seed:          seed,
			})
			if err != nil {
				return err
			}

			NewOutput(opts.Output, cmd.OutOrStdout()).Print(report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&matches, "matches", "n", 100, "Number of matches to play")
	cmd.Flags().IntVar(&concurrency, "concurrency", simulation.DefaultConcurrency, "Matches played at once")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(model.DifficultyNormal), "AI starting preset: easy, normal, hard")
	cmd.Flags().StringVar(&human, "human", model.BotStrategyRandom, "Strategy standing in for the human: random, adaptive")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for match i is seed+i (default: current time)")

	return cmd
}
