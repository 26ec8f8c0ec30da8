package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

func newSummariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summaries",
		Short: "Stored match summary commands",
	}

	cmd.AddCommand(newSummariesListCmd())
	cmd.AddCommand(newSummariesGetCmd())
	cmd.AddCommand(newSummariesDeleteCmd())

	return cmd
}

func newSummariesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored match summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp(cmd)
			if err != nil {
				return err
			}

			list, err := a.Storage.ListMatchSummaries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			NewOutput(opts.Output, cmd.OutOrStdout()).Print(list)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum summaries to show, 0 for all")

	return cmd
}

func newSummariesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one match summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp(cmd)
			if err != nil {
				return err
			}

			summary, err := a.Storage.GetMatchSummary(cmd.Context(), model.MatchID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(opts.Output, cmd.OutOrStdout()).Print(summary)
			return nil
		},
	}
}

func newSummariesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored match summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp(cmd)
			if err != nil {
				return err
			}

			if err := a.Storage.DeleteMatchSummary(cmd.Context(), model.MatchID(args[0])); err != nil {
				return err
			}

			NewOutput(opts.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Deleted %s", args[0]))
			return nil
		},
	}
}
