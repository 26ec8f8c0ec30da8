package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/factory"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
	"github.com/mcoot/hiddenwords-go/internal/services/match"
	"github.com/mcoot/hiddenwords-go/internal/services/simulation"
)

func newPlayCmd() *cobra.Command {
	var (
		difficulty string
		seed       uint64
		noDelay    bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against the AI",
		Long: `Play a match in the terminal. On your turn type a letter, a cell like B3,
or a whole word ("word cat" forces a word guess). Type "quit" to give up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := model.ParseDifficulty(difficulty)
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

			s := &playSession{
				app:     a,
				in:      bufio.NewScanner(cmd.InOrStdin()),
				w:       cmd.OutOrStdout(),
				out:     NewOutput("text", cmd.OutOrStdout()),
				rnd:     rnd,
				noDelay: noDelay,
			}
			return s.run(cmd, d)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(model.DifficultyNormal), "AI starting preset: easy, normal, hard")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed the grids and the AI's choices")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the AI's think time")

	return cmd
}

type playSession struct {
	app     *factory.App
	in      *bufio.Scanner
	w       io.Writer
	out     *Output
	rnd     random.Random
	noDelay bool

	match   *match.Match
	ai      *bot.AdaptiveOpponent
	tracker *simulation.Tracker
}

func (s *playSession) run(cmd *cobra.Command, d model.Difficulty) error {
	ctx := cmd.Context()

	m, err := s.app.MatchController.NewMatch(d, s.rnd)
	if err != nil {
		return err
	}
	ai, err := s.app.BotService.InitializeDifficulty(d, s.rnd)
	if err != nil {
		return err
	}
	s.match, s.ai, s.tracker = m, ai, simulation.NewTracker(ai)

	fmt.Fprintf(s.w, "Match %s (%s). You guess first.\n", m.ID, d)

	for !m.IsOver() {
		if ctx.Err() != nil {
			s.app.MatchController.Abandon(m)
			break
		}

		var keepGoing bool
		if m.Current == model.SideHuman {
			keepGoing, err = s.humanTurn()
		} else {
			keepGoing, err = s.aiTurn(cmd)
		}
		if err != nil {
			return err
		}
		if !keepGoing {
			s.app.MatchController.Abandon(m)
			break
		}
	}

	s.finish()

	summary := s.tracker.Summary(m, "human")
	if err := s.app.Storage.SaveMatchSummary(ctx, &summary); err != nil {
		return fmt.Errorf("failed to save match summary: %w", err)
	}
	fmt.Fprintf(s.w, "Summary saved as %s\n", summary.ID)
	return nil
}

// humanTurn prompts until a legal guess is applied. It returns false if the
// player quits or input ends.
func (s *playSession) humanTurn() (bool, error) {
	fmt.Fprintln(s.w, "\nOpponent grid:")
	s.out.printView(s.match.ViewFor(model.SideHuman))

	for {
		fmt.Fprint(s.w, "Your guess: ")
		if !s.in.Scan() {
			return false, s.in.Err()
		}
		text := strings.TrimSpace(s.in.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "quit") {
			return false, nil
		}

		guess, err := parseGuess(text)
		if err != nil {
			s.out.PrintError(err)
			continue
		}
		res, err := s.app.MatchController.ApplyGuess(s.match, model.SideHuman, guess)
		if errors.Is(err, model.ErrStateRegression) {
			return false, err
		}
		if err != nil {
			s.out.PrintError(err)
			continue
		}

		s.app.BotService.ReportOpponentOutcome(s.ai, res.Hit)
		s.tracker.Observe(s.match, res)
		s.describe("You", res)
		return true, nil
	}
}

func (s *playSession) aiTurn(cmd *cobra.Command) (bool, error) {
	if !s.noDelay {
		fmt.Fprint(s.w, "\nAI is thinking...")
		select {
		case <-cmd.Context().Done():
			return false, nil
		case <-time.After(s.app.BotService.ThinkTime(s.rnd)):
		}
		fmt.Fprintln(s.w)
	}

	guess, err := s.app.BotService.DecideGuess(s.ai, s.match.ViewFor(model.SideAI))
	if errors.Is(err, model.ErrNoGuessAvailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	res, err := s.app.MatchController.ApplyGuess(s.match, model.SideAI, guess)
	if err != nil {
		return false, err
	}

	s.app.BotService.ReportOutcome(s.ai, guess, res.Hit)
	s.tracker.Observe(s.match, res)
	s.describe("AI", res)
	fmt.Fprintln(s.w, "Your grid:")
	s.out.printOwnGrid(s.match.Grid(model.SideHuman))
	return true, nil
}

func (s *playSession) describe(who string, res match.Outcome) {
	result := "miss"
	if res.Hit {
		result = "hit"
	}
	fmt.Fprintf(s.w, "%s guessed %s: %s\n", who, res.Guess, result)
	for _, w := range res.FoundWords {
		fmt.Fprintf(s.w, "%s found %s!\n", who, w)
	}
}

func (s *playSession) finish() {
	fmt.Fprintln(s.w)
	switch {
	case s.match.State == model.MatchStateAbandoned:
		fmt.Fprintln(s.w, "Match abandoned.")
	case s.match.Winner == nil:
		fmt.Fprintln(s.w, "Turn limit reached. It's a draw.")
	case *s.match.Winner == model.SideHuman:
		fmt.Fprintln(s.w, "You win!")
	default:
		fmt.Fprintln(s.w, "The AI wins.")
	}

	grid := s.match.Grid(model.SideAI)
	words := make([]string, 0, grid.WordCount())
	for i := range grid.WordCount() {
		if w, err := grid.Word(i); err == nil {
			words = append(words, w.Text)
		}
	}
	fmt.Fprintf(s.w, "The AI hid: %s\n", strings.Join(words, ", "))
	fmt.Fprintf(s.w, "AI skill finished at %.2f\n", s.ai.Skill())
}
