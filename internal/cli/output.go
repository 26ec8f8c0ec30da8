package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/simulation"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *simulation.Report:
		o.printReport(v)
	case *model.MatchSummary:
		o.printSummary(v)
	case []*model.MatchSummary:
		o.printSummaryList(v)
	case SuggestResult:
		o.printSuggestion(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SuggestResult is the AI's decision for a described board
type SuggestResult struct {
	Guess      string          `json:"guess"`
	Kind       string          `json:"kind"`
	Skill      float64         `json:"skill"`
	FillRatio  float64         `json:"fill_ratio"`
	Density    string          `json:"density"`
	Candidates []WordCandidate `json:"candidates,omitempty"`
}

// WordCandidate is one fully determined word the AI considered
type WordCandidate struct {
	Word       string  `json:"word"`
	Confidence float64 `json:"confidence"`
}

func (o *Output) printReport(r *simulation.Report) {
	fmt.Fprintf(o.w, "Matches: %d\n", r.Matches)
	fmt.Fprintf(o.w, "AI wins: %d (%.1f%%)\n", r.AIWins, r.AIWinRate*100)
	fmt.Fprintf(o.w, "Human wins: %d\n", r.HumanWins)
	fmt.Fprintf(o.w, "No winner: %d\n", r.NoWinner)
	fmt.Fprintf(o.w, "Final skill: mean %.3f, stddev %.3f, median %.3f\n", r.MeanFinalSkill, r.StdDevFinalSkill, r.MedianFinalSkill)
	fmt.Fprintf(o.w, "Mean turns: %.1f\n", r.MeanTurns)
	fmt.Fprintf(o.w, "Skill changes: +%d / -%d\n", r.SkillIncreases, r.SkillDecreases)
}

func (o *Output) printSummary(s *model.MatchSummary) {
	winner := s.Winner
	if winner == "" {
		winner = "none"
	}
	fmt.Fprintf(o.w, "Match: %s\n", s.ID)
	fmt.Fprintf(o.w, "Played: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(o.w, "Difficulty: %s\n", s.Difficulty)
	fmt.Fprintf(o.w, "Players: %s (human) vs %s (ai)\n", model.BotStrategyDisplayName(s.HumanStrategy), model.BotStrategyDisplayName(s.AIStrategy))
	fmt.Fprintf(o.w, "Grid Size: %d\n", s.GridSize)
	fmt.Fprintf(o.w, "Winner: %s\n", winner)
	fmt.Fprintf(o.w, "Turns: %d\n", s.Turns)
	fmt.Fprintf(o.w, "Misses: human %d, ai %d\n", s.HumanMisses, s.AIMisses)
	fmt.Fprintf(o.w, "Skill: %.2f -> %.2f (+%d / -%d)\n", s.InitialSkill, s.FinalSkill, s.SkillIncreases, s.SkillDecreases)

	if len(s.SkillTrace) > 0 {
		trace := make([]string, len(s.SkillTrace))
		for i, v := range s.SkillTrace {
			trace[i] = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(o.w, "Trace: %s\n", strings.Join(trace, " "))
	}
}

func (o *Output) printSummaryList(list []*model.MatchSummary) {
	if len(list) == 0 {
		fmt.Fprintln(o.w, "No match summaries stored")
		return
	}
	fmt.Fprintf(o.w, "%-14s %-8s %-8s %-6s %6s %6s\n", "ID", "LEVEL", "HUMAN", "WINNER", "TURNS", "SKILL")
	for _, s := range list {
		winner := s.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Fprintf(o.w, "%-14s %-8s %-8s %-6s %6d %6.2f\n", s.ID, s.Difficulty, s.HumanStrategy, winner, s.Turns, s.FinalSkill)
	}
}

func (o *Output) printSuggestion(r SuggestResult) {
	fmt.Fprintf(o.w, "Guess: %s\n", r.Guess)
	fmt.Fprintf(o.w, "Skill: %.2f\n", r.Skill)
	fmt.Fprintf(o.w, "Fill: %.2f (%s)\n", r.FillRatio, r.Density)
	if len(r.Candidates) > 0 {
		fmt.Fprintln(o.w, "Word candidates:")
		for _, c := range r.Candidates {
			fmt.Fprintf(o.w, "  - %s (%.2f)\n", c.Word, c.Confidence)
		}
	}
}

// printView draws the guesser's view of the opponent grid
func (o *Output) printView(v *model.BoardView) {
	o.printGrid(v.Size, func(pos model.Position) string {
		cell := v.Cell(pos)
		switch cell.State {
		case model.CellMiss:
			return "x"
		case model.CellPartiallyKnown:
			return "?"
		case model.CellRevealed:
			return string(cell.Letter)
		default:
			return ""
		}
	})

	patterns := make([]string, len(v.Words))
	for i, w := range v.Words {
		var b strings.Builder
		for _, r := range w.Pattern {
			if r == 0 {
				b.WriteByte('_')
			} else {
				b.WriteRune(r)
			}
		}
		if w.Found {
			b.WriteString("*")
		}
		patterns[i] = b.String()
	}
	fmt.Fprintf(o.w, "Words: %s\n", strings.Join(patterns, "  "))
	fmt.Fprintf(o.w, "Letters tried: %s\n", letterList(v.GuessedLetters))
	if v.MissesRemaining >= 0 {
		fmt.Fprintf(o.w, "Misses left: %d\n", v.MissesRemaining)
	}
}

// printOwnGrid draws a hidden grid as its owner sees it, lowercasing
// letters the opponent has not found yet
func (o *Output) printOwnGrid(g *model.Grid) {
	o.printGrid(g.Size, func(pos model.Position) string {
		cell, err := g.Cell(pos)
		if err != nil {
			return ""
		}
		switch {
		case cell.State == model.CellMiss:
			return "x"
		case cell.IsEmpty():
			return ""
		case cell.State == model.CellRevealed:
			return string(cell.Letter)
		default:
			return strings.ToLower(string(cell.Letter))
		}
	})
}

func (o *Output) printGrid(size int, cellText func(model.Position) string) {
	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, " %c ", 'A'+col)
	}
	fmt.Fprintln(o.w)

	// Print top border
	fmt.Fprint(o.w, "   +")
	for col := 0; col < size; col++ {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, "%2d |", row+1)
		for col := 0; col < size; col++ {
			text := cellText(model.Position{Row: row, Col: col})
			if text == "" {
				fmt.Fprint(o.w, " . ")
			} else {
				fmt.Fprintf(o.w, " %s ", text)
			}
		}
		fmt.Fprintln(o.w, "|")
	}

	// Print bottom border
	fmt.Fprint(o.w, "   +")
	for col := 0; col < size; col++ {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")
}

func letterList(set map[rune]bool) string {
	var b strings.Builder
	for r := 'A'; r <= 'Z'; r++ {
		if set[r] {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
