package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Side identifies one of the two players in a match
type Side int

const (
	SideHuman Side = iota // The player the AI adapts to
	SideAI
)

func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "human"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideAI {
		return SideHuman
	}
	return SideAI
}

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateInProgress MatchState = "in_progress"
	MatchStateFinished   MatchState = "finished"
	MatchStateAbandoned  MatchState = "abandoned"
)

// TurnRecord is one resolved guess in a match transcript
type TurnRecord struct {
	Turn       int
	Side       Side
	Guess      Guess
	Hit        bool
	SkillAfter float64
}

// MatchSummary is a lightweight record of a completed match
type MatchSummary struct {
	ID             MatchID
	Difficulty     Difficulty
	HumanStrategy  string
	AIStrategy     string
	GridSize       int
	Winner         string // Side name; empty if abandoned or drawn
	Turns          int
	HumanMisses    int
	AIMisses       int
	InitialSkill   float64
	FinalSkill     float64
	SkillTrace     []float64
	SkillIncreases int
	SkillDecreases int
	CreatedAt      time.Time
}
