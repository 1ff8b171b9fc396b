package searcher

import "fmt"

// Personality names a heuristic profile governing move selection.
type Personality int

const (
	Aggressive Personality = iota
	Defensive
	Balanced
	Tactical
	Blitz
)

func (p Personality) String() string {
	switch p {
	case Aggressive:
		return "Aggressive"
	case Defensive:
		return "Defensive"
	case Balanced:
		return "Balanced"
	case Tactical:
		return "Tactical"
	case Blitz:
		return "Blitz"
	default:
		return fmt.Sprintf("personality(%d)", int(p))
	}
}

// ParsePersonality maps a personality name back to its value.
func ParsePersonality(s string) (Personality, bool) {
	switch s {
	case "Aggressive":
		return Aggressive, true
	case "Defensive":
		return Defensive, true
	case "Balanced":
		return Balanced, true
	case "Tactical":
		return Tactical, true
	case "Blitz":
		return Blitz, true
	default:
		return Balanced, false
	}
}

// Skill bounds for agent profiles.
const (
	MinSkillLevel = 1000
	MaxSkillLevel = 3000
)

// AgentProfile describes one AI agent. The engine treats it as read-only
// input to move selection; the surrounding session layer owns it and its
// running statistics.
type AgentProfile struct {
	ID           uint64
	Personality  Personality
	SkillLevel   int // Bounded to [MinSkillLevel, MaxSkillLevel]
	GamesPlayed  int
	Wins         int
	Losses       int
	Draws        int
	LearningRate float64
}

// ClampedSkill returns the profile's skill bounded to the legal range.
func (a *AgentProfile) ClampedSkill() int {
	if a.SkillLevel < MinSkillLevel {
		return MinSkillLevel
	}
	if a.SkillLevel > MaxSkillLevel {
		return MaxSkillLevel
	}
	return a.SkillLevel
}
