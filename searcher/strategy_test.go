package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gungi/game"
)

func TestParsePersonality(t *testing.T) {
	for _, p := range []Personality{Aggressive, Defensive, Balanced, Tactical, Blitz} {
		got, ok := ParsePersonality(p.String())
		require.True(t, ok)
		require.Equal(t, p, got)
	}

	got, ok := ParsePersonality("Reckless")
	require.False(t, ok)
	require.Equal(t, Balanced, got, "unknown names fall back to Balanced")
}

func TestClampedSkill(t *testing.T) {
	require.Equal(t, MinSkillLevel, (&AgentProfile{SkillLevel: 0}).ClampedSkill())
	require.Equal(t, MaxSkillLevel, (&AgentProfile{SkillLevel: 99999}).ClampedSkill())
	require.Equal(t, 2000, (&AgentProfile{SkillLevel: 2000}).ClampedSkill())
}

func TestStrategyFor(t *testing.T) {
	require.Equal(t, "aggressive", StrategyFor(Aggressive).Name())
	require.Equal(t, "defensive", StrategyFor(Defensive).Name())
	require.Equal(t, "balanced", StrategyFor(Balanced).Name())
	require.Equal(t, "tactical", StrategyFor(Tactical).Name())
	require.Equal(t, "blitz", StrategyFor(Blitz).Name())
	require.Equal(t, "balanced", StrategyFor(Personality(99)).Name(),
		"unknown personalities fall back to the baseline")
}

func TestCalculateMoveReturnsLegalMoves(t *testing.T) {
	for _, p := range []Personality{Aggressive, Defensive, Balanced, Tactical, Blitz} {
		t.Run(p.String(), func(t *testing.T) {
			gs := game.NewStandardGame(time.Time{})
			profile := &AgentProfile{Personality: p, SkillLevel: MinSkillLevel}

			move, err := CalculateMove(profile, gs)
			require.NoError(t, err)
			require.Equal(t, 1, move.Player)
			require.NoError(t, game.Validate(gs.Reg, gs.Board, move, gs.Board.CurrentPlayer),
				"every personality must produce a fully legal move")
		})
	}
}

func TestAggressivePrefersCaptures(t *testing.T) {
	gs := game.NewStandardGame(time.Time{})
	profile := &AgentProfile{Personality: Aggressive}

	move, err := CalculateMove(profile, gs)
	require.NoError(t, err)
	require.Equal(t, game.CaptureMove, move.MoveType,
		"with captures on the board the aggressive agent must take one")
	require.NotEqual(t, game.NoEntity, move.CaptureEntity)
}

func TestDefensiveStaysInOwnHalf(t *testing.T) {
	gs := game.NewStandardGame(time.Time{})
	profile := &AgentProfile{Personality: Defensive}

	move, err := CalculateMove(profile, gs)
	require.NoError(t, err)
	require.False(t, inOpponentHalf(move.Player, move.To),
		"own-half moves exist in the opening, so the defensive agent must pick one")
}

func TestBlitzMatchesBaseline(t *testing.T) {
	gs := game.NewStandardGame(time.Time{})

	blitzMove, err := CalculateMove(&AgentProfile{Personality: Blitz}, gs)
	require.NoError(t, err)

	baseline, err := CalculateMove(&AgentProfile{Personality: Balanced}, gs)
	require.NoError(t, err)

	require.Equal(t, baseline, blitzMove,
		"the shortcut must agree with the full enumeration on the first candidate")
}

func TestNoLegalMoves(t *testing.T) {
	gs := game.NewStandardGame(time.Time{})
	gs.Reg.Each(func(_ game.EntityID, pc *game.Piece, pos *game.Position) {
		if pc.Owner == 1 {
			pc.Captured = true
			pos.IsActive = false
		}
	})

	for _, p := range []Personality{Aggressive, Defensive, Balanced, Tactical, Blitz} {
		t.Run(p.String(), func(t *testing.T) {
			_, err := CalculateMove(&AgentProfile{Personality: p}, gs)
			require.ErrorIs(t, err, game.ErrNoLegalMoves)
		})
	}
}

func TestTacticalBudget(t *testing.T) {
	require.Equal(t, 500*time.Millisecond, tacticalBudget(&AgentProfile{SkillLevel: 1000}))
	require.Equal(t, 1500*time.Millisecond, tacticalBudget(&AgentProfile{SkillLevel: 3000}))
	require.Equal(t, 500*time.Millisecond, tacticalBudget(&AgentProfile{SkillLevel: 0}),
		"skill is clamped before the budget is computed")
	require.Equal(t, 1500*time.Millisecond, tacticalBudget(&AgentProfile{SkillLevel: 99999}))
}
