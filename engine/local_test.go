package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gungi/searcher"
)

func TestLocalEngineRun(t *testing.T) {
	engine := NewLocalEngine(
		&searcher.AgentProfile{ID: 1, Personality: searcher.Blitz},
		&searcher.AgentProfile{ID: 2, Personality: searcher.Blitz},
	)

	winner, gameMetric, moveMetrics := engine.Run()

	require.Contains(t, []string{"", "Player1", "Player2"}, winner)
	require.Positive(t, gameMetric.TotalMoves)
	require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
	require.Equal(t, 1, gameMetric.StartingPlayer)
	require.Equal(t, winner, gameMetric.Winner)
	require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

	require.NotEmpty(t, moveMetrics)
	for i, metric := range moveMetrics {
		require.Equal(t, i+1, metric.Step, "steps must count accepted moves")
		require.Equal(t, i%2+1, metric.Player, "players must alternate")
		require.Positive(t, metric.Candidates, "a committed move implies candidates existed")
		require.LessOrEqual(t, metric.Captures, metric.Candidates)
		require.Equal(t, "Blitz", metric.Personality)
	}
}

func TestNewLocalEnginePanicsWithoutProfiles(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine(nil, &searcher.AgentProfile{Personality: searcher.Balanced})
	})
}
