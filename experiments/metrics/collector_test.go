package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectorAddGame(t *testing.T) {
	c := NewCollector()

	first := c.AddGame(1, 2, GameMetric{Winner: "Player1"}, []MoveMetric{
		{Step: 1, Player: 1, DecisionMetric: DecisionMetric{Personality: "Blitz", Candidates: 5}},
		{Step: 2, Player: 2, DecisionMetric: DecisionMetric{Personality: "Blitz", Candidates: 7}},
	})
	second := c.AddGame(2, 1, GameMetric{Winner: "Player2", Duration: time.Second}, nil)

	require.Equal(t, 1, first)
	require.Equal(t, 2, second)

	games, moves := c.Records()
	require.Len(t, games, 2)
	require.Len(t, moves, 2)
	require.Equal(t, "Player1", games[0].Winner)
	require.Equal(t, first, moves[0].Game, "moves must be tied to their game id")
	require.Equal(t, first, moves[1].Game)
}

func TestCollectorConcurrentAdds(t *testing.T) {
	c := NewCollector()

	const games = 32
	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddGame(1, 2, GameMetric{}, []MoveMetric{{Step: 1, Player: 1}})
		}()
	}
	wg.Wait()

	gotGames, gotMoves := c.Records()
	require.Len(t, gotGames, games)
	require.Len(t, gotMoves, games)

	seen := make(map[int]bool, games)
	for _, g := range gotGames {
		require.False(t, seen[g.ID], "game ids must be unique")
		seen[g.ID] = true
	}
}

func TestRecordsReturnsCopies(t *testing.T) {
	c := NewCollector()
	c.AddGame(1, 2, GameMetric{Winner: "Player1"}, nil)

	games, _ := c.Records()
	games[0].Winner = "Player2"

	again, _ := c.Records()
	require.Equal(t, "Player1", again[0].Winner, "callers must not be able to mutate collected records")
}
