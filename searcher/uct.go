package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"gungi/game"
)

// MaxCutoff effectively disables the rollout depth cutoff.
const MaxCutoff = 1 << 30

type Option func(u *UCT)

// UCT is a time- or iteration-bounded parallel tree search with virtual
// loss. It backs the Tactical personality; the caller owns the latency
// budget and passes it in as a duration.
type UCT struct {
	goroutines int
	iterations int
	duration   time.Duration
	cutoff     int
	evaluate   game.Evaluate
	seed       uint64
}

func WithGoroutines(goroutines int) Option {
	return func(u *UCT) {
		if goroutines > 0 {
			u.goroutines = goroutines
		}
	}
}

func WithIterations(iterations int) Option {
	return func(u *UCT) {
		if iterations > 0 {
			u.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(u *UCT) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *UCT) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluation(evaluate game.Evaluate) Option {
	return func(u *UCT) {
		if evaluate != nil {
			u.evaluate = evaluate
		}
	}
}

// WithSeed fixes the rollout randomness. With one goroutine the whole
// search becomes reproducible; with several, each worker derives its own
// stream from the seed.
func WithSeed(seed uint64) Option {
	return func(u *UCT) {
		u.seed = seed
	}
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{ // Default values
		goroutines: 1,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateMaterial,
		seed:       uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(u)
	}
	if u.iterations <= 0 && u.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	return u
}

// FindNextMove searches from state and returns the most visited root move.
func (u *UCT) FindNextMove(state game.State) game.Move {
	root := newDecision(nil, state)
	if u.iterations > 0 {
		u.iterate(root, state)
	} else {
		u.countdown(root, state)
	}
	return root.findBestMove()
}

func (u *UCT) iterate(root Node, state game.State) {
	task := make(chan any, u.iterations)
	for i := 0; i < u.iterations; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < u.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(u.seed + uint64(worker)))
			for range task {
				u.simulate(root, state, rng)
			}
		}(i)
	}

	wg.Wait()
}

func (u *UCT) countdown(root Node, state game.State) {
	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < u.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(u.seed + uint64(worker)))
			for time.Since(start) < u.duration {
				u.simulate(root, state, rng)
			}
		}(i)
	}

	wg.Wait()
}

func (u *UCT) simulate(root Node, state game.State, rng *rand.Rand) {
	newNode, newState := selectThenExpand(root, state)
	reward := u.rollout(newState, rng)
	backup(newNode, reward)
}

func selectThenExpand(root Node, state game.State) (Node, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && child != parent {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game ends or the depth cutoff is
// reached, then converts the outcome into a per-player reward function.
func (u *UCT) rollout(state game.State, rng *rand.Rand) func(string) float64 {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 && state.Winner() == "" && depth < u.cutoff {
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if winner := state.Winner(); winner != "" {
		return rewarder(winner)
	}
	if len(moves) == 0 { // Stalemate counts as a loss for the stuck player
		stuck := state.Player()
		return func(p string) float64 {
			if p == stuck {
				return Loss
			}
			return Win
		}
	}

	// At the cutoff, fall back to the evaluation function
	return scorer(state.Player(), u.evaluate(state))
}

func backup(newNode Node, reward func(string) float64) {
	node := newNode
	for node != nil {
		node = node.Backup(reward)
	}
}
