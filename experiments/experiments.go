// Package experiments runs self-play matchups between AI personalities
// and exports the results as CSV files and SQLite records.
package experiments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gungi/engine"
	"gungi/experiments/metrics"
	"gungi/searcher"
	"gungi/store"
)

const (
	NumGames     = 20 // Per match up
	DefaultSkill = 2000
)

var personalityConfigs = []metrics.AgentConfig{
	{ID: 1, Personality: searcher.Aggressive.String(), SkillLevel: DefaultSkill},
	{ID: 2, Personality: searcher.Defensive.String(), SkillLevel: DefaultSkill},
	{ID: 3, Personality: searcher.Balanced.String(), SkillLevel: DefaultSkill},
	{ID: 4, Personality: searcher.Tactical.String(), SkillLevel: DefaultSkill},
	{ID: 5, Personality: searcher.Blitz.String(), SkillLevel: DefaultSkill},
}

// RunPersonalityTournament plays every personality against every other and
// records the outcomes.
func RunPersonalityTournament(dbPath string) {
	matchUps := [][]metrics.AgentConfig{}
	for i, config1 := range personalityConfigs {
		for _, config2 := range personalityConfigs[i+1:] {
			matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
		}
	}

	runExperiment("personality_tournament", dbPath, personalityConfigs, matchUps)
}

// RunSkillLadder pits Tactical agents of increasing skill against the
// Balanced baseline.
func RunSkillLadder(dbPath string) {
	baseline := metrics.AgentConfig{ID: 0, Personality: searcher.Balanced.String(), SkillLevel: DefaultSkill}
	ladder := []metrics.AgentConfig{
		{ID: 1, Personality: searcher.Tactical.String(), SkillLevel: 1000},
		{ID: 2, Personality: searcher.Tactical.String(), SkillLevel: 1500},
		{ID: 3, Personality: searcher.Tactical.String(), SkillLevel: 2000},
		{ID: 4, Personality: searcher.Tactical.String(), SkillLevel: 2500},
		{ID: 5, Personality: searcher.Tactical.String(), SkillLevel: 3000},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range ladder {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("skill_ladder", dbPath, append(ladder, baseline), matchUps)
}

func runExperiment(name, dbPath string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	collector := metrics.NewCollector()

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(config1, config2)
			collector.AddGame(config1.ID, config2.ID, gameMetric, moveMetrics)

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords, moveRecords := collector.Records()
	exportCSV(name, configs, gameRecords, moveRecords)
	exportStore(name, dbPath, configs, gameRecords, moveRecords)
}

func exportCSV(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored CSV records")
}

func exportStore(name, dbPath string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	ctx := context.Background()
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		log.Warn().Err(err).Msg("skipping sqlite export")
		return
	}
	defer db.Close()

	runID := fmt.Sprintf("%s-%s", name, uuid.NewString())
	if err := db.SaveAgentConfigs(ctx, runID, configs); err != nil {
		log.Warn().Err(err).Msg("failed to save agent configs")
		return
	}
	if err := db.SaveGameRecords(ctx, runID, gameRecords); err != nil {
		log.Warn().Err(err).Msg("failed to save game records")
		return
	}
	if err := db.SaveMoveRecords(ctx, runID, moveRecords); err != nil {
		log.Warn().Err(err).Msg("failed to save move records")
		return
	}
	log.Info().Str("run", runID).Msg("stored sqlite records")
}

// runGame executes a single game between two agents and returns the winner.
func runGame(config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(profileFor(config1), profileFor(config2))
	return e.Run()
}

func profileFor(config metrics.AgentConfig) *searcher.AgentProfile {
	personality, ok := searcher.ParsePersonality(config.Personality)
	if !ok {
		panic(fmt.Sprintf("unknown personality %q", config.Personality))
	}
	return &searcher.AgentProfile{
		ID:          uint64(config.ID),
		Personality: personality,
		SkillLevel:  config.SkillLevel,
	}
}
