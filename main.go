package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gungi/experiments"
)

func main() {
	experiment := flag.String("experiment", "tournament", "experiment to run: tournament or ladder")
	dbPath := flag.String("db", "experiments/results.db", "path to the results database")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).Level(level)

	switch *experiment {
	case "tournament":
		experiments.RunPersonalityTournament(*dbPath)
	case "ladder":
		experiments.RunSkillLadder(*dbPath)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}
