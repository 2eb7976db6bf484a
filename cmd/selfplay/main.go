package main

import (
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elijahg12/checkers-studio/internal/checkers"
	"github.com/elijahg12/checkers-studio/internal/config"
	"github.com/elijahg12/checkers-studio/internal/engine"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	variantName := flag.String("variant", "classic", "rule variant: classic or giveaway")
	lightTier := flag.String("light", "hard", "difficulty tier for light")
	darkTier := flag.String("dark", "hard", "difficulty tier for dark")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "RNG seed")
	maxMoves := flag.Int("maxmoves", 300, "move cap per game before calling it a draw")
	configPath := flag.String("config", "", "optional YAML config path")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	variant := checkers.Classic
	if *variantName == "giveaway" {
		variant = checkers.Giveaway
	}

	lightPolicy, err := cfg.Policy(*lightTier)
	if err != nil {
		log.Fatal().Err(err).Msg("resolving light policy")
	}
	darkPolicy, err := cfg.Policy(*darkTier)
	if err != nil {
		log.Fatal().Err(err).Msg("resolving dark policy")
	}

	tally := map[checkers.Color]int{}
	draws := 0
	for i := 0; i < *games; i++ {
		gameID := uuid.NewString()
		winner, plies := playGame(variant, lightPolicy, darkPolicy, *seed+uint64(i), *maxMoves, gameID)
		if winner == checkers.NoColor {
			draws++
			log.Info().Str("game", gameID).Int("plies", plies).Msg("draw (move cap)")
		} else {
			tally[winner]++
			log.Info().Str("game", gameID).Int("plies", plies).Stringer("winner", winner).Msg("game over")
		}
	}

	log.Info().
		Int("games", *games).
		Int("light", tally[checkers.Light]).
		Int("dark", tally[checkers.Dark]).
		Int("draws", draws).
		Msg("selfplay finished")
}

func playGame(variant checkers.Variant, lightPolicy, darkPolicy engine.Difficulty, seed uint64, maxMoves int, gameID string) (checkers.Color, int) {
	pos := checkers.NewInitialPosition(variant)
	engines := map[checkers.Color]*engine.Engine{
		checkers.Light: engine.New(seed),
		checkers.Dark:  engine.New(seed + 1),
	}
	policies := map[checkers.Color]engine.Difficulty{
		checkers.Light: lightPolicy,
		checkers.Dark:  darkPolicy,
	}

	for ply := 0; ply < maxMoves; ply++ {
		mover := pos.SideToMove
		res := engines[mover].Search(pos, engine.ModeStrength, policies[mover])
		if res.Move == nil {
			return checkers.WinnerOnNoMoves(variant, mover), ply
		}
		log.Debug().
			Str("game", gameID).
			Int("ply", ply).
			Stringer("side", mover).
			Int("score", res.Score).
			Int("depth", res.Depth).
			Int64("nodes", res.Nodes).
			Msg("move")
		if _, err := pos.Apply(*res.Move); err != nil {
			log.Fatal().Err(err).Str("game", gameID).Msg("engine produced an unplayable move")
		}
	}
	return checkers.NoColor, maxMoves
}
