package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elijahg12/checkers-studio/internal/checkers"
	"github.com/elijahg12/checkers-studio/internal/config"
	"github.com/elijahg12/checkers-studio/internal/engine"
)

func main() {
	variantName := flag.String("variant", "classic", "rule variant: classic or giveaway")
	tier := flag.String("difficulty", "medium", "difficulty tier: easy, medium, hard")
	colorName := flag.String("color", "light", "your color: light or dark")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "RNG seed")
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
	human := checkers.Light
	if *colorName == "dark" {
		human = checkers.Dark
	}
	policy, err := cfg.Policy(*tier)
	if err != nil {
		log.Fatal().Err(err).Msg("resolving difficulty")
	}

	pos := checkers.NewInitialPosition(variant)
	eng := engine.New(*seed)
	hintEng := engine.New(*seed + 1)

	fmt.Printf("checkers-studio: %s, you play %s, difficulty %s\n", variant, human, *tier)
	fmt.Println("commands: <fr>,<fc> <tr>,<tc>  |  moves  |  hint  |  board  |  quit")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(pos.Render())

		legal := pos.LegalMoves()
		if len(legal) == 0 {
			winner := checkers.WinnerOnNoMoves(variant, pos.SideToMove)
			fmt.Printf("game over: %s wins\n", winner)
			return
		}

		if pos.SideToMove != human {
			res := eng.Search(pos, engine.ModeStrength, policy)
			fmt.Printf("engine plays %s (score %d, depth %d)\n", formatMove(*res.Move), res.Score, res.Depth)
			mustApply(pos, *res.Move)
			continue
		}

		fmt.Printf("%s to move> ", pos.SideToMove)
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		switch {
		case line == "quit":
			return
		case line == "board":
			continue
		case line == "moves":
			for _, mv := range legal {
				fmt.Println(" ", formatMove(mv))
			}
		case line == "hint":
			// Hints always run at the fixed high budget, whatever the game
			// difficulty, and report how deep they actually looked.
			res := hintEng.Search(pos, engine.ModeHint, policy)
			fmt.Printf("hint: %s (depth %d)\n", formatMove(*res.Move), res.Depth)
		default:
			mv, ok := parseMove(line, legal)
			if !ok {
				fmt.Println("not a legal move; try `moves`")
				continue
			}
			mustApply(pos, mv)
		}
	}
}

func mustApply(pos *checkers.Position, mv checkers.Move) {
	if _, err := pos.Apply(mv); err != nil {
		log.Fatal().Err(err).Msg("move failed to apply")
	}
}

func formatMove(m checkers.Move) string {
	s := fmt.Sprintf("%d,%d %d,%d", checkers.RowOf(m.From), checkers.ColOf(m.From), checkers.RowOf(m.To), checkers.ColOf(m.To))
	if m.IsCapture() {
		s += " (capture)"
	}
	return s
}

// parseMove reads "fr,fc tr,tc" and resolves it against the legal set, so
// captured squares never have to be typed.
func parseMove(line string, legal []checkers.Move) (checkers.Move, bool) {
	var fr, fc, tr, tc int
	if _, err := fmt.Sscanf(line, "%d,%d %d,%d", &fr, &fc, &tr, &tc); err != nil {
		return checkers.Move{}, false
	}
	from, to := checkers.Square(fr, fc), checkers.Square(tr, tc)
	if from == checkers.NoSquare || to == checkers.NoSquare {
		return checkers.Move{}, false
	}
	for _, mv := range legal {
		if mv.From == from && mv.To == to {
			return mv, true
		}
	}
	return checkers.Move{}, false
}
