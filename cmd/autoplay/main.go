package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Riroaki/Auto-Reversi/internal/game"
	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/searcher"
)

// autoplay runs a bot-vs-bot game, useful for eyeballing search
// behavior at different depths and for reproducing games by seed.
func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 for time-based)")
	blackDepth := flag.Int("black-depth", searcher.DefaultDepth, "Search depth for black")
	whiteDepth := flag.Int("white-depth", searcher.DefaultDepth, "Search depth for white")
	every := flag.Int("print-every", 10, "Print the board every N moves")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", *seed)
	rng := rand.New(rand.NewSource(*seed))

	engine := game.NewEngine(rng)
	bots := map[core.Cell]*searcher.Searcher{
		core.Black: searcher.New(searcher.WithDepth(*blackDepth), searcher.WithStats(&searcher.Stats{})),
		core.White: searcher.New(searcher.WithDepth(*whiteDepth), searcher.WithStats(&searcher.Stats{})),
	}

	engine.Start(true)
	fmt.Print(engine.Render(false, true))

	for engine.Status().IsRunning() {
		mover := engine.Status().Player()
		move, ok := bots[mover].ChooseMove(engine.Board(), mover)
		if !ok {
			log.Fatal().Str("mover", mover.String()).Msg("No move for running side")
		}
		if err := engine.ApplyMove(move.Row, move.Col); err != nil {
			log.Fatal().Err(err).Msg("Searcher produced an illegal move")
		}

		if *every > 0 && engine.Turn()%*every == 0 {
			fmt.Printf("Move %d: %s plays %s\n", engine.Turn(), mover, move)
			fmt.Print(engine.Render(false, true))
		}
	}

	counts := engine.Counts()
	fmt.Print(engine.Render(false, true))
	fmt.Printf("Result: %s (black %d, white %d, %d moves)\n",
		engine.Status(), counts.Black, counts.White, engine.Turn())
}
