package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Riroaki/Auto-Reversi/internal/config"
	"github.com/Riroaki/Auto-Reversi/internal/game"
	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/game/events"
	"github.com/Riroaki/Auto-Reversi/internal/game/events/subscribers"
	"github.com/Riroaki/Auto-Reversi/internal/searcher"
)

const heading = `
 _____    _____   _     _   _____   _____    _____   _
|  _  \  | ____| | |   / / | ____| |  _  \  /  ___/ | |
| |_| |  | |__   | |  / /  | |__   | |_| |  | |___  | |
|  _  /  |  __|  | | / /   |  __|  |  _  /  \___  \ | |
| | \ \  | |___  | |/ /    | |___  | | \ \   ___| | | |
|_|  \_\ |_____| |___/     |_____| |_|  \_\ /_____/ |_|
`

func main() {
	configPath := flag.String("config", "", "Path to config file")
	depth := flag.Int("depth", -1, "Search depth in plies (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *depth == -1 {
		*depth = cfg.Search.Depth
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	setupLogging(*logLevel, cfg.Log.Format)

	humanColor := core.Black
	if cfg.Game.HumanColor == "white" {
		humanColor = core.White
	}

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel))

	engine := game.NewEngine(nil, game.WithEventBus(bus))

	var opts []searcher.Option
	opts = append(opts, searcher.WithDepth(*depth))
	if cfg.Search.CollectStats {
		opts = append(opts, searcher.WithStats(&searcher.Stats{}))
	}
	bot := searcher.New(opts...)

	fmt.Print(heading)
	engine.Start(cfg.Game.BlackFirst)
	fmt.Print(engine.Render(cfg.UI.ShowHints, cfg.UI.Colored))
	fmt.Printf("You play %s.\n", humanColor)

	reader := bufio.NewReader(os.Stdin)
	for engine.Status().IsRunning() {
		mover := engine.Status().Player()

		var err error
		if mover == humanColor {
			err = humanMove(reader, engine)
			if errors.Is(err, errQuit) {
				fmt.Println("Okay, bye")
				return
			}
		} else {
			err = botMove(engine, bot)
		}
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Print(engine.Render(cfg.UI.ShowHints, cfg.UI.Colored))
	}

	printResult(engine)
}

var errQuit = errors.New("quit")

// humanMove reads "row col" from the terminal and applies it.
func humanMove(reader *bufio.Reader, engine *game.Engine) error {
	fmt.Print("Enter your play: [row] [col]\n>> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return errQuit
	}
	line = strings.TrimSpace(line)
	if line == "q" || line == "quit" {
		return errQuit
	}

	var row, col int
	if _, err := fmt.Sscanf(line, "%d %d", &row, &col); err != nil {
		return fmt.Errorf("could not parse %q: expected two numbers", line)
	}
	return engine.ApplyMove(row, col)
}

// botMove lets the searcher pick for the side to move. The engine
// forfeits stuck sides internally, so a running game always has a
// move for the bot to find.
func botMove(engine *game.Engine, bot *searcher.Searcher) error {
	mover := engine.Status().Player()
	move, ok := bot.ChooseMove(engine.Board(), mover)
	if !ok {
		return fmt.Errorf("no move found for %s", mover)
	}
	fmt.Printf("Bot (%s) plays %s\n", mover, move)
	return engine.ApplyMove(move.Row, move.Col)
}

func printResult(engine *game.Engine) {
	counts := engine.Counts()
	fmt.Printf("Final count: black %d, white %d\n", counts.Black, counts.White)
	switch engine.Status() {
	case game.StatusWinBlack:
		fmt.Println("Black wins!")
	case game.StatusWinWhite:
		fmt.Println("White wins!")
	case game.StatusDraw:
		fmt.Println("Draw!")
	}
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
