package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/art"
	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/imageset"
	"github.com/arcanaland/highlow/internal/logger"
	"github.com/arcanaland/highlow/internal/render"
	"github.com/arcanaland/highlow/internal/round"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	Long: `Play deals a shuffled deck and reveals the first card. On a terminal
you pick Higher, Lower or Quit from a menu. When input is piped, type one
command per line:

  h, higher   guess the next card ranks higher
  l, lower    guess the next card ranks lower
  q, quit     abandon the current game
  s, start    deal a new game once the current one is over
  history     show the rounds played so far
  x, exit     leave highlow
  ?, help     show this list

Use --art to draw cards from an image set as terminal art.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		useArt := cfg.Art
		if cmd.Flags().Changed("art") {
			useArt, _ = cmd.Flags().GetBool("art")
		}
		setName, _ := cmd.Flags().GetString("set")

		opts := []game.Option{game.WithLogger(logger.Named("session"))}
		if seed != 0 {
			// Each new game in the same run gets the next seed so a
			// replayed run deals the same sequence of games.
			next := seed
			opts = append(opts, game.WithDeckFactory(func() *deck.Deck {
				d := deck.NewSeeded(next)
				next++
				return d
			}))
		}

		t := &table{
			sess: game.New(opts...),
			out:  cmd.OutOrStdout(),
		}

		if useArt {
			if err := t.loadArt(setName); err != nil {
				return err
			}
		}

		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return t.runInteractive(selectOption)
		}
		return t.run(in)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64("seed", 0, "Shuffle seed for a reproducible game (0 picks a random one)")
	playCmd.Flags().Bool("art", false, "Draw cards as ANSI art from an image set")
	playCmd.Flags().StringP("set", "s", "", "Image set from your library or a path (default from config)")
}

// table is the terminal presentation of a game session. It takes one
// command at a time, from a menu or a line of input, and prints what the
// session hands back.
type table struct {
	sess *game.Session
	out  io.Writer

	set       *imageset.Set
	converter *art.Converter
}

func (t *table) loadArt(setName string) error {
	setPath, err := config.GetImageSetPath(cfg, setName)
	if err != nil {
		return err
	}
	s, err := imageset.LoadSet(setPath)
	if err != nil {
		return fmt.Errorf("error loading image set: %v", err)
	}
	t.set = s
	t.converter = art.NewConverter(config.GetCacheDir(), cfg.ArtWidth)
	return nil
}

func (t *table) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// Menu entries. handle accepts them the same way as typed commands.
const (
	optHigher  = "Higher"
	optLower   = "Lower"
	optQuit    = "Quit"
	optStart   = "Start"
	optHistory = "History"
	optExit    = "Exit"
)

// chooseFunc asks the player to pick one of options.
type chooseFunc func(title string, options []string) (string, error)

func selectOption(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(title).
		WithOptions(options).
		Show()
}

// menu returns the title and choices offered in the current phase.
func (t *table) menu() (string, []string) {
	if t.sess.Phase() == game.Playing {
		return "Higher or lower?", []string{optHigher, optLower, optHistory, optQuit}
	}
	return "Start a new game?", []string{optStart, optHistory, optExit}
}

// runInteractive plays with a selection menu until the player exits.
func (t *table) runInteractive(choose chooseFunc) error {
	t.start()

	for {
		title, options := t.menu()
		choice, err := choose(title, options)
		if err != nil {
			return fmt.Errorf("error reading choice: %v", err)
		}
		if done := t.handle(choice); done {
			return nil
		}
	}
}

// run reads one command per line from in until exit or end of input.
func (t *table) run(in io.Reader) error {
	t.start()

	scanner := bufio.NewScanner(in)
	for {
		t.prompt()
		if !scanner.Scan() {
			break
		}
		if done := t.handle(scanner.Text()); done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}
	t.printf("\n")
	return nil
}

func (t *table) prompt() {
	if t.sess.Phase() == game.Playing {
		t.printf("Higher or lower? [h/l/q] > ")
		return
	}
	t.printf("[s]tart a new game or e[x]it > ")
}

// handle runs one command line and reports whether the player asked to exit.
func (t *table) handle(line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "":
		return false
	case "x", "exit":
		return true
	case "?", "help":
		t.printf("h/higher, l/lower, q/quit, s/start, history, x/exit\n")
	case "s", "start", "new":
		t.start()
	case "q", "quit":
		t.quit()
	case "history", "hist":
		t.history()
	default:
		g, err := round.ParseGuess(cmd)
		if err != nil {
			t.printf("Unknown command %q. Type ? for help.\n", line)
			return false
		}
		t.guess(g)
	}
	return false
}

func (t *table) start() {
	snap, err := t.sess.Start()
	if errors.Is(err, game.ErrGameInProgress) {
		t.printf("A game is in progress. Quit it first with 'q'.\n")
		return
	}
	if err != nil {
		t.printf("Could not deal a new game: %v\n", err)
		return
	}
	t.printf("\nNew game. Guess whether the next card is higher or lower.\n")
	t.printf("%s\n", render.Scoreboard(snap))
	t.showCurrent()
}

func (t *table) guess(g round.Guess) {
	res, err := t.sess.Guess(g)
	if errors.Is(err, game.ErrNotPlaying) {
		t.printf("No game in progress. Type 's' to start one.\n")
		return
	}
	if err != nil {
		t.printf("Error: %v\n", err)
		return
	}

	if res.Status == game.StatusNoCards {
		t.printf("%s\n", render.Outcome(res))
		return
	}

	t.printf("%s\n", render.HistoryLine(*res.Round, res.RoundNumber))
	t.printf("%s\n", render.Outcome(res))
	t.printf("%s\n", render.Scoreboard(t.sess.Snapshot()))
	t.showCurrent()

	if res.GameEnded {
		t.printf("%s\n", render.Verdict(res.Verdict))
	}
}

func (t *table) quit() {
	if err := t.sess.Quit(); err != nil {
		t.printf("No game in progress.\n")
		return
	}
	t.printf("%s\n", render.Quit())
	t.showBack()
}

func (t *table) history() {
	out, err := render.History(t.sess.History())
	if err != nil {
		t.printf("Error rendering history: %v\n", err)
		return
	}
	t.printf("%s\n", out)
}

func (t *table) showCurrent() {
	id := t.sess.Current()
	if t.converter != nil {
		if face, err := t.converter.Render(t.set.ImagePath(id)); err == nil {
			t.printf("%s", face)
		} else {
			logger.Log.Warnw("card art unavailable", "card", int(id), "error", err)
		}
	}
	t.printf("Current card: %s\n", render.CardName(id))
}

func (t *table) showBack() {
	if t.converter != nil {
		back, err := t.converter.Render(t.set.BackPath())
		if err == nil {
			t.printf("%s", back)
			t.printf("%s\n", t.set.BackAltText)
			return
		}
		logger.Log.Warnw("card back art unavailable", "error", err)
	}
	t.printf("%s\n", render.CardBack())
}
