package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/jrc03c/matching-game-demo/internal/config"
	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/jrc03c/matching-game-demo/internal/terminal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	playSymbols string
	playTheme   string
	playVerbose bool
)

// playCmd plays a game in the terminal
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play a game in the terminal. Type a card number to flip it, n for a new game,
s to show the theme settings and q to quit.

Colors are read from $XDG_CONFIG_HOME/concentration/theme.toml, which is created with
the defaults on first run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		themePath := playTheme
		if themePath == "" {
			themePath = config.GetThemeFilePath()
		}
		theme, err := config.LoadTheme(themePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}

		alphabet := deck.DefaultAlphabet
		if playSymbols != "" {
			alphabet = deck.ParseAlphabet(playSymbols)
		}
		if err := deck.ValidateAlphabet(alphabet); err != nil {
			return fmt.Errorf("--symbols: %w", err)
		}

		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		if !interactive {
			color.NoColor = true
		}

		logger := logrus.New()
		logger.SetOutput(io.Discard)
		if playVerbose {
			logger.SetOutput(os.Stderr)
			logger.SetLevel(logrus.DebugLevel)
		}

		settings := game.DefaultSettings()
		settings.Alphabet = alphabet
		settings.Clock = clock.Real{}

		p := terminal.New(os.Stdout, theme, interactive)
		var presenter game.Presenter = p
		if playVerbose {
			presenter = game.Presenters(p, game.NewLogPresenter(logger.WithField("component", "presenter")))
		}
		g := game.New(settings, presenter, logger)
		defer g.Close()

		err = terminal.Run(os.Stdin, g, p)
		if errors.Is(err, terminal.ErrQuit) {
			return nil
		}
		return err
	},
}

func init() {
	playCmd.Flags().StringVar(&playSymbols, "symbols", "", "comma-separated card symbols")
	playCmd.Flags().StringVar(&playTheme, "theme", "", "path to a theme.toml file")
	playCmd.Flags().BoolVarP(&playVerbose, "verbose", "v", false, "log game events to stderr")
}
