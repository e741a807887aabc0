package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jrc03c/matching-game-demo/internal/game"
)

// ErrQuit is returned by Run when the player types q.
var ErrQuit = errors.New("quit")

// Run reads one command per line from in and dispatches it to the game:
//
//	1..N  select the card with that number
//	n     new game
//	s     toggle the settings line
//	q     quit
//
// It returns nil at end of input and ErrQuit when the player quits.
func Run(in io.Reader, g *game.Game, p *Presenter) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := Dispatch(strings.TrimSpace(sc.Text()), g, p); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Dispatch handles a single command line.
func Dispatch(cmd string, g *game.Game, p *Presenter) error {
	switch strings.ToLower(cmd) {
	case "":
		p.Redraw()
		return nil
	case "q", "quit":
		return ErrQuit
	case "n", "new":
		g.Reset()
		return nil
	case "s", "settings":
		p.ToggleSettings()
		return nil
	}

	n, err := strconv.Atoi(cmd)
	if err != nil {
		p.Redraw()
		return nil
	}
	// Stray input is ignored the same way the game ignores stray clicks.
	if _, err := g.SelectIndex(n - 1); err != nil {
		p.Redraw()
	}
	return nil
}
