// Package terminal draws a game in a text terminal.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/jrc03c/matching-game-demo/internal/config"
	"github.com/jrc03c/matching-game-demo/internal/game"
)

const clearScreen = "\033[H\033[2J"

// Presenter implements game.Presenter by redrawing the board as text.
// When Interactive is false (piped output, tests) the timer never forces a redraw and the
// screen is never cleared.
type Presenter struct {
	mu sync.Mutex

	out         io.Writer
	theme       config.Theme
	interactive bool

	cards   []game.CardView
	moves   int
	timer   string
	stars   int
	summary *game.Summary

	background *color.Color
	back       *color.Color
	flipped    *color.Color
	matched    *color.Color
}

func New(out io.Writer, theme config.Theme, interactive bool) *Presenter {
	return &Presenter{
		out:         out,
		theme:       theme,
		interactive: interactive,
		timer:       game.FormatTime(0),
		stars:       game.MaxStars,
		background:  color.New(bgAttr(theme.BackgroundColor)),
		back:        color.New(bgAttr(theme.CardBackColor), color.FgHiWhite),
		flipped:     color.New(color.Bold),
		matched:     color.New(fgAttr(theme.MatchedColor), color.Bold),
	}
}

func (p *Presenter) RenderGrid(cards []game.CardView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = append(p.cards[:0], cards...)
	p.draw()
}

func (p *Presenter) SetCardState(card game.CardView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if card.Index >= 0 && card.Index < len(p.cards) {
		p.cards[card.Index] = card
	}
	p.draw()
}

func (p *Presenter) UpdateMoves(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moves = count
	p.draw()
}

func (p *Presenter) UpdateTimer(formatted string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timer = formatted
	if p.interactive {
		p.draw()
	}
}

func (p *Presenter) UpdateStars(rating int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stars = rating
	p.draw()
}

func (p *Presenter) ShowSummary(s game.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary = &s
	p.draw()
}

func (p *Presenter) HideSummary() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary = nil
}

// ToggleSettings shows or hides the theme line under the board.
func (p *Presenter) ToggleSettings() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme.ShowSettings = !p.theme.ShowSettings
	p.draw()
}

// Redraw draws the board again, e.g. after the user typed an invalid command.
func (p *Presenter) Redraw() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draw()
}

// draw assumes lock is held.
func (p *Presenter) draw() {
	var b strings.Builder
	if p.interactive {
		b.WriteString(clearScreen)
	}

	fmt.Fprintf(&b, "%s   %s   %s\n\n", game.MovesLabel(p.moves), p.timer, game.StarString(p.stars))

	cols := columns(len(p.cards))
	for i, c := range p.cards {
		b.WriteString(p.background.Sprintf("%2d ", i+1))
		b.WriteString(p.cell(c))
		b.WriteString(p.background.Sprint(" "))
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		}
	}
	if len(p.cards)%cols != 0 {
		b.WriteString("\n")
	}

	if p.theme.ShowSettings {
		fmt.Fprintf(&b, "\nsettings: card back=%s background=%s matched=%s\n",
			p.theme.CardBackColor, p.theme.BackgroundColor, p.theme.MatchedColor)
	}

	if p.summary != nil {
		fmt.Fprintf(&b, "\nAll pairs found! Moves: %d  Time: %s  Rating: %s\n",
			p.summary.Moves, p.summary.Time, game.StarString(p.summary.Stars))
		b.WriteString("Press n to play again.\n")
	}
	b.WriteString("\n> ")

	_, _ = io.WriteString(p.out, b.String())
}

func (p *Presenter) cell(c game.CardView) string {
	switch c.State {
	case game.CardMatched:
		return p.matched.Sprintf("[%s]", c.Symbol)
	case game.CardFlipped:
		return p.flipped.Sprintf("[%s]", c.Symbol)
	default:
		return p.back.Sprint("[??]")
	}
}

// columns picks a near-square grid width, 4 for the classic 16 cards.
func columns(n int) int {
	if n <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

var fgColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var bgColors = map[string]color.Attribute{
	"black":   color.BgBlack,
	"red":     color.BgRed,
	"green":   color.BgGreen,
	"yellow":  color.BgYellow,
	"blue":    color.BgBlue,
	"magenta": color.BgMagenta,
	"cyan":    color.BgCyan,
	"white":   color.BgWhite,
}

func fgAttr(name string) color.Attribute {
	if a, ok := fgColors[strings.ToLower(name)]; ok {
		return a
	}
	return color.FgGreen
}

func bgAttr(name string) color.Attribute {
	if a, ok := bgColors[strings.ToLower(name)]; ok {
		return a
	}
	return color.BgBlue
}
