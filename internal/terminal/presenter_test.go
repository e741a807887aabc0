package terminal

import (
	"bytes"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/jrc03c/matching-game-demo/internal/config"
	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func setupTerminalGame(t *testing.T) (*game.Game, *Presenter, *bytes.Buffer, *clock.Fake) {
	t.Helper()
	noColor(t)
	var buf bytes.Buffer
	p := New(&buf, config.DefaultTheme(), false)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	clk := clock.NewFake()
	g := game.New(game.Settings{
		Alphabet: deck.DefaultAlphabet,
		Clock:    clk,
		Rand:     rand.New(rand.NewSource(5)),
	}, p, logger)
	return g, p, &buf, clk
}

func lastFrame(buf *bytes.Buffer) string {
	frames := strings.Split(buf.String(), "> ")
	if len(frames) < 2 {
		return buf.String()
	}
	return frames[len(frames)-2]
}

func TestPresenterDrawsFaceDownGrid(t *testing.T) {
	_, _, buf, _ := setupTerminalGame(t)
	frame := lastFrame(buf)

	assert.Contains(t, frame, "0 Moves   0:00   ★★★")
	assert.Equal(t, 16, strings.Count(frame, "[??]"))
	assert.Contains(t, frame, " 1 [??]")
	assert.Contains(t, frame, "16 [??]")
	assert.Equal(t, 4, strings.Count(strings.TrimSpace(strings.SplitN(frame, "\n\n", 2)[1]), "\n")+1)
	assert.NotContains(t, buf.String(), clearScreen)
}

func TestPresenterShowsFlippedAndMatched(t *testing.T) {
	g, _, buf, _ := setupTerminalGame(t)
	cards := g.Cards()
	var a, b *game.Card
	for i, c := range cards {
		for _, d := range cards[i+1:] {
			if c.Symbol() == d.Symbol() {
				a, b = c, d
				break
			}
		}
		if a != nil {
			break
		}
	}
	require.NotNil(t, a)

	require.True(t, g.SelectCard(a))
	assert.Contains(t, lastFrame(buf), "["+string(a.Symbol())+"]")

	require.True(t, g.SelectCard(b))
	frame := lastFrame(buf)
	assert.Equal(t, 2, strings.Count(frame, "["+string(a.Symbol())+"]"))
	assert.Contains(t, frame, "1 Move ")
}

func TestPresenterSummaryAndSettings(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	p := New(&buf, config.DefaultTheme(), false)
	p.RenderGrid(nil)

	p.ToggleSettings()
	assert.Contains(t, lastFrame(&buf), "settings: card back=blue")

	p.ShowSummary(game.Summary{Moves: 12, Time: "1:05", Stars: 2})
	assert.Contains(t, lastFrame(&buf), "All pairs found! Moves: 12  Time: 1:05  Rating: ★★☆")

	p.HideSummary()
	p.Redraw()
	assert.NotContains(t, lastFrame(&buf), "All pairs found")
}

func TestInteractivePresenterRedrawsOnTick(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	p := New(&buf, config.DefaultTheme(), true)
	p.UpdateTimer("0:07")
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
	assert.Contains(t, buf.String(), "0:07")
}

func TestRunDispatchesCommands(t *testing.T) {
	g, p, buf, _ := setupTerminalGame(t)

	require.NoError(t, Run(strings.NewReader("1\n2\n"), g, p))
	assert.Equal(t, 1, g.Moves())

	require.NoError(t, Run(strings.NewReader("99\nbogus\n0\n\n"), g, p))
	assert.Equal(t, 1, g.Moves(), "stray input is ignored")

	require.NoError(t, Run(strings.NewReader("s\n"), g, p))
	assert.Contains(t, lastFrame(buf), "settings:")

	err := Run(strings.NewReader("n\nq\n5\n"), g, p)
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, 0, g.Moves())
	for _, c := range g.Cards() {
		assert.Equal(t, game.CardFaceDown, c.State(), "input after q is not read")
	}
}

func TestRunMismatchRevertsOnClock(t *testing.T) {
	g, p, _, clk := setupTerminalGame(t)
	cards := g.Cards()
	second := -1
	for i := 1; i < len(cards); i++ {
		if cards[i].Symbol() != cards[0].Symbol() {
			second = i
			break
		}
	}
	require.NotEqual(t, -1, second)

	cmds := "1\n" + strconv.Itoa(second+1) + "\n"
	require.NoError(t, Run(strings.NewReader(cmds), g, p))
	assert.True(t, g.Locked())

	clk.Advance(time.Second)
	assert.False(t, g.Locked())
	assert.Equal(t, game.CardFaceDown, cards[0].State())
}

func TestBackgroundColorAppliedToBoard(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	frameFor := func(bg string) string {
		theme := config.DefaultTheme()
		theme.BackgroundColor = bg
		var buf bytes.Buffer
		p := New(&buf, theme, false)
		p.RenderGrid(make([]game.CardView, 4))
		return lastFrame(&buf)
	}

	white := frameFor("white")
	red := frameFor("red")
	assert.NotEqual(t, white, red)
	assert.Contains(t, white, "\x1b[47m 1 ")
	assert.Contains(t, red, "\x1b[41m 1 ")
	assert.NotContains(t, white, "\x1b[41m")
}

func TestMismatchRedrawsCounters(t *testing.T) {
	g, _, buf, _ := setupTerminalGame(t)
	cards := g.Cards()
	second := -1
	for i := 1; i < len(cards); i++ {
		if cards[i].Symbol() != cards[0].Symbol() {
			second = i
			break
		}
	}
	require.NotEqual(t, -1, second)

	require.True(t, g.SelectCard(cards[0]))
	require.True(t, g.SelectCard(cards[second]))
	require.True(t, g.Locked())
	assert.Contains(t, lastFrame(buf), "1 Move   0:00   ★★★")
}
