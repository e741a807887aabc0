package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStoreLifecycle(t *testing.T) {
	store := NewGameStore()
	clk := clock.NewFake()
	g := New(Settings{Clock: clk}, nil, quietLogger())

	store.AddGame(g)
	assert.Equal(t, 1, store.Count())

	got, ok := store.GetGame(g.ID)
	require.True(t, ok)
	assert.Same(t, g, got)

	g.SelectCard(g.Cards()[0])
	require.True(t, g.TimerRunning())

	require.NoError(t, store.DeleteGame(g.ID))
	assert.Equal(t, 0, store.Count())
	assert.True(t, g.Closed())
	assert.Equal(t, 0, clk.Pending(), "deleting a game stops its timer")
	clk.Advance(time.Minute)
	assert.Equal(t, 0, g.ElapsedSeconds())

	_, ok = store.GetGame(g.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, store.DeleteGame(uuid.New()), ErrGameNotFound)
}
