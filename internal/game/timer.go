// internal/game/timer.go
package game

import (
	"time"

	"github.com/jrc03c/matching-game-demo/internal/clock"
)

// Timer counts whole elapsed seconds for one session. It is not safe for concurrent use;
// the owning Game guards it with its lock.
type Timer struct {
	clock    clock.Clock
	interval time.Duration

	elapsed int
	started bool
	running bool
	fire    func()
	pending clock.Timer
}

func NewTimer(clk clock.Clock, interval time.Duration) *Timer {
	if clk == nil {
		clk = clock.Real{}
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{clock: clk, interval: interval}
}

// Start begins counting. A timer starts at most once; later calls return false.
// fire is invoked from the clock once per interval and is expected to call Tick.
func (t *Timer) Start(fire func()) bool {
	if t.started {
		return false
	}
	t.started = true
	t.running = true
	t.fire = fire
	t.arm()
	return true
}

// Tick records one elapsed interval and schedules the next one.
func (t *Timer) Tick() int {
	if !t.running {
		return t.elapsed
	}
	t.elapsed++
	t.arm()
	return t.elapsed
}

// Stop halts ticking. The elapsed count is kept.
func (t *Timer) Stop() {
	t.running = false
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Timer) Elapsed() int { return t.elapsed }

func (t *Timer) Running() bool { return t.running }

func (t *Timer) Started() bool { return t.started }

func (t *Timer) arm() {
	if t.fire == nil {
		return
	}
	t.pending = t.clock.AfterFunc(t.interval, t.fire)
}
