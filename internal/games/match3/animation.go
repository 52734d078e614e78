package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// frameTiming holds per-phase durations in ticks.
type frameTiming struct {
	swap   int
	remove int
	fall   int
}

// frame is one visual phase of a swap: the board to draw plus what moves
// or flashes on it.
type frame struct {
	phase   engine.Phase
	board   engine.Board
	move    engine.Move
	cleared engine.PositionSet     // removing only
	falls   map[engine.TokenID]int // falling only: token id to distance
	ticks   int
}

// animation replays a swap result frame by frame. The session has already
// settled; the animation only paces what the player sees.
type animation struct {
	frames  []frame
	idx     int
	elapsed int
}

// newAnimation builds the frame sequence for a swap. Phases with a zero
// duration are skipped.
func newAnimation(res engine.SwapResult, t frameTiming) animation {
	var a animation
	add := func(f frame) {
		if f.ticks > 0 {
			a.frames = append(a.frames, f)
		}
	}

	add(frame{phase: engine.PhaseSwapping, board: res.Swapped, move: res.Move, ticks: t.swap})
	if !res.Accepted {
		add(frame{phase: engine.PhaseSwapBack, board: res.Board, move: res.Move, ticks: t.swap})
		return a
	}

	for _, step := range res.Resolution.Steps {
		add(frame{phase: engine.PhaseRemoving, board: step.Before, cleared: step.Cleared, ticks: t.remove})

		falls := make(map[engine.TokenID]int, len(step.Falls))
		for _, f := range step.Falls {
			falls[f.TokenID] = f.Distance
		}
		add(frame{phase: engine.PhaseFalling, board: step.After, falls: falls, ticks: t.fall})
	}

	// A reshuffle replaces the settled board; show the new one straight away.
	if res.Reshuffled {
		add(frame{phase: engine.PhaseIdle, board: res.Board, ticks: 1})
	}
	return a
}

func (a *animation) active() bool {
	return a.idx < len(a.frames)
}

// advance moves the animation forward by one tick.
func (a *animation) advance() {
	if !a.active() {
		return
	}
	a.elapsed++
	if a.elapsed >= a.frames[a.idx].ticks {
		a.idx++
		a.elapsed = 0
	}
}

// current returns the frame being shown and its progress in [0, 1].
func (a *animation) current() (frame, float64, bool) {
	if !a.active() {
		return frame{}, 0, false
	}
	f := a.frames[a.idx]
	return f, float64(a.elapsed) / float64(f.ticks), true
}

// total returns the number of ticks left to play.
func (a *animation) total() int {
	n := 0
	for i := a.idx; i < len(a.frames); i++ {
		n += a.frames[i].ticks
	}
	return n - a.elapsed
}

// easeOutQuad decelerates falling tokens as they land.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// fallOffset is how many cells above its final row a falling token is drawn.
func fallOffset(distance int, progress float64) float64 {
	return float64(distance) * (1 - easeOutQuad(progress))
}
