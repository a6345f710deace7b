// Package sprite plays fixed sequences of frames at a frame rate.
package sprite

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/animtx/core"
)

// Style is what an Animation does when it runs past its last frame.
type Style int

const (
	// Loop jumps back to the first frame and keeps playing.
	Loop Style = iota
	// PauseAtEnd stops on the last frame.
	PauseAtEnd
	// ResetAtEnd stops on the first frame.
	ResetAtEnd
)

// DefaultUnitsPerSecond makes durations and deltas milliseconds.
const DefaultUnitsPerSecond = 1000.0

func (s Style) String() string {
	switch s {
	case Loop:
		return "loop"
	case PauseAtEnd:
		return "pause"
	case ResetAtEnd:
		return "reset"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses "loop", "pause" or "reset".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "loop":
		return Loop, nil
	case "pause":
		return PauseAtEnd, nil
	case "reset":
		return ResetAtEnd, nil
	}
	return Loop, fmt.Errorf("animation style %q: %w", s, core.ErrKeyNotFound)
}

type options struct {
	unitsPerSecond float64
}

// An Option configures an Animation at construction.
type Option func(*options)

// WithUnitsPerSecond sets how many time units make up one second, e.g. 1 when
// deltas are given in seconds.
func WithUnitsPerSecond(u float64) Option {
	return func(o *options) {
		o.unitsPerSecond = u
	}
}

// An Animation steps through an ordered, fixed set of frames. F is an opaque
// frame handle that is only stored and handed back.
//
// An Animation is created paused. Call Play before Update.
type Animation[F any] struct {
	frames     []F
	fps        float64
	style      Style
	frameDelay float64
	full       float64

	t          float64
	index      int
	playing    bool
	onComplete func(*Animation[F])
}

// NewAnimation creates an Animation over frames played at fps frames per second.
func NewAnimation[F any](frames []F, fps float64, style Style, opts ...Option) (*Animation[F], error) {
	o := options{unitsPerSecond: DefaultUnitsPerSecond}
	for _, opt := range opts {
		opt(&o)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("animation without frames: %w", core.ErrInvalidConfiguration)
	}
	if !(fps > 0) || math.IsInf(fps, 1) {
		return nil, fmt.Errorf("animation fps %v: %w", fps, core.ErrInvalidConfiguration)
	}
	if !(o.unitsPerSecond > 0) || math.IsInf(o.unitsPerSecond, 1) {
		return nil, fmt.Errorf("animation units per second %v: %w", o.unitsPerSecond, core.ErrInvalidConfiguration)
	}
	if style < Loop || style > ResetAtEnd {
		return nil, fmt.Errorf("animation style %v: %w", style, core.ErrInvalidConfiguration)
	}

	a := new(Animation[F])
	a.frames = append([]F(nil), frames...)
	a.fps = fps
	a.style = style
	a.frameDelay = o.unitsPerSecond / fps
	a.full = a.frameDelay * float64(len(frames))

	return a, nil
}

// OnComplete sets the function called when a PauseAtEnd or ResetAtEnd
// animation runs out. It is called synchronously from Update after playback
// has stopped and must not call Update on the same Animation.
func (a *Animation[F]) OnComplete(fn func(*Animation[F])) {
	a.onComplete = fn
}

// Play starts or resumes playback.
func (a *Animation[F]) Play() {
	a.playing = true
}

// Pause halts updates until Play is called again. Elapsed time is kept.
func (a *Animation[F]) Pause() {
	a.playing = false
}

func (a *Animation[F]) Playing() bool {
	return a.playing
}

// Reset rewinds to the first frame and pauses.
func (a *Animation[F]) Reset() {
	a.t = 0
	a.index = 0
	a.playing = false
}

// Update advances the animation by dt time units. It does nothing while paused.
func (a *Animation[F]) Update(dt float64) {
	if !a.playing {
		return
	}

	a.t += dt
	switch a.style {
	case Loop:
		a.t = math.Mod(a.t, a.full)
		if a.t < 0 {
			a.t += a.full
		}
		a.index = a.indexAt(a.t)
	case PauseAtEnd, ResetAtEnd:
		if a.t > a.full {
			if a.style == PauseAtEnd {
				a.index = len(a.frames) - 1
			} else {
				a.index = 0
			}
			a.playing = false
			if a.onComplete != nil {
				a.onComplete(a)
			}
			return
		}
		a.index = a.indexAt(max(a.t, 0))
	}
}

func (a *Animation[F]) indexAt(t float64) int {
	i := int(t / a.frameDelay)
	if i >= len(a.frames) {
		// t == full, or rounding right below it
		i = len(a.frames) - 1
	}
	return i
}

// Frame returns the current frame.
func (a *Animation[F]) Frame() F {
	return a.frames[a.index]
}

// Index returns the position of the current frame.
func (a *Animation[F]) Index() int {
	return a.index
}

// FrameAt returns the frame k steps from the current one. FrameAt(0) is the
// current frame. Any other offset is counted from the elapsed time and always
// wraps around the frame count, whatever the style and even after a
// PauseAtEnd or ResetAtEnd animation has finished.
func (a *Animation[F]) FrameAt(k int) F {
	if k == 0 {
		return a.frames[a.index]
	}
	n := len(a.frames)
	i := (int(math.Floor(a.t/a.frameDelay)) + k) % n
	if i < 0 {
		i += n
	}
	return a.frames[i]
}

func (a *Animation[F]) Len() int {
	return len(a.frames)
}

// Elapsed is the time played since the last Reset, wrapped for Loop.
func (a *Animation[F]) Elapsed() float64 {
	return a.t
}

func (a *Animation[F]) Style() Style {
	return a.style
}

func (a *Animation[F]) FPS() float64 {
	return a.fps
}

// FrameDuration is how long each frame is shown, in time units.
func (a *Animation[F]) FrameDuration() float64 {
	return a.frameDelay
}

// TotalDuration is FrameDuration times the frame count.
func (a *Animation[F]) TotalDuration() float64 {
	return a.full
}
