// Package property animates named values held in a Container.
package property

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/interp"
	"github.com/matt-g-everett/animtx/smooth"
)

// LoopStyle is how an Animation repeats.
type LoopStyle int

const (
	// Straight jumps back to the start on each repeat.
	Straight LoopStyle = iota
	// Reverse plays forward then backward. Each direction counts as half a repeat.
	Reverse
)

func (l LoopStyle) String() string {
	switch l {
	case Straight:
		return "straight"
	case Reverse:
		return "reverse"
	}
	return fmt.Sprintf("LoopStyle(%d)", int(l))
}

// ParseLoopStyle parses "straight" or "reverse".
func ParseLoopStyle(s string) (LoopStyle, error) {
	switch s {
	case "straight":
		return Straight, nil
	case "reverse":
		return Reverse, nil
	}
	return Straight, fmt.Errorf("loop style %q: %w", s, core.ErrKeyNotFound)
}

type options struct {
	loop       LoopStyle
	repeat     float64
	delayStart float64
	delayEnd   float64
	onComplete func(*Animation)
}

// An Option configures an Animation at construction.
type Option func(*options)

func WithLoop(l LoopStyle) Option {
	return func(o *options) { o.loop = l }
}

// WithRepeat sets how many extra times the animation plays. Reverse
// animations count each direction as half a repeat and stop once the count
// reaches zero, so 0 and 0.5 both play forward once and stop on the end value,
// and 1 comes back to the start value. math.Inf(1) repeats forever.
func WithRepeat(n float64) Option {
	return func(o *options) { o.repeat = n }
}

// WithDelay holds the start value for start time units before playing and the
// end value for end time units after.
func WithDelay(start, end float64) Option {
	return func(o *options) {
		o.delayStart = start
		o.delayEnd = end
	}
}

// WithCompletion sets a function called once the animation finishes. It runs
// synchronously inside Update and must not call Update on the same animation.
func WithCompletion(fn func(*Animation)) Option {
	return func(o *options) { o.onComplete = fn }
}

// An Animation drives one property of a Container from its value at
// construction towards an end value.
type Animation struct {
	container *Container
	key       string
	window    *interp.Window

	play       float64
	delayStart float64
	delayEnd   float64
	span       float64
	loop       LoopStyle
	repeat     float64
	onComplete func(*Animation)

	t       float64
	forward bool
	playing bool
}

// NewAnimation creates an Animation of key in c towards end over play time
// units, shaped by f. The start value is read from c now. The animation is
// playing but is only advanced once added to c.
func NewAnimation(c *Container, key string, end interp.Value, play float64, f smooth.Func, opts ...Option) (*Animation, error) {
	o := options{loop: Straight}
	for _, opt := range opts {
		opt(&o)
	}

	if c == nil {
		return nil, fmt.Errorf("animation of %q without container: %w", key, core.ErrInvalidConfiguration)
	}
	if !finite(play) {
		return nil, fmt.Errorf("animation of %q over %v: %w", key, play, core.ErrInvalidConfiguration)
	}
	if !finite(o.delayStart) || !finite(o.delayEnd) || o.delayStart < 0 || o.delayEnd < 0 {
		return nil, fmt.Errorf("animation of %q with delays %v/%v: %w", key, o.delayStart, o.delayEnd, core.ErrInvalidConfiguration)
	}
	if o.repeat < 0 || math.IsNaN(o.repeat) {
		return nil, fmt.Errorf("animation of %q with repeat %v: %w", key, o.repeat, core.ErrInvalidConfiguration)
	}
	if o.loop != Straight && o.loop != Reverse {
		return nil, fmt.Errorf("animation of %q with loop %v: %w", key, o.loop, core.ErrInvalidConfiguration)
	}

	start, err := c.Get(key)
	if err != nil {
		return nil, err
	}

	w, err := interp.NewWindow(start, end, o.delayStart, o.delayStart+play, f)
	if err != nil {
		return nil, fmt.Errorf("animation of %q: %w", key, err)
	}

	a := new(Animation)
	a.container = c
	a.key = key
	a.window = w
	a.play = play
	a.delayStart = o.delayStart
	a.delayEnd = o.delayEnd
	a.span = o.delayStart + play + o.delayEnd
	a.loop = o.loop
	a.repeat = o.repeat
	a.onComplete = o.onComplete
	a.forward = true
	a.playing = true

	return a, nil
}

// Update advances the animation by dt and writes the new value to the
// container. It returns false once the animation has finished.
func (a *Animation) Update(dt float64) bool {
	if !a.playing {
		return false
	}

	switch a.loop {
	case Straight:
		a.t += dt
		if a.t > a.span {
			a.repeat--
			if a.repeat < 0 {
				return a.finish(a.span)
			}
			a.t = math.Mod(a.t, a.span)
		}
	case Reverse:
		if a.forward {
			a.t += dt
		} else {
			a.t -= dt
		}
		if a.t > a.span || a.t < 0 {
			// One direction is half a repeat: 0.5 stops at the end value,
			// 1 comes back to the start value.
			a.repeat -= 0.5
			if a.repeat <= 0 {
				if a.forward {
					return a.finish(a.span)
				}
				return a.finish(0)
			}
			if a.forward {
				a.t = a.span - (a.t - a.span)
			} else {
				a.t = -a.t
			}
			a.forward = !a.forward
		}
	}

	a.container.Set(a.key, a.window.At(a.t))
	return true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (a *Animation) finish(at float64) bool {
	a.t = at
	a.container.Set(a.key, a.window.At(at))
	a.playing = false
	core.LogDebug("property animation of %s finished at %v", a.key, a.window.At(at))
	if a.onComplete != nil {
		a.onComplete(a)
	}
	return false
}

// Stop halts the animation where it is. The container drops it on its next Update.
func (a *Animation) Stop() {
	a.playing = false
}

func (a *Animation) Playing() bool {
	return a.playing
}

func (a *Animation) Key() string {
	return a.key
}

// Repeats is the remaining repeat budget.
func (a *Animation) Repeats() float64 {
	return a.repeat
}

// Clock is the time position the last value was sampled at.
func (a *Animation) Clock() float64 {
	return a.t
}

// Forward is false while a Reverse animation plays backward.
func (a *Animation) Forward() bool {
	return a.forward
}

// Span is the start delay plus play time plus end delay.
func (a *Animation) Span() float64 {
	return a.span
}

func (a *Animation) Loop() LoopStyle {
	return a.loop
}

// Value samples the animation at its current clock without writing it.
func (a *Animation) Value() interp.Value {
	return a.window.At(a.t)
}
