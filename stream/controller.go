package stream

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/interp"
	"github.com/matt-g-everett/animtx/property"
	"github.com/matt-g-everett/animtx/smooth"
	"github.com/matt-g-everett/animtx/sprite"
)

const (
	brightnessKey = "brightness"
	tintKey       = "tint"
	tintAmount    = 0.25
)

// State is a snapshot of what the Controller is showing.
type State struct {
	Sequence   string                  `json:"sequence"`
	Frame      int                     `json:"frame"`
	Playing    bool                    `json:"playing"`
	Sequences  []string                `json:"sequences"`
	Properties map[string]interp.Value `json:"properties"`
	Animating  int                     `json:"animating"`
}

// Controller plays baked frame sequences and animates the brightness and tint
// they are shown with.
type Controller struct {
	mu        sync.Mutex
	animated  *sprite.Animated[*Frame]
	props     *property.Container
	fade      *property.Animation
	tintAnim  *property.Animation
	curve     smooth.Func
	fadeCurve smooth.Func
	fadeFloor float64
	fadeMs    float64

	cycleOrder    []string
	calibrateName string

	clock         *core.Clock
	publisher     Publisher
	tickInterval  time.Duration
	cycleInterval time.Duration
}

// NewController bakes the configured sequences and creates a Controller
// publishing to publisher. r seeds the random sequences.
func NewController(config Config, publisher Publisher, r *rand.Rand) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	foreColour, _ := colorful.Hex(config.Colours.Fore)
	backColour, _ := colorful.Hex(config.Colours.Back)
	tintColour, _ := colorful.Hex(config.Colours.Tint)

	c := new(Controller)
	c.curve, _ = smooth.ByName(config.Curve)
	c.fadeCurve, _ = smooth.ByName(config.Fade.Curve)
	c.fadeFloor = config.Fade.Floor
	c.fadeMs = config.Fade.DurationMs
	c.clock = core.NewClock()
	c.publisher = publisher
	c.tickInterval = time.Duration(config.Tick.IntervalMs) * time.Millisecond
	c.cycleInterval = time.Duration(config.Tick.CycleSecs * float64(time.Second))

	animations := make(map[string]*sprite.Animation[*Frame], len(config.Sequences))
	for _, s := range config.Sequences {
		var frames []*Frame
		switch s.Kind {
		case "gradient":
			frames = BakeGradientTrail(DefaultGradient, config.Pixels, s.Frames, 180)
		case "twinkle":
			frames = BakeTwinkle(r, config.Pixels, s.Frames, config.Pixels/8, foreColour, backColour, c.curve)
		case "streak":
			frames = BakeStreak(config.Pixels, s.Frames, 10, foreColour, backColour, c.curve)
		case "calibrate":
			frames = BakeCalibration(config.Pixels)
			c.calibrateName = s.Name
		}

		style, _ := sprite.ParseStyle(s.Style)
		anim, err := sprite.NewAnimation(frames, s.FPS, style)
		if err != nil {
			return nil, fmt.Errorf("sequence %s: %w", s.Name, err)
		}
		animations[s.Name] = anim
		if style == sprite.Loop {
			c.cycleOrder = append(c.cycleOrder, s.Name)
		}
		core.LogDebug("Baked sequence %s: %d frames at %vfps (%v)", s.Name, len(frames), s.FPS, style)
	}

	animated, err := sprite.NewAnimated(animations, config.Initial)
	if err != nil {
		return nil, err
	}
	for _, s := range config.Sequences {
		if s.Then != "" {
			if err := animated.SwitchWhenDone(s.Name, s.Then); err != nil {
				return nil, err
			}
		}
	}
	animated.Current().Play()
	c.animated = animated

	c.props = property.NewContainer()
	c.props.Set(brightnessKey, interp.Scalar(1))
	c.props.Set(tintKey, interp.Colour(tintColour))

	return c, nil
}

// Tick advances all animations by dt milliseconds and returns the frame to show.
func (c *Controller) Tick(dt float64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.animated.Update(dt)
	c.props.Update(dt)

	brightness, _ := c.props.Get(brightnessKey)
	tintValue, _ := c.props.Get(tintKey)
	tint, _ := tintValue.Colour()

	return c.animated.Frame().Tint(tint, tintAmount, brightness.Float())
}

// SwitchTo shows the named sequence from its first frame, dipping the
// brightness while it changes.
func (c *Controller) SwitchTo(name string) (sprite.Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchTo(name)
}

// Cycle switches to the looping sequence after the current one.
func (c *Controller) Cycle() (sprite.Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cycleOrder) == 0 {
		return sprite.Transition{}, fmt.Errorf("no looping sequences: %w", core.ErrKeyNotFound)
	}

	next := c.cycleOrder[0]
	current := c.animated.CurrentName()
	for i, name := range c.cycleOrder {
		if name == current {
			next = c.cycleOrder[(i+1)%len(c.cycleOrder)]
			break
		}
	}

	return c.switchTo(next)
}

// Calibrate switches to the calibration sequence.
func (c *Controller) Calibrate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.calibrateName == "" {
		return fmt.Errorf("calibration sequence: %w", core.ErrKeyNotFound)
	}
	_, err := c.switchTo(c.calibrateName)
	return err
}

func (c *Controller) switchTo(name string) (sprite.Transition, error) {
	tr, err := c.animated.SwitchTo(name)
	if err != nil {
		return tr, err
	}
	core.LogInfo("Showing %s (was %s)", tr.To, tr.From)

	if c.fade == nil || !c.props.Animating(c.fade) {
		c.fade, err = c.props.Animate(brightnessKey, interp.Scalar(c.fadeFloor), c.fadeMs/2, c.fadeCurve,
			property.WithLoop(property.Reverse), property.WithRepeat(1))
		if err != nil {
			return tr, err
		}
	}

	return tr, nil
}

// SetTint moves the tint colour to hex over durationMs.
func (c *Controller) SetTint(hex string, durationMs float64) error {
	colour, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("tint %q: %w", hex, core.ErrInvalidConfiguration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := property.NewAnimation(c.props, tintKey, interp.Colour(colour), durationMs, c.curve)
	if err != nil {
		return err
	}
	if c.tintAnim != nil {
		c.tintAnim.Stop()
	}
	c.tintAnim = next
	c.props.Add(next)
	return nil
}

// State returns what is currently showing.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.animated.Current()
	return State{
		Sequence:   c.animated.CurrentName(),
		Frame:      current.Index(),
		Playing:    current.Playing(),
		Sequences:  c.animated.Names(),
		Properties: c.props.Snapshot(),
		Animating:  c.props.Active(),
	}
}

// Run ticks the animations and publishes a frame every tick interval, and
// cycles sequences on the cycle interval, until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(c.tickInterval)
	defer publishTimer.Stop()

	var cycleC <-chan time.Time
	if c.cycleInterval > 0 {
		cycleTimer := time.NewTicker(c.cycleInterval)
		defer cycleTimer.Stop()
		cycleC = cycleTimer.C
	}

	c.clock.Start()
	defer c.clock.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			f := c.Tick(c.clock.Tick())
			if err := c.publisher.Publish(f); err != nil {
				core.LogWarn("Publish failed: %v", err)
			}
		case <-cycleC:
			if _, err := c.Cycle(); err != nil {
				core.LogWarn("Cycle failed: %v", err)
			}
		}
	}
}
