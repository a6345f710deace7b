package sprite

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/animtx/core"
)

// A Transition records a switch between two named animations.
type Transition struct {
	From string
	To   string
}

// Animated is an entity with a set of named animations, exactly one of which
// is current at a time.
type Animated[F any] struct {
	animations map[string]*Animation[F]
	current    string
}

// NewAnimated creates an Animated from named animations with current as the
// active one. The map is copied; the animations are owned by the Animated.
func NewAnimated[F any](animations map[string]*Animation[F], current string) (*Animated[F], error) {
	if len(animations) == 0 {
		return nil, fmt.Errorf("animated without animations: %w", core.ErrInvalidConfiguration)
	}

	a := new(Animated[F])
	a.animations = make(map[string]*Animation[F], len(animations))
	for name, anim := range animations {
		if anim == nil {
			return nil, fmt.Errorf("animation %q is nil: %w", name, core.ErrInvalidConfiguration)
		}
		a.animations[name] = anim
	}

	if _, ok := a.animations[current]; !ok {
		return nil, fmt.Errorf("current animation %q: %w", current, core.ErrKeyNotFound)
	}
	a.current = current

	return a, nil
}

// Animation returns the animation registered under name.
func (a *Animated[F]) Animation(name string) (*Animation[F], error) {
	anim, ok := a.animations[name]
	if !ok {
		return nil, fmt.Errorf("animation %q: %w", name, core.ErrKeyNotFound)
	}
	return anim, nil
}

// Names returns the registered animation names in sorted order.
func (a *Animated[F]) Names() []string {
	names := make([]string, 0, len(a.animations))
	for name := range a.animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *Animated[F]) Current() *Animation[F] {
	return a.animations[a.current]
}

func (a *Animated[F]) CurrentName() string {
	return a.current
}

// SwitchTo makes the named animation current. The outgoing animation is reset
// and left paused, the incoming one starts playing. Switching to the current
// animation restarts it.
func (a *Animated[F]) SwitchTo(name string) (Transition, error) {
	if _, ok := a.animations[name]; !ok {
		return Transition{}, fmt.Errorf("switch to %q: %w", name, core.ErrKeyNotFound)
	}

	tr := Transition{From: a.current, To: name}
	a.apply(tr)

	return tr, nil
}

func (a *Animated[F]) apply(tr Transition) {
	a.animations[tr.From].Reset()
	a.current = tr.To
	a.animations[tr.To].Play()
	core.LogDebug("switched animation %s -> %s", tr.From, tr.To)
}

// SwitchWhenDone switches to the animation named to when the animation named
// from completes. It replaces any completion callback set on from.
func (a *Animated[F]) SwitchWhenDone(from, to string) error {
	fromAnim, err := a.Animation(from)
	if err != nil {
		return err
	}
	if _, err := a.Animation(to); err != nil {
		return err
	}

	fromAnim.OnComplete(func(*Animation[F]) {
		// The completing animation may no longer be current if a switch
		// happened earlier in the same tick.
		if a.current == from {
			a.apply(Transition{From: from, To: to})
		}
	})

	return nil
}

// Update advances the current animation.
func (a *Animated[F]) Update(dt float64) {
	a.Current().Update(dt)
}

// Frame returns the current animation's current frame.
func (a *Animated[F]) Frame() F {
	return a.Current().Frame()
}

// FrameAt returns the current animation's frame k steps away.
func (a *Animated[F]) FrameAt(k int) F {
	return a.Current().FrameAt(k)
}
