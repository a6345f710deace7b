package property

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/interp"
	"github.com/matt-g-everett/animtx/smooth"
)

// A Container holds named values and the animations currently driving them.
// Only the container advances its animations.
type Container struct {
	values map[string]interp.Value
	active []*Animation
}

func NewContainer() *Container {
	c := new(Container)
	c.values = make(map[string]interp.Value)
	return c
}

// Set stores value under key.
func (c *Container) Set(key string, value interp.Value) {
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *Container) Get(key string) (interp.Value, error) {
	v, ok := c.values[key]
	if !ok {
		return interp.Value{}, fmt.Errorf("property %q: %w", key, core.ErrKeyNotFound)
	}
	return v, nil
}

// Keys returns the property keys in sorted order.
func (c *Container) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all property values.
func (c *Container) Snapshot() map[string]interp.Value {
	out := make(map[string]interp.Value, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Add makes a an active animation. Adding an animation twice has no effect.
func (c *Container) Add(a *Animation) {
	for _, existing := range c.active {
		if existing == a {
			return
		}
	}
	c.active = append(c.active, a)
}

// Animate creates an animation of key towards end and adds it.
func (c *Container) Animate(key string, end interp.Value, play float64, f smooth.Func, opts ...Option) (*Animation, error) {
	a, err := NewAnimation(c, key, end, play, f, opts...)
	if err != nil {
		return nil, err
	}
	c.Add(a)
	return a, nil
}

// Active returns the number of active animations.
func (c *Container) Active() int {
	return len(c.active)
}

// Animating reports whether a is active.
func (c *Container) Animating(a *Animation) bool {
	for _, existing := range c.active {
		if existing == a {
			return true
		}
	}
	return false
}

// Update advances every animation that was active when the call began, in the
// order they were added, and then drops the ones that finished. Animations
// added during the pass, e.g. by a completion callback, first advance on the
// next Update.
func (c *Container) Update(dt float64) {
	pass := append([]*Animation(nil), c.active...)

	var spent map[*Animation]struct{}
	for _, a := range pass {
		if !a.Update(dt) {
			if spent == nil {
				spent = make(map[*Animation]struct{})
			}
			spent[a] = struct{}{}
		}
	}

	if spent == nil {
		return
	}
	kept := c.active[:0]
	for _, a := range c.active {
		if _, done := spent[a]; !done {
			kept = append(kept, a)
		}
	}
	// clear the tail so finished animations can be collected
	for i := len(kept); i < len(c.active); i++ {
		c.active[i] = nil
	}
	c.active = kept
}
