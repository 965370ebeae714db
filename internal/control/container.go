// Package control holds per-frame behaviours attached to the game loop.
package control

// Control is a behaviour advanced once per frame.
type Control interface {
	// Update advances the control by tpf seconds.
	Update(tpf float64)
}

// Container is an ordered collection of controls updated together.
type Container struct {
	controls []Control
}

// NewContainer creates a container holding the given controls in order.
func NewContainer(controls ...Control) *Container {
	c := &Container{}
	for _, ctl := range controls {
		c.Add(ctl)
	}
	return c
}

// Add appends a control. Nil controls are ignored.
func (c *Container) Add(ctl Control) {
	if ctl == nil {
		return
	}
	c.controls = append(c.controls, ctl)
}

// Remove drops the first occurrence of ctl and reports whether it was present.
func (c *Container) Remove(ctl Control) bool {
	for i, existing := range c.controls {
		if existing == ctl {
			c.controls = append(c.controls[:i], c.controls[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the control at index, or nil when out of range.
func (c *Container) Get(index int) Control {
	if index < 0 || index >= len(c.controls) {
		return nil
	}
	return c.controls[index]
}

// Len returns the number of controls.
func (c *Container) Len() int {
	return len(c.controls)
}

// Update fans tpf out to every control in insertion order.
func (c *Container) Update(tpf float64) {
	for _, ctl := range c.controls {
		ctl.Update(tpf)
	}
}
