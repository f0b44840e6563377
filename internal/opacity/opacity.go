// Package opacity implements the window opacity cycle.
package opacity

import (
	"slices"
	"sync"
)

// levels is the fixed cycle order. Index 0 is the state at process start.
var levels = [...]float64{1.0, 0.9, 0.8, 0.7, 0.6}

// Levels returns a copy of the cycle order.
func Levels() []float64 {
	return slices.Clone(levels[:])
}

// Cycler holds the current position in the cycle. The zero value is ready to use.
type Cycler struct {
	mu    sync.Mutex
	index int
}

// NewCycler returns a cycler positioned at full opacity.
func NewCycler() *Cycler {
	return &Cycler{}
}

// Next advances one step, wrapping after the last level, and returns the new value.
func (c *Cycler) Next() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(levels)
	return levels[c.index]
}

// Current returns the value at the current position without advancing.
func (c *Cycler) Current() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return levels[c.index]
}
