package behavior

import (
	"math"
	"strconv"
	"strings"
)

// Counter is the stat number animation: a linear schedule of steps frames
// from 0 to target. Intermediate frames show the rounded-up running value;
// the last frame shows target exactly.
type Counter struct {
	target float64
	steps  int
	step   int
}

// NewCounter creates a counter; steps below 1 means a single frame
func NewCounter(target float64, steps int) *Counter {
	if steps < 1 {
		steps = 1
	}
	return &Counter{target: target, steps: steps}
}

// Next advances one frame and returns the value to display. more is false
// once the target has been shown.
func (c *Counter) Next() (value float64, more bool) {
	if c.Done() {
		return c.target, false
	}
	c.step++

	current := c.target * float64(c.step) / float64(c.steps)
	if c.step >= c.steps || current >= c.target {
		c.step = c.steps
		return c.target, false
	}
	return math.Ceil(current), true
}

// Done reports whether the target has been reached
func (c *Counter) Done() bool {
	return c.step >= c.steps
}

// Frames runs the counter to completion and returns every displayed value
func (c *Counter) Frames() []float64 {
	var out []float64
	for !c.Done() {
		v, _ := c.Next()
		out = append(out, v)
	}
	return out
}

// ParseTarget reads a data-target attribute
func ParseTarget(attr string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(attr), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
