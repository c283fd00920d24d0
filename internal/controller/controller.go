// Package controller provides the per-calculator page controllers: each one
// holds the current input record and recomputes the derived result
// synchronously on every change. There is no caching or scheduling; the
// result is always a pure function of the current input.
package controller

// Controller pairs an input record with its derived result. While the input
// is outside the formula's domain the controller carries the domain error
// and no result; it recovers as soon as a valid input is set.
type Controller[I, R any] struct {
	compute func(I) (R, error)
	input   I
	result  R
	err     error
}

// New creates a controller bound to a formula and seeds it with an initial
// input, computing the first result immediately.
func New[I, R any](compute func(I) (R, error), initial I) *Controller[I, R] {
	c := &Controller[I, R]{compute: compute, input: initial}
	c.recompute()
	return c
}

// Update mutates the input in place and recomputes the result.
func (c *Controller[I, R]) Update(mutate func(*I)) {
	mutate(&c.input)
	c.recompute()
}

// SetInput replaces the whole input record and recomputes the result.
func (c *Controller[I, R]) SetInput(input I) {
	c.input = input
	c.recompute()
}

// Input returns the current input record.
func (c *Controller[I, R]) Input() I {
	return c.input
}

// Result returns the current result, or the domain error that is blocking
// one.
func (c *Controller[I, R]) Result() (R, error) {
	return c.result, c.err
}

// Valid reports whether the current input produced a result.
func (c *Controller[I, R]) Valid() bool {
	return c.err == nil
}

func (c *Controller[I, R]) recompute() {
	result, err := c.compute(c.input)
	if err != nil {
		var zero R
		c.result = zero
		c.err = err
		return
	}
	c.result = result
	c.err = nil
}
