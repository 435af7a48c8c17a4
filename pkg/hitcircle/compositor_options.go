package hitcircle

import "go.uber.org/zap"

type Option func(c *Compositor)

func WithLogger(log *zap.Logger) Option {
	return func(c *Compositor) {
		c.log = log
	}
}

// WithParallel builds the ten digits concurrently. Output is identical to
// a sequential run.
func WithParallel(parallel bool) Option {
	return func(c *Compositor) {
		c.parallel = parallel
	}
}
