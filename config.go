package treap

// config holds the construction-time settings of a Treap.
type config struct {
	// source draws node priorities. nil means a time-seeded xorshift source.
	source PrioritySource
}

// Option configures a Treap created with New.
type Option func(*config)

// WithSeed makes priorities, and therefore the tree shape, reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.source = NewSource(seed) }
}

// WithPrioritySource injects the generator used for node priorities.
// A nil source keeps the default.
func WithPrioritySource(src PrioritySource) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
