package fixtures

// FixtureOption customizes a generator's Container before it is built,
// resolved the way builder.BuilderOption resolves into builderConfig: a
// single newFixtureConfig applies options left to right, never panics.
type FixtureOption func(cfg *fixtureConfig)

// fixtureConfig holds the configurable parameters every generator in this
// package shares. Unlike builder.builderConfig there is no rng or weightFn:
// these graphs are unweighted and their vertex IDs are always the dense
// integer range a Container requires, so the only knob a caller needs is
// how much virtual-vertex headroom to reserve for a downstream embedder.
type fixtureConfig struct {
	virtualCap int
}

// newFixtureConfig returns a fixtureConfig with defaults (zero virtual
// capacity, matching the fact that generators here set up a finished
// combinatorial embedding directly and never allocate a bicomp-root
// placeholder), then applies opts in order.
func newFixtureConfig(opts ...FixtureOption) *fixtureConfig {
	cfg := &fixtureConfig{virtualCap: 0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVirtualCapacity reserves room for k virtual bicomp-root vertex slots
// on the generated Container, for a caller that wants to feed the fixture
// through an incremental embedder rather than use it as-is.
func WithVirtualCapacity(k int) FixtureOption {
	return func(cfg *fixtureConfig) {
		if k > 0 {
			cfg.virtualCap = k
		}
	}
}
