package log

// Option sets one field of a logger configuration.
type Option func(config) config

// apply folds opts over cfg in order. Nil options are skipped so that callers
// may build option lists with conditional entries.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}
