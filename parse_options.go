package widgetconf

import "log/slog"

// ParseOption configures parsing behavior.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving diagnostics for discarded fragments.
// A nil logger silences diagnostics.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(cfg *parseConfig) {
		if logger == nil {
			logger = discardLogger
		}
		cfg.logger = logger
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}
