package levenshtein

import "log/slog"

// buildConfig collects the optional, cross-cutting knobs BuildDFA accepts.
// Construction itself is otherwise pure and total for any d >= 0; the
// logger exists purely as an observability hook, expressed as a
// functional option since BuildDFA has only one required parameter.
type buildConfig struct {
	logger *slog.Logger
}

// Option configures BuildDFA.
type Option func(*buildConfig)

// WithLogger attaches a logger that receives one Info line when
// construction finishes, reporting d, the discovered state count, and the
// number of characteristic vectors per state. A nil logger (the default) keeps construction
// silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}
