package datatable

import (
	"log/slog"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/observer"
)

type config struct {
	sep       rune
	fill      data.Value
	autoSave  bool
	logger    *slog.Logger
	observers []observer.Observer
}

// Option configures a DataTable at construction time
type Option func(*config)

func applyOptions(opts []Option) config {
	cfg := config{
		sep:    ',',
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeparator sets the CSV field separator used on load and save.
// Default is the comma.
func WithSeparator(sep rune) Option {
	return func(cfg *config) {
		cfg.sep = sep
	}
}

// WithReplaceMissing fills empty CSV cells with v on load instead of the
// missing marker.
func WithReplaceMissing(v Value) Option {
	return func(cfg *config) {
		cfg.fill = v
	}
}

// WithAutoSave persists the table back to its source path after every
// successful mutation. Only meaningful for path-backed tables; a mutation
// on an auto-saving table without a source path fails at save time.
func WithAutoSave() Option {
	return func(cfg *config) {
		cfg.autoSave = true
	}
}

// WithLogger routes the facade's structured logging through the given
// logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithObserver subscribes an observer to mutation events.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		if o != nil {
			cfg.observers = append(cfg.observers, o)
		}
	}
}

// NewLoggingObserver returns an observer that logs every mutation event
// through the given logger (slog.Default() when nil).
func NewLoggingObserver(logger *slog.Logger) Observer {
	return observer.NewLoggingObserver(logger)
}
