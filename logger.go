package bptree

// Logger receives the tree's defensive diagnostics. The method set is
// slog-compatible, so a *slog.Logger satisfies it directly; the
// logger/ submodule has adapters for logrus and zap.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

// DiscardLogger drops all diagnostics. It is the default: the engine
// only logs when an internal policy invariant is about to be broken,
// which healthy trees never do.
type DiscardLogger struct{}

func (d DiscardLogger) Error(string, ...any) {}

func (d DiscardLogger) Warn(string, ...any) {}

func (d DiscardLogger) Info(string, ...any) {}
