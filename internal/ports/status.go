package ports

// StatusReporter receives progress lines during an export run. Implementations
// decide where and how the lines are rendered.
type StatusReporter interface {
	// Pagef reports progress for a page at the given tree depth.
	Pagef(depth int, format string, args ...any)

	// Infof reports run-level progress.
	Infof(format string, args ...any)

	// Warnf reports a recoverable problem.
	Warnf(format string, args ...any)
}
