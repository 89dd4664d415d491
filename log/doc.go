// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The package also maintains a default logger used by the package-level
// functions ([Debug], [Info], [Warn], [Error]) and reconfigured with
// [Config].
//
// Two output formats are supported, [FormatJSON] (default) and [FormatText],
// each with an optional colorized pretty variant rendered with lipgloss.
// Timestamps are formatted with any named layout from the [time] package or
// a custom layout string via [WithTimeLayout].
package log
