// Package logger creates configured slog.Logger instances.
//
// It is a thin factory over log/slog: pick a level, a format (text for
// development, JSON for aggregation) and an output, and optionally pin
// static attributes onto every record.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttr(slog.String("component", "cli")),
//	)
//
// An unknown format panics at construction time rather than producing a
// logger that silently drops records.
package logger
