// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the command-line tools, with a
// console encoding for interactive use and a JSON encoding for CI pipelines.
//
// # Run Correlation
//
// Each command invocation gets a run ID. WithRunID attaches it to the logger,
// ensuring that all lines produced while reconciling a set of documents can be
// correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Updating document", zap.String("locale", "ja"))
package logger
