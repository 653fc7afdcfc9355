// Package logger provides structured logging for utl using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The container packages
// stay silent unless a logger is installed (see strbuf.SetLogger); the utl
// command installs one per run, tagged with the run id.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("strbuf")
//	log.Debug("string buffer relocated", logger.Fields("old_capacity", 64, "new_capacity", 96))
package logger
