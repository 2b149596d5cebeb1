// Package logger provides structured logging for drain operations,
// built on zerolog. It supports console and JSON output, per-component
// loggers, and a process-wide global logger configured from the
// environment.
package logger
