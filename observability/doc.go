// Package observability provides OpenTelemetry metrics and tracing for
// drain operations. InitMeter and InitTracer configure OTLP HTTP
// exporters; DrainMetrics carries the instrument set the drain
// coordinator records through its Recorder interface.
package observability
