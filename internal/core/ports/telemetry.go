package ports

import "context"

// Tracer is the entry point for recording units of pipeline work:
// whole resolutions and individual stage executions.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start begins recording a unit of work.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one recorded unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError attaches a failure to the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
