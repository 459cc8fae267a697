package ports

import (
	"context"

	"go.trai.ch/rcdb/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work for progress reporting.
type Telemetry interface {
	// Record starts recording a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a log message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Cached marks the vertex as a cache hit.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
