// Package telemetry provides progress-recording adapters.
package telemetry

import (
	"context"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noopVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (v *noopVertex) Log(_ domain.LogLevel, _ string) {}
func (v *noopVertex) Cached()                         {}
func (v *noopVertex) Complete(_ error)                {}
