package telemetry

import (
	"os"

	"go.trai.ch/rcdb/internal/adapters/telemetry/progrock"
	"go.trai.ch/rcdb/internal/core/ports"
)

// progressEnv selects the progrock recorder when set to a non-empty value.
const progressEnv = "RCDB_PROGRESS"

// NewProvider returns the telemetry implementation for this session:
// progrock when progress recording is requested, a no-op otherwise.
func NewProvider() ports.Telemetry {
	if os.Getenv(progressEnv) != "" {
		return progrock.New()
	}
	return NewNoOp()
}
