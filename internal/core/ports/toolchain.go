package ports

import "go.trai.ch/rcdb/internal/core/domain"

// ToolchainLocator discovers an auxiliary platform compiler toolchain
// (Rtools on Windows). Platforms without the concept provide a no-op
// implementation that reports no toolchain.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainLocator interface {
	// Locate returns the most recent compatible toolchain, or ok=false when
	// none is available.
	Locate() (tc domain.Toolchain, ok bool)
}
