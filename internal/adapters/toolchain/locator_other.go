//go:build !windows

package toolchain

import (
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

var _ ports.ToolchainLocator = (*noopLocator)(nil)

type noopLocator struct{}

func newPlatformLocator() ports.ToolchainLocator {
	return &noopLocator{}
}

// Locate reports that no auxiliary toolchain exists on this platform.
func (l *noopLocator) Locate() (domain.Toolchain, bool) {
	return domain.Toolchain{}, false
}
