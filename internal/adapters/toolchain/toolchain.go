// Package toolchain discovers auxiliary platform compiler toolchains. Only
// Windows has the concept (Rtools); every other platform gets a locator
// that reports nothing, keeping the resolver free of platform conditionals.
package toolchain

import "go.trai.ch/rcdb/internal/core/ports"

// NewLocator returns the locator for the current platform.
func NewLocator() ports.ToolchainLocator {
	return newPlatformLocator()
}
