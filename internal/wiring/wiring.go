// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rcdb/internal/adapters/clang"
	_ "go.trai.ch/rcdb/internal/adapters/config"
	_ "go.trai.ch/rcdb/internal/adapters/logger"
	_ "go.trai.ch/rcdb/internal/adapters/project"
	_ "go.trai.ch/rcdb/internal/adapters/rcmd"
	_ "go.trai.ch/rcdb/internal/adapters/shell"
	_ "go.trai.ch/rcdb/internal/adapters/telemetry"
	_ "go.trai.ch/rcdb/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/rcdb/internal/app"
	_ "go.trai.ch/rcdb/internal/engine/dryrun"
	_ "go.trai.ch/rcdb/internal/engine/pch"
	_ "go.trai.ch/rcdb/internal/engine/probe"
	_ "go.trai.ch/rcdb/internal/engine/resolver"
)
