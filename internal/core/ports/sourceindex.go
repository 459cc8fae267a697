package ports

import (
	"context"

	"go.trai.ch/rcdb/internal/core/domain"
)

// SourceIndex is the indexing front end. This core consumes it only to
// produce precompiled-header artifacts; full semantic indexing happens
// downstream.
//
//go:generate mockgen -source=sourceindex.go -destination=mocks/mock_sourceindex.go -package=mocks
type SourceIndex interface {
	// CompileArgs returns the front end's base toolchain compile arguments.
	// When pch is true the arguments are suitable for precompiled-header
	// consumption.
	CompileArgs(pch bool) domain.ArgumentSet

	// Version identifies the front end toolchain version. It participates
	// in the precompiled-header platform key.
	Version(ctx context.Context) (string, error)

	// ParseForSerialization parses srcPath with the given arguments for
	// serialization purposes only (no full semantic analysis).
	ParseForSerialization(ctx context.Context, srcPath string, args domain.ArgumentSet) (ParseContext, error)
}

// ParseContext is a parsed translation unit that can be serialized.
type ParseContext interface {
	// Save serializes the parse context to the given artifact path.
	Save(path string) error

	// Dispose releases resources held by the parse context.
	Dispose()
}
