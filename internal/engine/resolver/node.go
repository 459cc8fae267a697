package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/adapters/clang"
	"go.trai.ch/rcdb/internal/adapters/logger"
	"go.trai.ch/rcdb/internal/adapters/project"
	"go.trai.ch/rcdb/internal/adapters/rcmd"
	"go.trai.ch/rcdb/internal/adapters/toolchain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/rcdb/internal/engine/pch"
	"go.trai.ch/rcdb/internal/engine/probe"
)

// NodeID is the unique identifier for the resolver database Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Database]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			project.NodeID,
			rcmd.NodeID,
			clang.NodeID,
			toolchain.NodeID,
			dryrun.NodeID,
			probe.NodeID,
			pch.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Database, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	proj, err := graft.Dep[ports.Project](ctx)
	if err != nil {
		return nil, err
	}
	tool, err := graft.Dep[ports.BuildTool](ctx)
	if err != nil {
		return nil, err
	}
	index, err := graft.Dep[ports.SourceIndex](ctx)
	if err != nil {
		return nil, err
	}
	locator, err := graft.Dep[ports.ToolchainLocator](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[dryrun.Parser](ctx)
	if err != nil {
		return nil, err
	}
	prober, err := graft.Dep[*probe.Prober](ctx)
	if err != nil {
		return nil, err
	}
	headers, err := graft.Dep[*pch.Manager](ctx)
	if err != nil {
		return nil, err
	}
	return NewDatabase(log, proj, tool, index, locator, parser, prober, headers), nil
}
