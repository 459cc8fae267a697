package pch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/adapters/clang"
	"go.trai.ch/rcdb/internal/adapters/config"
	"go.trai.ch/rcdb/internal/adapters/logger"
	"go.trai.ch/rcdb/internal/adapters/rcmd"
	"go.trai.ch/rcdb/internal/adapters/toolchain"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/probe"
)

// NodeID is the unique identifier for the PCH manager Graft node.
const NodeID graft.ID = "engine.pch"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			rcmd.NodeID,
			clang.NodeID,
			toolchain.NodeID,
			probe.NodeID,
			config.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Manager, error) {
	log, err := graft.Dep[ports.Logger](ctx)
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
	prober, err := graft.Dep[*probe.Prober](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	return NewManager(log, tool, index, locator, prober, cfg), nil
}
