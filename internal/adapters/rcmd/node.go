package rcmd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/adapters/config"
	"go.trai.ch/rcdb/internal/adapters/shell"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

// NodeID is the unique identifier for the build tool Graft node.
const NodeID graft.ID = "adapter.buildtool"

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(runner, cfg), nil
		},
	})
}
