package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/adapters/config"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

// NodeID is the unique identifier for the project Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[ports.Project]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Project, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
