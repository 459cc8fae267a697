package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Config, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			var loader ports.ConfigLoader = NewLoader()
			return loader.Load(cwd)
		},
	})
}
