package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcdb/internal/adapters/rcmd"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/dryrun"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "engine.probe"

func init() {
	graft.Register(graft.Node[*Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rcmd.NodeID, dryrun.NodeID},
		Run: func(ctx context.Context) (*Prober, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[dryrun.Parser](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(tool, parser), nil
		},
	})
}
