package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/config"
	"go.trai.ch/lockcheck/internal/adapters/logger"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
)

// NodeID is the unique identifier for the lock compiler Graft node.
const NodeID graft.ID = "adapter.lock_compiler"

func init() {
	graft.Register(graft.Node[ports.LockCompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LockCompiler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCompiler(cfg, log), nil
		},
	})
}
