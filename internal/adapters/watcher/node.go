package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lesstag/internal/adapters/fs"
	"go.trai.ch/lesstag/internal/adapters/logger"
	"go.trai.ch/lesstag/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ContentCacheNodeID is the unique identifier for the content cache Graft node.
	ContentCacheNodeID graft.ID = "adapter.content_cache"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})

	graft.Register(graft.Node[*ContentCache]{
		ID:        ContentCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*ContentCache, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewContentCache(hasher), nil
		},
	})
}
