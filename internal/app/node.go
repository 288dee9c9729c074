package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lesstag/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lesstag/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.WalkerNodeID,
			watcher.WatcherNodeID,
			watcher.ContentCacheNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	contents, err := graft.Dep[*watcher.ContentCache](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, runner, tracer, hasher, verifier, walker, w, contents), nil
}
