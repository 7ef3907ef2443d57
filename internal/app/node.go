package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texpkg/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/adapters/latex"  //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/adapters/tlmgr"  //nolint:depguard // Wired in app layer
	"go.trai.ch/texpkg/internal/core/ports"
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
			fs.ResolverNodeID,
			latex.NodeID,
			tlmgr.NodeID,
			linear.NodeID,
			logger.NodeID,
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
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	extractor, err := graft.Dep[ports.DependencyExtractor](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sources, extractor, manager, reporter, log), nil
}
