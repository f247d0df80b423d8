package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xmk/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/xmk/internal/core/ports"
	"go.trai.ch/xmk/internal/engine/translator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			translator.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	tr, err := graft.Dep[*translator.Translator](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, tr, executor, hasher, store, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Executor:     executor,
		Store:        store,
		Hasher:       hasher,
		Telemetry:    telemetry,
	}, nil
}
