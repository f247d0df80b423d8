// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xmk/internal/adapters/config"
	_ "go.trai.ch/xmk/internal/adapters/fs"
	_ "go.trai.ch/xmk/internal/adapters/logger"
	_ "go.trai.ch/xmk/internal/adapters/shell"
	_ "go.trai.ch/xmk/internal/adapters/state"
	_ "go.trai.ch/xmk/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/xmk/internal/app"
	_ "go.trai.ch/xmk/internal/engine/translator"
)
