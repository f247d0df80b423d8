package app

import "go.trai.ch/xmk/internal/core/ports"

// Components aggregates the wired application objects handed to the CLI.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Executor     ports.Executor
	Store        ports.StateStore
	Hasher       ports.Hasher
	Telemetry    ports.Telemetry
}
