// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockcheck/internal/adapters/cache"
	_ "go.trai.ch/lockcheck/internal/adapters/config"
	_ "go.trai.ch/lockcheck/internal/adapters/fs"
	_ "go.trai.ch/lockcheck/internal/adapters/logger"
	_ "go.trai.ch/lockcheck/internal/adapters/shell"
	// Register app, engine and ui nodes.
	_ "go.trai.ch/lockcheck/internal/app"
	_ "go.trai.ch/lockcheck/internal/engine/verifier"
	_ "go.trai.ch/lockcheck/internal/ui/reporter"
)
