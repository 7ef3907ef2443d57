// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/texpkg/internal/adapters/config"
	_ "go.trai.ch/texpkg/internal/adapters/fs"
	_ "go.trai.ch/texpkg/internal/adapters/latex"
	_ "go.trai.ch/texpkg/internal/adapters/linear"
	_ "go.trai.ch/texpkg/internal/adapters/logger"
	_ "go.trai.ch/texpkg/internal/adapters/tlmgr"
	// Register app nodes.
	_ "go.trai.ch/texpkg/internal/app"
)
