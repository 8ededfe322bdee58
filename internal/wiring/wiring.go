// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/clasp/internal/adapters/cache"
	_ "go.trai.ch/clasp/internal/adapters/config"
	_ "go.trai.ch/clasp/internal/adapters/engine"
	_ "go.trai.ch/clasp/internal/adapters/fs"
	_ "go.trai.ch/clasp/internal/adapters/logger"
	_ "go.trai.ch/clasp/internal/adapters/telemetry"
	// Register app, resolver and transform nodes.
	_ "go.trai.ch/clasp/internal/app"
	_ "go.trai.ch/clasp/internal/resolver"
	_ "go.trai.ch/clasp/internal/transform"
)
