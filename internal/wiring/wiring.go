// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prism/internal/adapters/calcnode"
	_ "go.trai.ch/prism/internal/adapters/config"
	_ "go.trai.ch/prism/internal/adapters/logger"
	_ "go.trai.ch/prism/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/prism/internal/app"
	_ "go.trai.ch/prism/internal/engine/compilation"
	_ "go.trai.ch/prism/internal/engine/depgraph"
	_ "go.trai.ch/prism/internal/engine/statistics"
)
