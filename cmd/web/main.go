//go:build js || wasm

package main

import (
	"github.com/Mig-uel/event-emitter-demo/console"
	"github.com/Mig-uel/event-emitter-demo/internal/app"
	"github.com/Mig-uel/event-emitter-demo/internal/config"
	"github.com/Mig-uel/event-emitter-demo/internal/logging"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		console.Warn("Falling back to default configuration:", err.Error())
		cfg = config.Config{
			InitialCount:  9,
			Title:         "event-emitter-demo",
			LogLevel:      "info",
			LogFormat:     "console",
			MountSelector: "#app",
		}
	}

	logger, err := logging.New(console.Writer(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		console.Error("Invalid logging configuration:", err.Error())
		panic(err)
	}

	// The session mounts the root and renders it once; clicks drive it from here.
	if _, err := app.NewSession(cfg, logger, vdom.NewDOMMounter(cfg.MountSelector)); err != nil {
		logger.Error().Err(err).Msg("failed to start")
		panic(err)
	}

	// Keep the Go program running
	select {}
}
