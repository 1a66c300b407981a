//go:build !cgo
// +build !cgo

package main

import (
	"os"

	"github.com/appengine-ltd/forge-and-field/internal/config"
	"github.com/appengine-ltd/forge-and-field/internal/ui"
)

// Without cgo there is no raylib window, so the terminal client always runs.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fail(err)
	}
	if cfg.ShowVersion {
		printVersion()
		return
	}

	closer := startLogging(true)
	defer closer.Close()

	env, err := buildEnv(cfg)
	if err != nil {
		fail(err)
	}
	if err := ui.NewApp(ui.AppConfig{Version: version, Env: env}).Run(); err != nil {
		fail(err)
	}
}
