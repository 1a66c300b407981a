//go:build cgo
// +build cgo

package main

import (
	"os"

	"github.com/appengine-ltd/forge-and-field/internal/config"
	"github.com/appengine-ltd/forge-and-field/internal/gui"
	"github.com/appengine-ltd/forge-and-field/internal/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fail(err)
	}
	if cfg.ShowVersion {
		printVersion()
		return
	}

	closer := startLogging(cfg.Classic)
	defer closer.Close()

	env, err := buildEnv(cfg)
	if err != nil {
		fail(err)
	}

	if cfg.Classic {
		err = ui.NewApp(ui.AppConfig{Version: version, Env: env}).Run()
	} else {
		err = gui.NewApp(gui.AppConfig{
			Version: version,
			Width:   int32(cfg.Width),
			Height:  int32(cfg.Height),
			Env:     env,
		}).Run()
	}
	if err != nil {
		fail(err)
	}
}
