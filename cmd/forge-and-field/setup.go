package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/config"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/journal"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func printVersion() {
	fmt.Printf("Forge & Field %s (%s) %s\n", version, commit, date)
}

// startLogging points the logger at stderr, or at a file next to the
// journal when the terminal client owns the screen.
func startLogging(toFile bool) io.Closer {
	if !toFile {
		logger.Init(nil)
		return nopCloser{}
	}
	path, err := journal.DefaultPath()
	if err == nil {
		var f *os.File
		if f, err = logger.OpenFile(filepath.Join(filepath.Dir(path), "forge.log")); err == nil {
			logger.Init(f)
			return f
		}
	}
	logger.Init(io.Discard)
	return nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildEnv loads the dataset and opens the journal described by cfg.
func buildEnv(cfg config.Config) (screen.Env, error) {
	data := catalog.Demo()
	if cfg.DatasetPath != "" {
		var err error
		if data, err = catalog.Load(cfg.DatasetPath); err != nil {
			return screen.Env{}, errors.Wrap(err, "load dataset")
		}
	}

	path := cfg.JournalPath
	if path == "" {
		var err error
		if path, err = journal.DefaultPath(); err != nil {
			return screen.Env{}, err
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"dataset": cfg.DatasetPath,
		"journal": path,
		"items":   len(data.Items),
	}).Info("starting")

	return screen.Env{
		Dataset:    data,
		Journal:    journal.New(journal.NewFileStore(path)),
		Engine:     forge.NewEngine(forge.DefaultRules()),
		ForgeDelay: cfg.ForgeDelay,
	}, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
