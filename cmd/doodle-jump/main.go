//go:build cgo

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/doodle-jump/internal/gui"
	"github.com/appengine-ltd/doodle-jump/internal/profile"
)

func main() {
	o := parseFlags()
	if o.showVersion {
		printVersion(os.Stdout)
		return
	}

	store, err := profile.Open(o.dataPath)
	if err != nil {
		die(err)
	}
	exit, err := runCommands(os.Stdout, store, o)
	if err != nil {
		die(err)
	}
	if exit {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := gui.NewApp(gui.AppConfig{
		Version:      version,
		Commit:       commit,
		BuildDate:    date,
		AssetsDir:    o.assetsDir,
		Seed:         o.seed,
		FPS:          int32(o.fps),
		SyncInterval: o.syncInterval,
		NoSync:       o.noSync,
		Verbose:      o.verbose,
	}, store)

	if err := app.Run(ctx); err != nil {
		die(err)
	}
}
