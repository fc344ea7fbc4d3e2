//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"

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

	fmt.Fprintln(os.Stderr, "The game window requires the cgo/raylib build; use -autoplay or -scores here.")
	os.Exit(1)
}
