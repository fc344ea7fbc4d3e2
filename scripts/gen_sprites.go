//go:build ignore

// gen_sprites.go – run with:
//
//	go run scripts/gen_sprites.go
//
// Writes assets/sprites/*.png from the built-in art so the sprite files can
// be edited by hand. The game falls back to the same art when a file is
// missing.
package main

import (
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/doodle-jump/internal/gui/sprites"
)

func main() {
	dir := filepath.Join("assets", "sprites")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, id := range sprites.All() {
		path := filepath.Join(dir, sprites.FileName(id))
		writePNG(path, sprites.Placeholder(id))
	}
	log.Printf("Sprites written to %s/", dir)
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	b := img.Bounds()
	log.Printf("  wrote %s (%dx%d)", path, b.Dx(), b.Dy())
}
