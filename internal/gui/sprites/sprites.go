// Package sprites loads the game textures off the frame loop. Files are
// decoded on worker goroutines; the frame loop uploads finished images to
// the GPU in Poll and checks Ready before drawing.
package sprites

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/doodle-jump/internal/art"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ID int

const (
	DoodlerRight ID = iota
	DoodlerLeft
	Platform
	Restart
	count
)

var files = [count]string{
	DoodlerRight: "doodler-right.png",
	DoodlerLeft:  "doodler-left.png",
	Platform:     "platform.png",
	Restart:      "restart.png",
}

func (id ID) String() string {
	if id < 0 || id >= count {
		return fmt.Sprintf("sprite(%d)", int(id))
	}
	return files[id]
}

// All lists every sprite in load order.
func All() []ID {
	out := make([]ID, 0, count)
	for id := ID(0); id < count; id++ {
		out = append(out, id)
	}
	return out
}

type decoded struct {
	id          ID
	img         image.Image
	placeholder bool
	err         error
}

// Set owns one texture per sprite. Only Poll, Texture, Ready and Unload
// touch raylib and must run on the window goroutine.
type Set struct {
	dir     string
	results chan decoded
	started bool

	tex   [count]rl.Texture2D
	ready [count]bool
}

func NewSet(dir string) *Set {
	return &Set{dir: dir, results: make(chan decoded, count)}
}

// Load starts decoding every sprite. Later calls are no-ops.
func (s *Set) Load() {
	if s.started {
		return
	}
	s.started = true
	for _, id := range All() {
		go func(id ID) {
			img, placeholder, err := Decode(s.dir, id)
			s.results <- decoded{id: id, img: img, placeholder: placeholder, err: err}
		}(id)
	}
}

// Poll uploads every image that finished decoding since the last call.
func (s *Set) Poll() {
	for {
		select {
		case d := <-s.results:
			s.upload(d)
		default:
			return
		}
	}
}

func (s *Set) upload(d decoded) {
	if d.err != nil {
		rl.TraceLog(rl.LogWarning, "sprites: %s: %v, using placeholder", d.id, d.err)
	}
	if d.img == nil {
		return
	}
	img := rl.NewImageFromImage(d.img)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		rl.TraceLog(rl.LogWarning, "sprites: %s: texture upload failed", d.id)
		return
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	s.tex[d.id] = tex
	s.ready[d.id] = true
	if d.placeholder {
		rl.TraceLog(rl.LogDebug, "sprites: %s: placeholder ready", d.id)
	}
}

func (s *Set) Ready(id ID) bool {
	return id >= 0 && id < count && s.ready[id]
}

// Texture returns the sprite texture once it is ready.
func (s *Set) Texture(id ID) (rl.Texture2D, bool) {
	if !s.Ready(id) {
		return rl.Texture2D{}, false
	}
	return s.tex[id], true
}

// Unload releases GPU memory. Call before rl.CloseWindow().
func (s *Set) Unload() {
	for id := range s.tex {
		if s.tex[id].ID != 0 {
			rl.UnloadTexture(s.tex[id])
		}
		s.tex[id] = rl.Texture2D{}
		s.ready[id] = false
	}
}

// Decode reads a sprite from dir. A missing directory or file yields the
// built-in placeholder without error; a broken file yields the placeholder
// and the decode error.
func Decode(dir string, id ID) (image.Image, bool, error) {
	if id < 0 || id >= count {
		return nil, false, fmt.Errorf("unknown sprite %d", int(id))
	}
	if dir == "" {
		return Placeholder(id), true, nil
	}
	f, err := os.Open(filepath.Join(dir, files[id]))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Placeholder(id), true, nil
		}
		return Placeholder(id), true, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Placeholder(id), true, fmt.Errorf("decode %s: %w", files[id], err)
	}
	return img, false, nil
}

func Placeholder(id ID) image.Image {
	switch id {
	case DoodlerRight:
		return art.Doodler(false)
	case DoodlerLeft:
		return art.Doodler(true)
	case Platform:
		return art.Platform()
	case Restart:
		return art.Restart()
	default:
		return nil
	}
}

// FileName is the on-disk name looked up for id.
func FileName(id ID) string {
	return id.String()
}
