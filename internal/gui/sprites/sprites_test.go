package sprites

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeFallsBackToPlaceholder(t *testing.T) {
	for _, id := range All() {
		img, placeholder, err := Decode("", id)
		if err != nil || !placeholder || img == nil {
			t.Fatalf("%s: expected placeholder without error, got placeholder=%v err=%v", id, placeholder, err)
		}
	}
	img, placeholder, err := Decode(t.TempDir(), Platform)
	if err != nil || !placeholder || img == nil {
		t.Fatalf("expected placeholder for missing file, got placeholder=%v err=%v", placeholder, err)
	}
}

func TestDecodeReadsPNG(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 7, 3))
	src.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, FileName(Restart)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_ = f.Close()

	img, placeholder, err := Decode(dir, Restart)
	if err != nil || placeholder {
		t.Fatalf("expected real image, got placeholder=%v err=%v", placeholder, err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestDecodeBrokenFileReportsError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName(DoodlerLeft)), []byte("nope"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, placeholder, err := Decode(dir, DoodlerLeft)
	if err == nil || !placeholder || img == nil {
		t.Fatalf("expected placeholder and error, got placeholder=%v err=%v", placeholder, err)
	}
}

func TestDecodeUnknownID(t *testing.T) {
	if _, _, err := Decode("", ID(42)); err == nil {
		t.Fatalf("expected error for unknown sprite")
	}
}

func TestSetNotReadyBeforePoll(t *testing.T) {
	s := NewSet("")
	for _, id := range All() {
		if s.Ready(id) {
			t.Fatalf("%s: expected not ready before load", id)
		}
		if _, ok := s.Texture(id); ok {
			t.Fatalf("%s: expected no texture before load", id)
		}
	}
	if s.Ready(ID(-1)) || s.Ready(count) {
		t.Fatalf("expected out of range ids never ready")
	}
}
