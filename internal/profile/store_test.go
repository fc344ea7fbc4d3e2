package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := testStore(t)
	if len(s.TopN(5)) != 0 {
		t.Fatalf("expected empty store")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no current player")
	}
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRegisterPersistsAndActivates(t *testing.T) {
	s := testStore(t)
	p, err := s.Register("  Doodle   King ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.Nickname != "Doodle King" || p.Highscore != 0 {
		t.Fatalf("unexpected player %+v", p)
	}
	if cur, ok := s.Current(); !ok || cur != "Doodle King" {
		t.Fatalf("expected registered player active, got %q", cur)
	}

	reopened, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if cur, ok := reopened.Current(); !ok || cur != "Doodle King" {
		t.Fatalf("expected active player persisted, got %q", cur)
	}
	if got, ok := reopened.Lookup("doodle king"); !ok || !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("expected case-insensitive lookup of persisted player, got %+v", got)
	}
}

func TestRegisterRejectsEmptyAndDuplicate(t *testing.T) {
	s := testStore(t)
	if _, err := s.Register("   "); !errors.Is(err, ErrNicknameEmpty) {
		t.Fatalf("expected empty nickname error, got %v", err)
	}
	if _, err := s.Register("nisal"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register("NISAL"); !errors.Is(err, ErrNicknameTaken) {
		t.Fatalf("expected taken error, got %v", err)
	}
}

func TestActivateUnknownSuggestsNearbyNames(t *testing.T) {
	s := testStore(t)
	for _, n := range []string{"doodler", "jumper", "zed"} {
		if _, err := s.Register(n); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	_, err := s.Activate("doodlr")
	if !errors.Is(err, ErrUnknownNickname) {
		t.Fatalf("expected unknown nickname, got %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean doodler") {
		t.Fatalf("expected suggestion in error, got %v", err)
	}
	if _, err := s.Activate("Jumper"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if cur, _ := s.Current(); cur != "jumper" {
		t.Fatalf("expected jumper active, got %q", cur)
	}
}

func TestForgetRemovesPlayerAndClearsActive(t *testing.T) {
	s := testStore(t)
	if _, err := s.Register("a1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := s.ProposeHighscore("a1", 900); err != nil {
		t.Fatalf("propose: %v", err)
	}
	if err := s.Forget("A1"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if _, ok := s.Lookup("a1"); ok {
		t.Fatalf("expected player removed")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no active player after forget")
	}
	if err := s.Forget("a1"); !errors.Is(err, ErrUnknownNickname) {
		t.Fatalf("expected unknown on second forget, got %v", err)
	}
}

func TestProposeHighscoreOnlyRaises(t *testing.T) {
	s := testStore(t)
	if _, err := s.Register("max"); err != nil {
		t.Fatalf("register: %v", err)
	}
	wrote, stored, err := s.ProposeHighscore("max", 1200)
	if err != nil || !wrote || stored != 1200 {
		t.Fatalf("expected write of 1200, got wrote=%v stored=%d err=%v", wrote, stored, err)
	}
	wrote, stored, err = s.ProposeHighscore("max", 800)
	if err != nil || wrote || stored != 1200 {
		t.Fatalf("expected lower candidate ignored, got wrote=%v stored=%d err=%v", wrote, stored, err)
	}
	wrote, _, _ = s.ProposeHighscore("max", 1200)
	if wrote {
		t.Fatalf("expected equal candidate to be a no-op")
	}
	if _, _, err := s.ProposeHighscore("nobody", 5); !errors.Is(err, ErrUnknownNickname) {
		t.Fatalf("expected unknown nickname, got %v", err)
	}

	reopened, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if hs, ok := reopened.Highscore("max"); !ok || hs != 1200 {
		t.Fatalf("expected persisted highscore 1200, got %d", hs)
	}
}

func TestTopNOrdersByScoreThenName(t *testing.T) {
	s := testStore(t)
	scores := map[string]int{"bee": 300, "ant": 300, "cat": 900, "dog": 10, "eel": 50, "fox": 70}
	for name, score := range scores {
		if _, err := s.Register(name); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
		if _, _, err := s.ProposeHighscore(name, score); err != nil {
			t.Fatalf("propose %s: %v", name, err)
		}
	}
	top := s.TopN(5)
	want := []string{"cat", "ant", "bee", "fox", "eel"}
	if len(top) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(top))
	}
	for i, name := range want {
		if top[i].Nickname != name {
			t.Fatalf("rank %d: expected %s, got %+v", i, name, top)
		}
	}
	if top[0].Score != 900 {
		t.Fatalf("expected top score 900, got %d", top[0].Score)
	}
}

func TestOpenDropsDuplicateAndBlankNicknames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	raw := `{"format_version":1,"active_nickname":"ghost","players":[
		{"nickname":"Amy","highscore":5},
		{"nickname":"amy","highscore":99},
		{"nickname":"  ","highscore":1},
		{"nickname":"Bo","highscore":-4}
	]}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	names := s.Nicknames()
	if len(names) != 2 || names[0] != "Amy" || names[1] != "Bo" {
		t.Fatalf("unexpected nicknames %v", names)
	}
	if hs, _ := s.Highscore("bo"); hs != 0 {
		t.Fatalf("expected negative highscore clamped, got %d", hs)
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected unknown active nickname dropped")
	}
}
