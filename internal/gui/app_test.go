package gui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/doodle-jump/internal/game"
	"github.com/appengine-ltd/doodle-jump/internal/profile"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type logLine struct {
	level rl.TraceLogLevel
	text  string
}

func testUI(t *testing.T, store *profile.Store) *gameUI {
	t.Helper()
	ui, err := newGameUI(AppConfig{Seed: 4242, SyncInterval: time.Hour}, store)
	if err != nil {
		t.Fatalf("new ui: %v", err)
	}
	ui.logf = func(rl.TraceLogLevel, string, ...any) {}
	return ui
}

func capture(ui *gameUI) *[]logLine {
	lines := &[]logLine{}
	ui.logf = func(level rl.TraceLogLevel, format string, args ...any) {
		*lines = append(*lines, logLine{level: level, text: fmt.Sprintf(format, args...)})
	}
	return lines
}

func testStore(t *testing.T, nickname string, highscore int) *profile.Store {
	t.Helper()
	s, err := profile.Open(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if nickname != "" {
		if _, err := s.Register(nickname); err != nil {
			t.Fatalf("register: %v", err)
		}
		if _, _, err := s.ProposeHighscore(nickname, highscore); err != nil {
			t.Fatalf("propose: %v", err)
		}
	}
	return s
}

func TestNewGameUIWithoutPlayer(t *testing.T) {
	ui := testUI(t, nil)
	if ui.syncer != nil || ui.scores != nil {
		t.Fatalf("expected no highscore collaborators without a player")
	}
	if ui.width != 360 || ui.height != 576 {
		t.Fatalf("expected 360x576 board, got %dx%d", ui.width, ui.height)
	}
	if ui.cfg.FPS != 60 {
		t.Fatalf("expected default fps 60, got %d", ui.cfg.FPS)
	}
}

func TestNewGameUIReadsKnownHighscore(t *testing.T) {
	store := testStore(t, "nisal", 420)
	ui := testUI(t, store)
	if ui.nickname != "nisal" || ui.localHighscore != 420 {
		t.Fatalf("expected player highscore loaded, got %q %d", ui.nickname, ui.localHighscore)
	}
	if hs, ok := ui.session.KnownHighscore(); !ok || hs != 420 {
		t.Fatalf("expected session to know 420, got %d ok=%v", hs, ok)
	}
	if ui.syncer == nil {
		t.Fatalf("expected a syncer for a registered player")
	}
	if len(ui.leaderboard) != 1 || ui.leaderboard[0].Score != 420 {
		t.Fatalf("expected leaderboard loaded, got %+v", ui.leaderboard)
	}
}

func TestNoSyncDisablesSyncer(t *testing.T) {
	store := testStore(t, "nisal", 0)
	ui, err := newGameUI(AppConfig{NoSync: true}, store)
	if err != nil {
		t.Fatalf("new ui: %v", err)
	}
	if ui.syncer != nil {
		t.Fatalf("expected no syncer with NoSync")
	}
}

func TestImprovedReportRaisesLocalHighscore(t *testing.T) {
	store := testStore(t, "nisal", 10)
	ui := testUI(t, store)
	ui.syncer.Start(context.Background())
	ui.handleReport(game.TickReport{Score: 55.5, Candidate: 55, Improved: true})
	if ui.localHighscore != 55 {
		t.Fatalf("expected local highscore 55, got %d", ui.localHighscore)
	}
	if hs, _ := ui.session.KnownHighscore(); hs != 55 {
		t.Fatalf("expected session known highscore 55, got %d", hs)
	}

	ui.syncer.Stop()
	res := <-ui.syncer.Results()
	if !res.Final || res.Stored != 55 {
		t.Fatalf("expected offered candidate flushed, got %+v", res)
	}
}

func TestGameOverReportLogsAndRefreshesLeaderboard(t *testing.T) {
	store := testStore(t, "nisal", 10)
	ui := testUI(t, store)
	lines := capture(ui)
	if _, _, err := store.ProposeHighscore("nisal", 99); err != nil {
		t.Fatalf("propose: %v", err)
	}

	ui.handleReport(game.TickReport{Ended: game.EndBounceLimit, Score: 99})
	if len(*lines) != 1 || !strings.Contains((*lines)[0].text, "bounce_limit") {
		t.Fatalf("expected game over log, got %+v", *lines)
	}
	if ui.leaderboard[0].Score != 99 {
		t.Fatalf("expected leaderboard refreshed, got %+v", ui.leaderboard)
	}
}

func TestSyncFailureIsLoggedNotFatal(t *testing.T) {
	ui := testUI(t, nil)
	lines := capture(ui)
	ui.handleSync(profile.SyncResult{Nickname: "x", Err: errors.New("disk full")})
	if len(*lines) != 1 || (*lines)[0].level != rl.LogWarning {
		t.Fatalf("expected one warning, got %+v", *lines)
	}
	if !strings.Contains((*lines)[0].text, "disk full") {
		t.Fatalf("expected error text in log, got %q", (*lines)[0].text)
	}
}

func TestPaletteMatchesConfig(t *testing.T) {
	if len(palette) != game.DefaultConfig().PaletteSize {
		t.Fatalf("expected %d palette colours, got %d", game.DefaultConfig().PaletteSize, len(palette))
	}
}
