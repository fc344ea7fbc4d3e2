package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/appengine-ltd/doodle-jump/internal/game"
	"github.com/appengine-ltd/doodle-jump/internal/gui/sprites"
	"github.com/appengine-ltd/doodle-jump/internal/profile"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	AssetsDir    string
	Seed         int64
	FPS          int32
	SyncInterval time.Duration
	NoSync       bool
	Verbose      bool
}

type App struct {
	cfg   AppConfig
	store *profile.Store
}

func NewApp(cfg AppConfig, store *profile.Store) *App {
	return &App{cfg: cfg, store: store}
}

const leaderboardSize = 5

type gameUI struct {
	cfg AppConfig

	session *game.Session
	sprites *sprites.Set
	store   *profile.Store
	scores  *profile.Highscores
	syncer  *profile.Syncer

	width  int32
	height int32
	quit   bool

	nickname       string
	localHighscore int
	leaderboard    []profile.Entry
	leaderboardAt  time.Time

	gesture gestureTracker
	last    game.TickReport

	logf func(level rl.TraceLogLevel, format string, args ...any)
	now  func() time.Time
}

func (a *App) Run(ctx context.Context) error {
	ui, err := newGameUI(a.cfg, a.store)
	if err != nil {
		return err
	}
	return ui.Run(ctx)
}

func newGameUI(cfg AppConfig, store *profile.Store) (*gameUI, error) {
	gcfg := game.DefaultConfig()
	gcfg.Seed = cfg.Seed
	session, err := game.NewSession(gcfg)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	ui := &gameUI{
		cfg:     cfg,
		session: session,
		sprites: sprites.NewSet(cfg.AssetsDir),
		store:   store,
		width:   int32(gcfg.BoardWidth),
		height:  int32(gcfg.BoardHeight),
		logf:    rl.TraceLog,
		now:     time.Now,
	}

	if store != nil {
		if nick, ok := store.Current(); ok {
			ui.nickname = nick
			ui.scores = store.Highscores(nick)
			if hs, ok := ui.scores.Read(); ok {
				ui.localHighscore = hs
				session.SetKnownHighscore(hs)
			}
			if !cfg.NoSync {
				ui.syncer = profile.NewSyncer(ui.scores, cfg.SyncInterval)
			}
		}
	}
	ui.refreshLeaderboard()
	return ui, nil
}

func (ui *gameUI) Run(ctx context.Context) error {
	if ui.cfg.Verbose {
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}
	rl.InitWindow(ui.width, ui.height, "doodle-jump")
	rl.SetTargetFPS(ui.cfg.FPS)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	ui.sprites.Load()
	if ui.syncer != nil {
		ui.syncer.Start(ctx)
	}

	// One logical tick per displayed frame. The loop keeps ticking after
	// game over so the restart input stays live; leaving it is the only
	// way to stop the session.
	for !ui.quit && !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		ui.update()

		rl.BeginDrawing()
		ui.draw()
		rl.EndDrawing()
	}

	ui.teardown()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update() {
	ui.sprites.Poll()
	ui.pollSync()
	ui.pollInput()
	ui.handleReport(ui.session.Tick())
	if ui.now().Sub(ui.leaderboardAt) >= profile.DefaultSyncInterval {
		ui.refreshLeaderboard()
	}
}

func (ui *gameUI) handleReport(rep game.TickReport) {
	ui.last = rep
	if rep.Started {
		ui.logf(rl.LogInfo, "session: started (player %q)", ui.nickname)
	}
	if rep.Restarted {
		ui.logf(rl.LogInfo, "session: restarted")
	}
	if rep.Ended != game.EndNone {
		ui.logf(rl.LogInfo, "session: game over (%s) at score %d", rep.Ended, int(rep.Score))
		ui.refreshLeaderboard()
	}
	if rep.Improved {
		ui.localHighscore = rep.Candidate
		ui.session.SetKnownHighscore(rep.Candidate)
		ui.syncer.Offer(rep.Candidate)
	}
}

func (ui *gameUI) pollSync() {
	if ui.syncer == nil {
		return
	}
	for {
		select {
		case res := <-ui.syncer.Results():
			ui.handleSync(res)
		default:
			return
		}
	}
}

func (ui *gameUI) handleSync(res profile.SyncResult) {
	if res.Err != nil {
		ui.logf(rl.LogWarning, "highscore sync for %q failed: %v", res.Nickname, res.Err)
		return
	}
	if res.Wrote {
		ui.logf(rl.LogInfo, "highscore sync: stored %d for %q", res.Stored, res.Nickname)
		ui.refreshLeaderboard()
	}
}

func (ui *gameUI) refreshLeaderboard() {
	ui.leaderboardAt = ui.now()
	if ui.store == nil {
		ui.leaderboard = nil
		return
	}
	ui.leaderboard = ui.store.TopN(leaderboardSize)
}

// teardown detaches input and stops the highscore sync, flushing the last
// candidate. Sprites are released while the GL context still exists.
func (ui *gameUI) teardown() {
	ui.session.Stop()
	if ui.syncer != nil {
		ui.syncer.Stop()
		ui.pollSync()
	}
	ui.sprites.Unload()
}
