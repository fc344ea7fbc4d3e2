package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/appengine-ltd/doodle-jump/internal/game"
	"github.com/appengine-ltd/doodle-jump/internal/profile"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion  bool
	showScores   bool
	noSync       bool
	verbose      bool
	nickname     string
	register     string
	forget       string
	dataPath     string
	assetsDir    string
	seed         int64
	fps          int
	autoplay     int
	syncInterval time.Duration
}

func parseFlags() options {
	var o options
	flag.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&o.showScores, "scores", false, "print the top 5 leaderboard and exit")
	flag.BoolVar(&o.noSync, "no-sync", false, "never write highscores to the profile file")
	flag.BoolVar(&o.verbose, "verbose", false, "log at info level instead of warnings only")
	flag.StringVar(&o.nickname, "nickname", "", "play as this registered nickname")
	flag.StringVar(&o.register, "register", "", "register a new nickname and play as it")
	flag.StringVar(&o.forget, "forget", "", "delete a nickname and its highscore, then exit")
	flag.StringVar(&o.dataPath, "data", profile.DefaultFile, "profile file path")
	flag.StringVar(&o.assetsDir, "assets", "assets/sprites", "sprite directory (missing files use built-in art)")
	flag.Int64Var(&o.seed, "seed", 0, "platform layout seed (0 = random)")
	flag.IntVar(&o.fps, "fps", 60, "target frames per second")
	flag.IntVar(&o.autoplay, "autoplay", 0, "run N ticks headless with the autopilot and exit")
	flag.DurationVar(&o.syncInterval, "sync-interval", profile.DefaultSyncInterval, "highscore sync interval")
	flag.Parse()
	return o
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Doodle Jump %s (%s) %s\n", version, commit, date)
}

// runCommands handles the profile and headless flags. It reports whether
// the process should exit instead of opening the game window.
func runCommands(w io.Writer, store *profile.Store, o options) (bool, error) {
	if name := strings.TrimSpace(o.forget); name != "" {
		if err := store.Forget(name); err != nil {
			return true, err
		}
		fmt.Fprintf(w, "Removed %s and its highscore.\n", name)
		return true, nil
	}
	if name := strings.TrimSpace(o.register); name != "" {
		p, err := store.Register(name)
		if err != nil {
			return true, err
		}
		fmt.Fprintf(w, "Registered %s.\n", p.Nickname)
	} else if name := strings.TrimSpace(o.nickname); name != "" {
		if _, err := store.Activate(name); err != nil {
			return true, err
		}
	}
	if o.showScores {
		printScores(w, store)
		return true, nil
	}
	if o.autoplay > 0 {
		return true, runAutoplay(w, store, o)
	}
	return false, nil
}

func printScores(w io.Writer, store *profile.Store) {
	top := store.TopN(5)
	if len(top) == 0 {
		fmt.Fprintln(w, "No Data")
		return
	}
	for i, e := range top {
		fmt.Fprintf(w, "%d. %-20s %d\n", i+1, e.Nickname, e.Score)
	}
}

func runAutoplay(w io.Writer, store *profile.Store, o options) error {
	cfg := game.DefaultConfig()
	cfg.Seed = o.seed
	s, err := game.NewSession(cfg)
	if err != nil {
		return err
	}
	res := game.Autoplay(s, o.autoplay)
	fmt.Fprintf(w, "ticks=%d runs=%d bounces=%d recycled=%d best=%d last=%d\n",
		res.Ticks, res.Runs, res.Bounces, res.Recycled, int(res.BestScore), int(res.LastScore))
	reasons := make([]string, 0, len(res.Ends))
	for r, n := range res.Ends {
		reasons = append(reasons, fmt.Sprintf("%s=%d", r, n))
	}
	sort.Strings(reasons)
	if len(reasons) > 0 {
		fmt.Fprintf(w, "ends: %s\n", strings.Join(reasons, " "))
	}

	if o.noSync {
		return nil
	}
	nick, ok := store.Current()
	if !ok {
		return nil
	}
	wrote, stored, err := store.Highscores(nick).ProposeWrite(int(res.BestScore))
	if err != nil {
		return fmt.Errorf("store highscore: %w", err)
	}
	if wrote {
		fmt.Fprintf(w, "New highscore for %s: %d\n", nick, stored)
	}
	return nil
}

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
