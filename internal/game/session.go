package game

import "math"

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type EndReason int

const (
	EndNone EndReason = iota
	EndFell
	EndBounceLimit
)

func (r EndReason) String() string {
	switch r {
	case EndFell:
		return "fell"
	case EndBounceLimit:
		return "bounce_limit"
	default:
		return "none"
	}
}

// TickReport is what one tick produced. Score and Candidate are filled on
// every tick, including ticks that did not advance the simulation.
type TickReport struct {
	Tick      uint64
	Advanced  bool
	Started   bool
	Restarted bool
	Bounced   bool
	Recycled  int
	Ended     EndReason
	Score     float64
	Candidate int
	Improved  bool
}

// Session owns all mutable game state. Everything is mutated on the
// goroutine calling Tick; input reaches it only through the Controller
// queue.
type Session struct {
	cfg   Config
	input *Controller

	doodler     Doodler
	field       *Field
	score       float64
	bounceCount int
	phase       Phase
	ended       EndReason
	reporter    Reporter
	tick        uint64
	stopped     bool
}

func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:   cfg,
		input: NewController(32),
		field: newField(cfg, seededRNG(sessionSeed(cfg.Seed))),
	}
	s.doodler = cfg.StartPose()
	return s, nil
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Input() *Controller {
	return s.input
}

// Start leaves the NotStarted state and attaches input. Later calls are
// no-ops.
func (s *Session) Start() bool {
	if s.phase != PhaseNotStarted || s.stopped {
		return false
	}
	s.reset()
	s.phase = PhaseRunning
	s.input.Listen()
	return true
}

// Restart resets the doodler, score, bounce count and platform field and
// resumes running.
func (s *Session) Restart() {
	s.reset()
	s.phase = PhaseRunning
	s.input.Listen()
	s.input.DisarmRestartClick()
}

// Stop tears the session down: input is detached and queued intents are
// dropped. Ticks after Stop still report but never advance.
func (s *Session) Stop() {
	s.stopped = true
	s.input.Unlisten()
}

func (s *Session) reset() {
	s.doodler = s.cfg.StartPose()
	s.score = 0
	s.bounceCount = 0
	s.ended = EndNone
	s.field.reset()
}

// SetKnownHighscore feeds the last highscore value read from the store.
func (s *Session) SetKnownHighscore(v int) {
	s.reporter.SetKnown(v)
}

func (s *Session) KnownHighscore() (int, bool) {
	return s.reporter.Known()
}

// Tick runs one frame of game logic: queued input first, then physics,
// platforms, collisions and score. Nothing advances unless the session is
// running, but Tick is meant to be called every frame regardless.
func (s *Session) Tick() TickReport {
	s.tick++
	rep := TickReport{Tick: s.tick}
	s.applyInput(&rep)

	if s.phase == PhaseRunning && !s.stopped {
		rep.Advanced = true
		s.advance(&rep)
	}

	rep.Score = s.score
	rep.Candidate = s.reporter.Candidate(s.score)
	rep.Improved = s.phase != PhaseNotStarted && s.reporter.Improves(s.score)
	return rep
}

func (s *Session) advance(rep *TickReport) {
	d := &s.doodler
	d.stepHorizontal(s.cfg.BoardWidth)
	if d.stepVertical(s.cfg.Gravity, s.cfg.BoardHeight) {
		s.end(EndFell, rep)
		return
	}

	for i := range s.field.platforms {
		s.field.scroll(i, *d)
		if d.VY < 0 || !Overlap(d.Bounds(), s.field.platforms[i].Bounds()) {
			continue
		}
		d.VY = s.cfg.InitialJumpVelocity
		s.bounceCount++
		rep.Bounced = true
		if s.bounceCount >= s.cfg.BounceLimit {
			s.end(EndBounceLimit, rep)
			return
		}
	}

	if n := s.field.recycle(); n > 0 {
		rep.Recycled = n
		s.bounceCount = 0
	}

	s.score += climbPoints(d.VY)
}

func (s *Session) end(reason EndReason, rep *TickReport) {
	s.phase = PhaseGameOver
	s.ended = reason
	rep.Ended = reason
}

func (s *Session) applyInput(rep *TickReport) {
	for {
		intent, ok := s.input.Dequeue()
		if !ok {
			return
		}
		s.apply(intent, rep)
	}
}

func (s *Session) apply(intent Intent, rep *TickReport) {
	switch intent.Kind {
	case IntentStart:
		rep.Started = s.Start()
	case IntentMoveRight:
		s.doodler.steer(s.cfg.KeySpeed, FacingRight)
	case IntentMoveLeft:
		s.doodler.steer(-s.cfg.KeySpeed, FacingLeft)
	case IntentRestart:
		if s.phase == PhaseGameOver {
			s.Restart()
			rep.Restarted = true
		}
	case IntentSwipe:
		s.applySwipe(intent.DX, intent.DY)
	case IntentClick:
		if s.phase == PhaseGameOver && s.cfg.RestartButton().Contains(intent.X, intent.Y) {
			s.Restart()
			rep.Restarted = true
		}
	}
}

// applySwipe maps a finished touch gesture. Horizontal swipes steer faster
// than the keyboard; an upward swipe is a boost jump that only fires while
// the doodler is vertically at rest.
func (s *Session) applySwipe(dx, dy float64) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			s.doodler.steer(s.cfg.SwipeSpeed, FacingRight)
		} else {
			s.doodler.steer(-s.cfg.SwipeSpeed, FacingLeft)
		}
		return
	}
	if dy < 0 && s.phase != PhaseGameOver && s.doodler.VY == 0 {
		s.doodler.VY = 2 * s.cfg.InitialJumpVelocity
		s.bounceCount = 0
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Started() bool {
	return s.phase != PhaseNotStarted
}

func (s *Session) GameOver() bool {
	return s.phase == PhaseGameOver
}

func (s *Session) EndReason() EndReason {
	return s.ended
}

func (s *Session) Doodler() Doodler {
	return s.doodler
}

func (s *Session) Platforms() []Platform {
	return s.field.Platforms()
}

func (s *Session) Score() float64 {
	return s.score
}

func (s *Session) BounceCount() int {
	return s.bounceCount
}

func (s *Session) PaletteIndex() int {
	return PaletteIndex(s.score, s.cfg)
}
