package game

import "math"

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentStart
	IntentMoveRight
	IntentMoveLeft
	IntentRestart
	IntentSwipe
	IntentClick
)

// Intent is one discrete input event. Swipes carry the gesture delta in DX
// and DY; clicks carry the board position in X and Y.
type Intent struct {
	Kind IntentKind
	DX   float64
	DY   float64
	X    float64
	Y    float64
}

func Swipe(dx, dy float64) Intent {
	return Intent{Kind: IntentSwipe, DX: dx, DY: dy}
}

func Click(x, y float64) Intent {
	return Intent{Kind: IntentClick, X: x, Y: y}
}

type IntentSink interface {
	EnqueueIntent(Intent)
}

// Controller queues input for the session. It never touches game state
// itself: queued intents are applied by Session.Tick on the tick goroutine.
// Keyboard and touch input is accepted only while listening, and clicks
// only while the restart click is armed.
type Controller struct {
	ch           chan Intent
	listening    bool
	restartArmed bool
}

func NewController(size int) *Controller {
	if size < 1 {
		size = 16
	}
	return &Controller{ch: make(chan Intent, size)}
}

// Listen attaches the keyboard and touch handlers. Calling it twice is a
// no-op.
func (c *Controller) Listen() {
	c.listening = true
}

// Unlisten detaches every handler and drops queued input.
func (c *Controller) Unlisten() {
	c.listening = false
	c.restartArmed = false
	c.drain()
}

func (c *Controller) Listening() bool {
	return c.listening
}

// ArmRestartClick attaches the restart click handler. It reports whether
// the handler was newly attached.
func (c *Controller) ArmRestartClick() bool {
	if c.restartArmed {
		return false
	}
	c.restartArmed = true
	return true
}

func (c *Controller) DisarmRestartClick() {
	c.restartArmed = false
}

func (c *Controller) RestartClickArmed() bool {
	return c.restartArmed
}

func (c *Controller) EnqueueIntent(intent Intent) {
	if c == nil || !c.accepts(intent) {
		return
	}
	select {
	case c.ch <- intent:
	default:
		// Drop only when queue is saturated; a frame never produces that much input.
	}
}

func (c *Controller) accepts(intent Intent) bool {
	switch intent.Kind {
	case IntentStart:
		return !c.listening
	case IntentClick:
		return c.restartArmed
	case IntentMoveRight, IntentMoveLeft, IntentRestart:
		return c.listening
	case IntentSwipe:
		if !c.listening {
			return false
		}
		if intent.DX == 0 && intent.DY == 0 {
			return false
		}
		return !math.IsNaN(intent.DX) && !math.IsNaN(intent.DY)
	default:
		return false
	}
}

func (c *Controller) Dequeue() (Intent, bool) {
	if c == nil {
		return Intent{}, false
	}
	select {
	case intent := <-c.ch:
		return intent, true
	default:
		return Intent{}, false
	}
}

func (c *Controller) drain() {
	for {
		if _, ok := c.Dequeue(); !ok {
			return
		}
	}
}
