package gui

import (
	"math"

	"github.com/appengine-ltd/doodle-jump/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// tapSlop is how far a pointer may travel and still count as a tap.
const tapSlop = 6.0

type keyBinding struct {
	key  int32
	kind game.IntentKind
}

var keyBindings = []keyBinding{
	{key: rl.KeyRight, kind: game.IntentMoveRight},
	{key: rl.KeyD, kind: game.IntentMoveRight},
	{key: rl.KeyLeft, kind: game.IntentMoveLeft},
	{key: rl.KeyA, kind: game.IntentMoveLeft},
	{key: rl.KeySpace, kind: game.IntentRestart},
}

// startButton is the play button on the start overlay, in board units.
var startButton = game.Rect{X: 100, Y: 250, Width: 160, Height: 56}

// pollInput turns this frame's raylib input into intents. The session's
// controller decides what is accepted in the current state.
func (ui *gameUI) pollInput() {
	in := ui.session.Input()

	if rl.IsKeyPressed(rl.KeyQ) && !ui.session.Started() {
		ui.quit = true
		return
	}
	if !ui.session.Started() && (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace)) {
		in.EnqueueIntent(game.Intent{Kind: game.IntentStart})
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) || rl.IsKeyPressedRepeat(b.key) {
			in.EnqueueIntent(game.Intent{Kind: b.kind})
		}
	}

	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		ui.gesture.press(x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		if intent, ok := ui.gesture.release(x, y); ok {
			ui.routePointer(intent)
		}
	}
}

// routePointer sends a finished gesture to the session, turning taps on the
// start overlay's play button into a start.
func (ui *gameUI) routePointer(intent game.Intent) {
	in := ui.session.Input()
	if intent.Kind == game.IntentClick && !ui.session.Started() {
		if startButton.Contains(intent.X, intent.Y) {
			in.EnqueueIntent(game.Intent{Kind: game.IntentStart})
		}
		return
	}
	in.EnqueueIntent(intent)
}

// gestureTracker follows one pointer from press to release. Touch input
// arrives through raylib's mouse emulation, so one tracker serves both.
type gestureTracker struct {
	active bool
	startX float64
	startY float64
}

func (g *gestureTracker) press(x, y float64) {
	g.active = true
	g.startX = x
	g.startY = y
}

// release ends the gesture: short moves are taps reported as a click at
// the release point, anything longer is a swipe.
func (g *gestureTracker) release(x, y float64) (game.Intent, bool) {
	if !g.active {
		return game.Intent{}, false
	}
	g.active = false
	dx, dy := x-g.startX, y-g.startY
	if math.Abs(dx) <= tapSlop && math.Abs(dy) <= tapSlop {
		return game.Click(x, y), true
	}
	return game.Swipe(dx, dy), true
}
