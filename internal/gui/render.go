package gui

import (
	"fmt"
	"strconv"

	"github.com/appengine-ltd/doodle-jump/internal/game"
	"github.com/appengine-ltd/doodle-jump/internal/gui/sprites"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// palette is indexed by game.PaletteIndex; it must hold Config.PaletteSize
// entries.
var palette = []rl.Color{
	rl.NewColor(255, 199, 144, 255),
	rl.NewColor(179, 244, 255, 255),
	rl.NewColor(145, 248, 176, 255),
	rl.NewColor(250, 199, 255, 255),
	rl.NewColor(220, 220, 220, 255),
}

var (
	colorScore   = rl.Black
	colorOverlay = rl.NewColor(63, 0, 0, 153)
	colorButton  = rl.NewColor(72, 78, 129, 255)
	colorText    = rl.NewColor(40, 40, 60, 255)
	colorDim     = rl.NewColor(90, 90, 110, 255)
)

func (ui *gameUI) draw() {
	if !ui.session.Started() {
		ui.drawStart()
		return
	}
	ui.drawBoard()
	if ui.session.GameOver() {
		ui.drawGameOver()
		return
	}
	ui.session.Input().DisarmRestartClick()
}

func (ui *gameUI) drawBoard() {
	rl.ClearBackground(palette[ui.session.PaletteIndex()%len(palette)])

	d := ui.session.Doodler()
	id := sprites.DoodlerRight
	if d.Facing == game.FacingLeft {
		id = sprites.DoodlerLeft
	}
	ui.drawSprite(id, d.Bounds())

	for _, p := range ui.session.Platforms() {
		ui.drawSprite(sprites.Platform, p.Bounds())
	}

	rl.DrawText(strconv.Itoa(int(ui.session.Score())), 5, 4, 16, colorScore)
}

// drawGameOver paints the frozen board's overlay. The restart click is
// only live while its icon is actually on screen.
func (ui *gameUI) drawGameOver() {
	rl.DrawRectangle(0, 0, ui.width, ui.height, colorOverlay)

	in := ui.session.Input()
	btn := ui.session.Config().RestartButton()
	if ui.sprites.Ready(sprites.Restart) {
		ui.drawSprite(sprites.Restart, btn)
		if in.ArmRestartClick() {
			ui.logf(rl.LogDebug, "input: restart click armed")
		}
	} else {
		in.DisarmRestartClick()
	}

	text := fmt.Sprintf("Your Highscore: %d", ui.localHighscore)
	tw := rl.MeasureText(text, 20)
	rl.DrawText(text, (ui.width-tw)/2, ui.height/2+50-16, 20, rl.White)

	hint := "Space or tap the icon to restart"
	hw := rl.MeasureText(hint, 14)
	rl.DrawText(hint, (ui.width-hw)/2, ui.height/2+80, 14, rl.Fade(rl.White, 0.8))
}

func (ui *gameUI) drawStart() {
	rl.ClearBackground(palette[0])
	board := rl.NewRectangle(0, 0, float32(ui.width), float32(ui.height))

	drawTextCentered("doodle jump", board, 60, 36, colorText)
	if ui.nickname != "" {
		drawTextCentered(ui.nickname, board, 110, 20, colorButton)
	} else {
		drawTextCentered("playing as guest", board, 110, 18, colorDim)
	}
	drawTextCentered("Only five jumps in a row on one platform!", board, 150, 13, colorDim)

	btn := rl.NewRectangle(float32(startButton.X), float32(startButton.Y), float32(startButton.Width), float32(startButton.Height))
	rl.DrawRectangleRounded(btn, 0.4, 8, colorButton)
	drawTextCentered("Play", btn, 16, 24, rl.White)

	drawTextCentered("Leaderboard", board, 340, 20, colorText)
	if len(ui.leaderboard) == 0 {
		drawTextCentered("No Data", board, 372, 16, colorDim)
	}
	for i, e := range ui.leaderboard {
		y := int32(372 + i*24)
		rl.DrawText(fmt.Sprintf("%d.", i+1), 70, y, 16, colorText)
		rl.DrawText(e.Nickname, 100, y, 16, colorText)
		score := strconv.Itoa(e.Score)
		rl.DrawText(score, 290-rl.MeasureText(score, 16), y, 16, colorText)
	}

	drawTextCentered("Enter to play, arrows or A/D to steer, swipe on touch", board, ui.height-30, 11, colorDim)
	if ui.cfg.Version != "" {
		rl.DrawText("v"+ui.cfg.Version, 5, 5, 10, colorDim)
	}
}

// drawSprite draws a ready sprite stretched over r. Sprites still loading
// are skipped for this frame.
func (ui *gameUI) drawSprite(id sprites.ID, r game.Rect) {
	tex, ok := ui.sprites.Texture(id)
	if !ok {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}
