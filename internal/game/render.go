package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lilyhop/internal/config"
	"github.com/vovakirdan/lilyhop/internal/core"
)

// Visual characters for rendering
const (
	PadChar   = '█'
	FrogChar  = '@'
	WaterChar = '~'
	BankChar  = '▀'
)

// frogGroundOffset is the frog's distance from the bottom of the field while
// grounded, in field units.
const frogGroundOffset = 50

// HUD carries the session details shown around the field.
type HUD struct {
	Nickname  string
	HighScore int
	Flash     string // Short-lived message, e.g. "+5 gold!"
}

// Render projects a snapshot onto the screen. Row 0 is the status line and
// the field fills the rest, scaled independently on each axis. Rendering is
// a pure function of its inputs.
func Render(dst *core.Screen, cfg config.Config, snap Snapshot, hud HUD) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < 2 {
		return
	}

	v := newViewport(cfg, dst.Width(), dst.Height())

	// Water lane the pads travel along
	laneTop := v.row(cfg.Field.SpawnY)
	laneBottom := v.row(cfg.Field.SpawnY + cfg.Lily.Height)
	for y := laneTop; y <= laneBottom; y++ {
		dst.DrawHLine(0, y, dst.Width(), WaterChar, core.ColorBlue)
	}

	// Bank under the frog
	bankY := v.row(cfg.Field.Height - frogGroundOffset)
	dst.DrawHLine(0, bankY+1, dst.Width(), BankChar, core.ColorGreen)

	if snap.HasPad {
		drawPad(dst, v, cfg, snap.Pad)
	}
	drawFrog(dst, v, cfg, snap)
	drawHUD(dst, snap, hud)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "LILY HOP", "Press SPACE to start")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE to play again", snap.Score))
	}
}

// viewport maps field units to screen cells.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(cfg config.Config, w, h int) viewport {
	rows := h - 1 // Row 0 is the HUD
	return viewport{
		sx:   float64(w) / cfg.Field.Width,
		sy:   float64(rows) / cfg.Field.Height,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(math.Floor(y*v.sy)), 0, v.rows-1)
}

func drawPad(dst *core.Screen, v viewport, cfg config.Config, pad Pad) {
	color := core.ColorBrightGreen
	switch pad.Kind {
	case KindGold:
		color = core.ColorBrightYellow
	case KindHazard:
		color = core.ColorGray
	}

	left := v.col(pad.X)
	right := max(v.col(pad.X+cfg.Lily.Width), left+1)
	top := v.row(cfg.Field.SpawnY)
	bottom := v.row(cfg.Field.SpawnY + cfg.Lily.Height)
	dst.DrawRect(core.NewRect(left, top, right-left, bottom-top+1), PadChar, color)
}

func drawFrog(dst *core.Screen, v viewport, cfg config.Config, snap Snapshot) {
	lift := cfg.Frog.JumpHeight * math.Sin(snap.JumpProgress(cfg.JumpDuration())*math.Pi/2)
	bottomY := cfg.Field.Height - frogGroundOffset - lift
	topY := bottomY - cfg.Frog.Height

	left := v.col(cfg.FrogX())
	right := max(v.col(cfg.FrogX()+cfg.Frog.Width), left+1)
	top := v.row(topY)
	bottom := max(v.row(bottomY)-1, top)
	dst.DrawRect(core.NewRect(left, top, right-left, bottom-top+1), FrogChar, core.ColorGreen)
}

func drawHUD(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	right := ""
	if hud.Nickname != "" {
		right = fmt.Sprintf("%s  best %d", hud.Nickname, hud.HighScore)
	}
	if right != "" {
		dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
	}
	if hud.Flash != "" {
		dst.DrawTextCentered(0, hud.Flash, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
