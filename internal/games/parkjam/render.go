package parkjam

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/parkjam/internal/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels"
)

// Lot geometry in world units. The exit marker sits at the east wall; the win
// line is the rules' ExitThreshold, checked against target ranges by CheckRules.
const (
	lotHalf   = 6.0 // Ground is 12x12 centered on the origin
	exitX     = 5.8
	exitWidth = 0.3
	exitDepth = 2.0
)

// Minimum screen size for a readable lot.
const (
	minScreenW = 40
	minScreenH = 16
)

// Visual characters for rendering
const (
	groundChar   = '·'
	vehicleChar  = '█'
	exitChar     = '▒'
	selectedChar = '▓'
)

// lotLayout maps world coordinates to screen cells.
type lotLayout struct {
	originCol, originRow int
	colsPerUnit          float64
	rowsPerUnit          float64
	w, h                 int
}

// newLotLayout fits the lot between the HUD (rows 0-1) and the hint line.
// Terminal cells are about twice as tall as wide, so a unit spans two columns per row.
func newLotLayout(screenW, screenH int) lotLayout {
	availW := float64(screenW - 4)
	availH := float64(screenH - 5)
	rows := math.Min(availH/(2*lotHalf), availW/(4*lotHalf))

	l := lotLayout{rowsPerUnit: rows, colsPerUnit: 2 * rows}
	l.w = int(2 * lotHalf * l.colsPerUnit)
	l.h = int(2 * lotHalf * l.rowsPerUnit)
	l.originCol = (screenW - l.w) / 2
	l.originRow = 3 + (screenH-5-l.h)/2
	return l
}

func (l lotLayout) col(x float64) int {
	return l.originCol + int(math.Round((x+lotHalf)*l.colsPerUnit))
}

func (l lotLayout) row(z float64) int {
	return l.originRow + int(math.Round((z+lotHalf)*l.rowsPerUnit))
}

// rect converts a box centered at (x, z) to cells. Never smaller than one cell.
func (l lotLayout) rect(x, z, w, d float64) platformcore.Rect {
	c0, c1 := l.col(x-w/2), l.col(x+w/2)
	r0, r1 := l.row(z-d/2), l.row(z+d/2)
	return platformcore.NewRect(c0, r0, platformcore.Max(c1-c0, 1), platformcore.Max(r1-r0, 1))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "WINDOW TOO SMALL", platformcore.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("NEED %dx%d", minScreenW, minScreenH), platformcore.ColorGray)
		return
	}

	vp := platformcore.NewViewport(core.CanvasW, core.CanvasH, dst.Width(), dst.Height())

	switch p := g.phase.(type) {
	case *MenuPhase:
		g.renderMenu(dst, vp, p)
	case *LevelSelectPhase:
		g.renderLevelSelect(dst, vp, p)
	case *PlayingPhase:
		g.renderLot(dst, p.Session)
		g.renderHint(dst, "ARROWS MOVE  1-9 SELECT CAR  SPACE TARGET  P PAUSE")
	case *PausedPhase:
		g.renderLot(dst, p.Session)
		renderTitle(dst, vp, 200, "PAUSED", platformcore.ColorBrightYellow)
		renderButtons(dst, vp, p.buttonList)
		g.renderHint(dst, "P/ESC RESUME  ↑/↓ SELECT  ENTER CONFIRM")
	case *GameOverPhase:
		g.renderLot(dst, p.Session)
		renderPanel(dst, platformcore.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("SCORE %d", p.Session.Score),
			"",
			"R TO RESTART",
			"ESC TO MENU",
		)
	case *WinPhase:
		g.renderLot(dst, p.Session)
		renderPanel(dst, platformcore.ColorBrightGreen,
			"YOU WIN!",
			fmt.Sprintf("SCORE %d", p.Session.Score),
			fmt.Sprintf("TIME BONUS +%d", p.Bonus),
			"R TO RESTART",
			"ESC TO MENU",
		)
	}
}

func (g *Game) renderMenu(dst *platformcore.Screen, vp platformcore.Viewport, p *MenuPhase) {
	renderTitle(dst, vp, 120, "PARKING JAM", platformcore.ColorBrightRed)
	renderTitle(dst, vp, 190, "GET THE RED CAR TO THE EXIT", platformcore.ColorGray)
	renderButtons(dst, vp, p.buttonList)

	renderTitle(dst, vp, 560, "USE ARROWS TO MOVE CARS", platformcore.ColorWhite)
	renderTitle(dst, vp, 610, "PRESS 1-9 TO SELECT CAR", platformcore.ColorWhite)
	renderTitle(dst, vp, 660, "AVOID COLLISIONS", platformcore.ColorWhite)
	g.renderHint(dst, "↑/↓ SELECT  ENTER CONFIRM  ESC QUIT")
}

func (g *Game) renderLevelSelect(dst *platformcore.Screen, vp platformcore.Viewport, p *LevelSelectPhase) {
	renderTitle(dst, vp, 150, "SELECT LEVEL", platformcore.ColorBrightYellow)
	renderButtons(dst, vp, p.buttonList)

	// Difficulty label under each level button
	all := levels.All()
	for _, b := range p.Buttons {
		if b.Action < 1 || b.Action > len(all) {
			continue
		}
		r := vp.RectToCells(b.X, b.Y, b.W, b.H)
		label := difficultyLabel(all[b.Action-1].Difficulty)
		dst.DrawText(r.X+(r.W-len(label))/2, r.Bottom(), label, difficultyColor(label))
	}
	g.renderHint(dst, "←/→ SELECT  ENTER PLAY  ESC BACK")
}

// renderLot draws the HUD, the ground, the exit and the vehicles.
func (g *Game) renderLot(dst *platformcore.Screen, s *core.Session) {
	g.renderHUD(dst, s)

	l := newLotLayout(dst.Width(), dst.Height())
	ground := platformcore.NewRect(l.originCol, l.originRow, l.w, l.h)

	dst.DrawRect(ground, groundChar, platformcore.ColorDarkGray)
	dst.DrawBox(platformcore.NewRect(ground.X-1, ground.Y-1, ground.W+2, ground.H+2), platformcore.ColorGray)

	// Exit marker, with an opening in the wall
	exit := l.rect(exitX, 0, exitWidth, exitDepth)
	dst.DrawRect(exit, exitChar, platformcore.ColorBrightGreen)
	for y := exit.Y; y < exit.Bottom(); y++ {
		dst.Set(ground.Right(), y, ' ')
	}
	dst.DrawText(ground.Right()+1, exit.Y+exit.H/2, "EXIT", platformcore.ColorBrightGreen)

	for i, v := range s.Vehicles {
		r := l.rect(v.Position.X, v.Position.Z, v.Size.X, v.Size.Z)
		fill := vehicleChar
		if i == s.Selected {
			fill = selectedChar
		}
		dst.DrawRect(r, fill, v.Color)
		if i == s.Selected && r.W >= 2 && r.H >= 2 {
			dst.DrawBox(r, platformcore.ColorBrightWhite)
		}
		if i < 9 {
			dst.SetWithColor(r.X+r.W/2, r.Y+r.H/2, rune('1'+i), platformcore.ColorBrightWhite)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen, s *core.Session) {
	secs := int(s.Remaining)
	timeColor := platformcore.ColorWhite
	if s.Remaining < 10 {
		timeColor = platformcore.ColorBrightRed
	}

	dst.DrawText(1, 0, fmt.Sprintf("TIME %d:%02d", secs/60, secs%60), timeColor)
	dst.DrawText(14, 0, fmt.Sprintf("SCORE %d", s.Score), platformcore.ColorBrightYellow)
	dst.DrawText(28, 0, fmt.Sprintf("LEVEL %d", s.LevelID), platformcore.ColorCyan)
	car := "-"
	if s.Selected >= 0 {
		car = fmt.Sprintf("%d", s.Selected+1)
	}
	dst.DrawText(38, 0, "CAR "+car, platformcore.ColorCyan)

	pause := "P PAUSE"
	dst.DrawText(dst.Width()-len(pause)-1, 0, pause, platformcore.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

// renderHint draws a controls line at the bottom of the screen.
func (g *Game) renderHint(dst *platformcore.Screen, hint string) {
	dst.DrawTextCentered(dst.Height()-1, hint, platformcore.ColorGray)
}

// renderTitle draws text centered horizontally at canvas height y.
func renderTitle(dst *platformcore.Screen, vp platformcore.Viewport, y float64, text string, c platformcore.Color) {
	_, row := vp.ToCell(0, y)
	dst.DrawTextCentered(row, text, c)
}

// renderButtons draws a button group. Only the focused button is highlighted;
// pointer hover moves the focus.
func renderButtons(dst *platformcore.Screen, vp platformcore.Viewport, list buttonList) {
	for i, b := range list.Buttons {
		r := vp.RectToCells(b.X, b.Y, b.W, b.H)
		frame, text := platformcore.ColorGray, platformcore.ColorWhite
		if i == list.Focus {
			frame, text = platformcore.ColorBrightYellow, platformcore.ColorBrightYellow
		}

		dst.DrawRect(r, ' ', platformcore.ColorDefault)
		labelRow := r.Y + r.H/2
		if r.H >= 3 {
			dst.DrawBox(r, frame)
		} else {
			// Too short for a frame: bracket the label instead
			dst.SetWithColor(r.X, labelRow, '[', frame)
			dst.SetWithColor(r.Right()-1, labelRow, ']', frame)
		}
		dst.DrawText(r.X+(r.W-len(b.Label))/2, labelRow, b.Label, text)
	}
}

// renderPanel draws a framed block of centered lines in the middle of the screen.
// The first line is the title.
func renderPanel(dst *platformcore.Screen, c platformcore.Color, lines ...string) {
	w := 0
	for _, line := range lines {
		w = platformcore.Max(w, len([]rune(line)))
	}
	w += 6
	h := len(lines) + 2

	r := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ', platformcore.ColorDefault)
	dst.DrawBox(r, c)

	for i, line := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(r.Y+1+i, line, color)
	}
}

// difficultyLabel turns a level difficulty into its display label.
func difficultyLabel(d string) string {
	switch d {
	case "easy":
		return "EASY"
	case "medium":
		return "MEDIUM"
	case "hard":
		return "HARD"
	default:
		return ""
	}
}

func difficultyColor(label string) platformcore.Color {
	switch label {
	case "EASY":
		return platformcore.ColorGreen
	case "MEDIUM":
		return platformcore.ColorYellow
	default:
		return platformcore.ColorRed
	}
}
