package parkjam

import "github.com/vovakirdan/parkjam/internal/games/parkjam/core"

// Phase is the active screen of the game. Each variant carries only the data
// it needs; the Game switches on the concrete type.
type Phase interface {
	Name() string
}

// buttonPhase is implemented by phases that show a button list.
type buttonPhase interface {
	Phase
	list() *buttonList
}

// buttonList is a button group with a keyboard focus cursor.
type buttonList struct {
	Buttons []core.Button
	Focus   int
}

func newButtonList(buttons []core.Button) buttonList {
	return buttonList{Buttons: buttons}
}

// move shifts the focus cursor by delta, wrapping around the list.
func (l *buttonList) move(delta int) {
	n := len(l.Buttons)
	if n == 0 {
		return
	}
	l.Focus = ((l.Focus+delta)%n + n) % n
}

// hover updates hover flags and moves focus to the first button under (x, y),
// so pointer and keyboard share one highlighted button.
func (l *buttonList) hover(x, y float64) {
	core.UpdateHover(l.Buttons, x, y)
	for i, b := range l.Buttons {
		if b.Hovered {
			l.Focus = i
			return
		}
	}
}

// focused returns the action of the focused button.
func (l *buttonList) focused() (int, bool) {
	if l.Focus < 0 || l.Focus >= len(l.Buttons) {
		return 0, false
	}
	return l.Buttons[l.Focus].Action, true
}

// MenuPhase is the title screen.
type MenuPhase struct {
	buttonList
}

// LevelSelectPhase lists the levels.
type LevelSelectPhase struct {
	buttonList
}

// PlayingPhase runs the simulation.
type PlayingPhase struct {
	Session *core.Session
}

// PausedPhase freezes a running session.
type PausedPhase struct {
	buttonList
	Session *core.Session
}

// GameOverPhase is entered when the countdown runs out.
type GameOverPhase struct {
	Session *core.Session
}

// WinPhase is entered when the target reaches the exit.
type WinPhase struct {
	Session *core.Session
	Bonus   int // Time bonus already added to the session score
}

// Name returns the phase identifier.
func (*MenuPhase) Name() string { return "menu" }

// Name returns the phase identifier.
func (*LevelSelectPhase) Name() string { return "level_select" }

// Name returns the phase identifier.
func (*PlayingPhase) Name() string { return "playing" }

// Name returns the phase identifier.
func (*PausedPhase) Name() string { return "paused" }

// Name returns the phase identifier.
func (*GameOverPhase) Name() string { return "game_over" }

// Name returns the phase identifier.
func (*WinPhase) Name() string { return "win" }

func (p *MenuPhase) list() *buttonList        { return &p.buttonList }
func (p *LevelSelectPhase) list() *buttonList { return &p.buttonList }
func (p *PausedPhase) list() *buttonList      { return &p.buttonList }

// session returns the session carried by the phase, if any.
func session(p Phase) *core.Session {
	switch p := p.(type) {
	case *PlayingPhase:
		return p.Session
	case *PausedPhase:
		return p.Session
	case *GameOverPhase:
		return p.Session
	case *WinPhase:
		return p.Session
	default:
		return nil
	}
}
