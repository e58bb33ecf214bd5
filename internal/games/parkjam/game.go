// Package parkjam provides the Parking Jam sliding-block puzzle.
// The player slides axis-locked vehicles around a lot until the target
// vehicle reaches the exit, against a countdown.
package parkjam

import (
	"fmt"

	platformcore "github.com/vovakirdan/parkjam/internal/core"
	"github.com/vovakirdan/parkjam/internal/config"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels"
	"github.com/vovakirdan/parkjam/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "parkjam"

// Game implements the Parking Jam state machine.
type Game struct {
	rules core.Rules
	phase Phase
	held  core.Held // Latched direction keys, tracked in every phase
	quit  bool
	tick  uint64

	events []platformcore.Event // Events of the current Step
}

// Package-level variables for configuration
var (
	defaultRules = core.DefaultRules()
	startLevel   int
)

// SetRules sets the rules used by games created afterwards.
func SetRules(r core.Rules) {
	defaultRules = r
}

// SetStartLevel makes new games skip the menus and start on the given level
// (1-indexed). 0 means start at the main menu.
func SetStartLevel(level int) {
	startLevel = level
}

// RulesFromConfig converts loaded configuration into simulation rules.
func RulesFromConfig(cfg config.RulesConfig) core.Rules {
	return core.Rules{
		Speed:              cfg.Movement.Speed,
		CollisionPenalty:   cfg.Scoring.CollisionPenalty,
		PenaltyCooldown:    cfg.Scoring.PenaltyCooldown,
		ExitThreshold:      cfg.Exit.Threshold,
		TimeBonusPerSecond: cfg.Scoring.TimeBonusPerSecond,
	}
}

// CheckRules reports rules that would make a built-in level unwinnable.
// The win test compares the target's center with ExitThreshold, so the
// threshold must lie within every target's movement range.
func CheckRules(r core.Rules) error {
	for _, lvl := range levels.All() {
		t := lvl.TargetIndex()
		if t < 0 {
			continue
		}
		if limit := lvl.Vehicles[t].MaxPos; r.ExitThreshold > limit {
			return fmt.Errorf("parkjam: exit threshold %v is out of reach in level %d (target stops at %v)",
				r.ExitThreshold, lvl.ID, limit)
		}
	}
	return nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Parking Jam game using the current package rules.
func New() *Game {
	return NewWithRules(defaultRules)
}

// NewWithRules creates a new game with explicit rules.
func NewWithRules(r core.Rules) *Game {
	g := &Game{rules: r}
	g.phase = newMenuPhase()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Parking Jam"
}

// Rules returns the rules in effect.
func (g *Game) Rules() core.Rules {
	return g.rules
}

// Canvas returns the virtual canvas size that pointer coordinates are expressed in.
func (g *Game) Canvas() (w, h float64) {
	return core.CanvasW, core.CanvasH
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Reset puts the game at the main menu, or directly into the start level if one is set.
// Layout is derived from the screen passed to Render, so the runtime config is not kept.
func (g *Game) Reset(_ platformcore.RuntimeConfig) {
	g.tick = 0
	g.quit = false
	g.held = core.Held{}
	g.events = nil
	g.phase = newMenuPhase()

	if startLevel > 0 {
		g.startLevel(startLevel)
		g.events = nil
	}
}

func newMenuPhase() *MenuPhase {
	return &MenuPhase{buttonList: newButtonList(menuButtons())}
}

// Step processes the frame's input events in order, then advances the
// simulation by dt seconds if a level is being played.
func (g *Game) Step(in platformcore.InputFrame, dt float64) platformcore.StepResult {
	g.tick++
	g.events = g.events[:0]

	for _, ev := range in.Events {
		if g.quit {
			break
		}
		g.handleEvent(ev)
	}

	if p, ok := g.phase.(*PlayingPhase); ok && !g.quit {
		g.simulate(p, dt)
	}

	events := make([]platformcore.Event, len(g.events))
	copy(events, g.events)
	return platformcore.StepResult{State: g.State(), Events: events}
}

// handleEvent dispatches one input event to the active phase.
func (g *Game) handleEvent(ev platformcore.InputEvent) {
	switch ev.Kind {
	case platformcore.InputPress:
		g.latch(ev.Action, true)
		g.handleAction(ev.Action)
	case platformcore.InputRelease:
		g.latch(ev.Action, false)
	case platformcore.InputPointerMove:
		if bp, ok := g.phase.(buttonPhase); ok {
			bp.list().hover(ev.X, ev.Y)
		}
	case platformcore.InputPointerClick:
		if ev.Button != platformcore.MouseLeft {
			return
		}
		if bp, ok := g.phase.(buttonPhase); ok {
			if action, hit := core.HitTest(bp.list().Buttons, ev.X, ev.Y); hit {
				g.activate(action)
			}
		}
	}
}

// latch records direction key state.
func (g *Game) latch(a platformcore.Action, down bool) {
	switch a {
	case platformcore.ActionUp:
		g.held.Up = down
	case platformcore.ActionDown:
		g.held.Down = down
	case platformcore.ActionLeft:
		g.held.Left = down
	case platformcore.ActionRight:
		g.held.Right = down
	}
}

// handleAction applies a key press to the active phase.
func (g *Game) handleAction(a platformcore.Action) {
	if a == platformcore.ActionQuit {
		g.requestQuit()
		return
	}

	switch p := g.phase.(type) {
	case *MenuPhase:
		if a == platformcore.ActionBack {
			g.requestQuit()
			return
		}
		g.navigate(p, a)

	case *LevelSelectPhase:
		if a == platformcore.ActionBack {
			g.toMenu()
			return
		}
		g.navigate(p, a)

	case *PlayingPhase:
		switch a {
		case platformcore.ActionPause, platformcore.ActionBack:
			g.phase = &PausedPhase{buttonList: newButtonList(pauseButtons()), Session: p.Session}
			g.emit(platformcore.EventPaused, p.Session)
		case platformcore.ActionSelectTarget:
			if p.Session.SelectTarget() {
				g.emit(platformcore.EventVehicleSelected, p.Session)
			}
		default:
			if n, ok := a.VehicleNumber(); ok && p.Session.Select(n-1) {
				g.emit(platformcore.EventVehicleSelected, p.Session)
			}
		}

	case *PausedPhase:
		if a == platformcore.ActionPause || a == platformcore.ActionBack {
			g.resume(p)
			return
		}
		g.navigate(p, a)

	case *GameOverPhase:
		g.handleFinished(p.Session, a)

	case *WinPhase:
		g.handleFinished(p.Session, a)
	}
}

// navigate moves the focus cursor or activates the focused button.
func (g *Game) navigate(p buttonPhase, a platformcore.Action) {
	list := p.list()
	switch a {
	case platformcore.ActionUp, platformcore.ActionLeft:
		list.move(-1)
	case platformcore.ActionDown, platformcore.ActionRight:
		list.move(1)
	case platformcore.ActionConfirm:
		if action, ok := list.focused(); ok {
			g.activate(action)
		}
	}
}

// activate runs a button action of the active phase.
func (g *Game) activate(action int) {
	switch p := g.phase.(type) {
	case *MenuPhase:
		switch action {
		case ActionStart:
			g.phase = &LevelSelectPhase{buttonList: newButtonList(levelButtons(levels.Count()))}
		case ActionExit:
			g.requestQuit()
		}

	case *LevelSelectPhase:
		if action == ActionBack {
			g.toMenu()
			return
		}
		g.startLevel(action)

	case *PausedPhase:
		switch action {
		case ActionResume:
			g.resume(p)
		case ActionMainMenu:
			g.toMenu()
		}
	}
}

// handleFinished handles keys on the game over and win screens.
func (g *Game) handleFinished(s *core.Session, a platformcore.Action) {
	switch a {
	case platformcore.ActionRestart:
		g.startLevel(s.LevelID)
	case platformcore.ActionBack:
		g.toMenu()
	}
}

// startLevel loads a level and enters Playing with a fresh session.
func (g *Game) startLevel(id int) {
	s := core.NewSession(levels.Load(id))
	g.phase = &PlayingPhase{Session: s}
	g.held = core.Held{}
	g.emit(platformcore.EventLevelStarted, s)
}

func (g *Game) resume(p *PausedPhase) {
	g.phase = &PlayingPhase{Session: p.Session}
	g.emit(platformcore.EventResumed, p.Session)
}

func (g *Game) toMenu() {
	g.phase = newMenuPhase()
	g.emit(platformcore.EventMenu, nil)
}

func (g *Game) requestQuit() {
	g.quit = true
	g.emit(platformcore.EventQuit, session(g.phase))
}

// simulate advances a running level by dt.
// Countdown expiry takes precedence over a win reached in the same frame.
func (g *Game) simulate(p *PlayingPhase, dt float64) {
	s := p.Session
	collisions := s.Collisions

	outcome := core.TryMove(s, g.held, dt, g.rules)
	if s.Collisions > collisions {
		g.emit(platformcore.EventCollision, s)
	}

	bonus := 0
	if outcome == core.MovedAndWon {
		bonus = s.TimeBonus(g.rules)
	}

	if s.Tick(dt) {
		g.phase = &GameOverPhase{Session: s}
		g.emit(platformcore.EventGameOver, s)
		return
	}

	if outcome == core.MovedAndWon {
		s.Score += bonus
		g.phase = &WinPhase{Session: s, Bonus: bonus}
		g.emit(platformcore.EventWin, s)
	}
}

// emit records a domain event for the platform.
func (g *Game) emit(kind platformcore.EventKind, s *core.Session) {
	ev := platformcore.Event{Kind: kind, Vehicle: -1}
	if s != nil {
		ev.Level = s.LevelID
		ev.Vehicle = s.Selected
		ev.Score = s.Score
		ev.Remaining = s.Remaining
		ev.Moves = s.MoveCount
		ev.Collisions = s.Collisions
	}
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{Phase: g.phase.Name(), Quit: g.quit}
	if s := session(g.phase); s != nil {
		st.Level = s.LevelID
		st.Score = s.Score
	}
	switch g.phase.(type) {
	case *PausedPhase:
		st.Paused = true
	case *GameOverPhase:
		st.GameOver = true
	case *WinPhase:
		st.GameOver = true
		st.Won = true
	}
	return st
}
