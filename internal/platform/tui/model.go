package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parkjam/internal/config"
	"github.com/vovakirdan/parkjam/internal/core"
	"github.com/vovakirdan/parkjam/internal/registry"
	"github.com/vovakirdan/parkjam/internal/storage"
)

// Options holds the collaborators of a game session. All are optional.
type Options struct {
	Store    *storage.Store     // Finished runs are saved here
	Logger   *log.Logger        // Domain events are logged here
	Player   string             // Recorded with each result ("local" when empty)
	Rules    config.RulesConfig // Input hold windows and frame delta cap
	Renderer *ScreenRenderer    // Defaults to the local terminal
}

// canvasGame is implemented by games that take pointer input in a virtual canvas.
type canvasGame interface {
	Canvas() (w, h float64)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	opts     Options
	config   core.RuntimeConfig
	keys     KeyMap
	latch    *KeyLatch
	frame    *core.InputFrame
	state    *core.GameState
	lastTick *time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}
	if opts.Rules.Input.HoldInitialMS <= 0 || opts.Rules.Input.HoldRepeatMS <= 0 || opts.Rules.Clock.MaxFrameDelta <= 0 {
		defaults := config.DefaultRulesConfig()
		opts.Rules.Input = defaults.Input
		opts.Rules.Clock = defaults.Clock
	}

	frame := core.NewInputFrame()
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:     opts,
		config:   cfg,
		keys:     DefaultKeyMap(),
		latch:    NewKeyLatch(opts.Rules.Input.HoldInitial(), opts.Rules.Input.HoldRepeat()),
		frame:    &frame,
		state:    &core.GameState{},
		lastTick: &time.Time{},
		now:      time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	*m.state = m.game.State()

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.releaseHeld()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// releaseHeld releases every latched direction at once. Keys let go while the
// terminal is unfocused never repeat, so waiting out the hold window would
// keep the car moving.
func (m Model) releaseHeld() {
	for a := core.ActionUp; a <= core.ActionRight; a++ {
		if m.latch.Held(a) {
			m.frame.Release(a)
		}
	}
	m.latch.Reset()
}

// handleKey queues a key press for the next tick.
// Direction keys are latched until their hold window runs out.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionQuit:
		m.opts.Logger.Info("quit", "phase", m.state.Phase, "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		m.latch.Press(action, m.now())
	}

	m.frame.Press(action)
	return m, nil
}

// handleMouse converts cell coordinates to the game canvas.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cg, ok := m.game.(canvasGame)
	if !ok {
		return m, nil
	}

	w, h := cg.Canvas()
	vp := core.NewViewport(w, h, m.screen.Width(), m.screen.Height())
	x, y := vp.ToCanvas(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.frame.PointerMove(x, y)
	case tea.MouseActionPress:
		button, known := mouseButton(msg.Button)
		if !known {
			return m, nil
		}
		m.frame.PointerMove(x, y)
		m.frame.PointerClick(button, x, y)
	}
	return m, nil
}

func mouseButton(b tea.MouseButton) (core.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft, true
	case tea.MouseButtonRight:
		return core.MouseRight, true
	case tea.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)

	for _, a := range m.latch.Expire(now) {
		m.frame.Release(a)
	}

	result := m.game.Step(*m.frame, dt)
	*m.state = result.State
	m.frame.Clear()

	m.handleEvents(result.Events)

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// frameDelta returns the seconds since the previous tick, capped so a
// stalled terminal never advances the simulation by a large jump.
func (m Model) frameDelta(now time.Time) float64 {
	prev := *m.lastTick
	*m.lastTick = now

	if prev.IsZero() {
		rate := m.config.TickRate
		if rate <= 0 {
			rate = 60
		}
		return 1 / float64(rate)
	}

	dt := now.Sub(prev).Seconds()
	return core.ClampF(dt, 0, m.opts.Rules.Clock.MaxFrameDelta)
}

// handleEvents logs domain events and saves finished runs.
func (m Model) handleEvents(events []core.Event) {
	logger := m.opts.Logger
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCollision, core.EventVehicleSelected:
			logger.Debug(ev.Kind.String(), "level", ev.Level, "vehicle", ev.Vehicle+1, "score", ev.Score)
		case core.EventWin, core.EventGameOver:
			logger.Info(ev.Kind.String(),
				"level", ev.Level,
				"score", ev.Score,
				"remaining", fmt.Sprintf("%.1fs", ev.Remaining),
				"moves", ev.Moves,
				"collisions", ev.Collisions,
			)
			m.saveResult(ev)
		default:
			logger.Info(ev.Kind.String(), "level", ev.Level, "score", ev.Score)
		}
	}
}

// saveResult records a finished run. Storage errors are logged, the game continues.
func (m Model) saveResult(ev core.Event) {
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		Level:      ev.Level,
		Won:        ev.Kind == core.EventWin,
		Score:      ev.Score,
		Remaining:  ev.Remaining,
		Moves:      ev.Moves,
		Collisions: ev.Collisions,
		Player:     m.opts.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return *m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.opts.Renderer.Render(m.screen)
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
		tea.WithReportFocus(),    // Blur releases held keys
	)

	_, err := p.Run()
	return err
}
