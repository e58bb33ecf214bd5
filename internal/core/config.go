package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Name of the active phase ("menu", "playing", ...)
	Level    int    // Loaded level, 0 outside of a level
	Score    int    // Current score
	GameOver bool   // Whether the run has ended (won or lost)
	Won      bool   // Whether the run ended with the target at the exit
	Paused   bool   // Whether the game is paused
	Quit     bool   // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies a domain event emitted during a tick.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventVehicleSelected
	EventCollision // collision penalized
	EventPaused
	EventResumed
	EventWin
	EventGameOver
	EventMenu
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventVehicleSelected:
		return "vehicle_selected"
	case EventCollision:
		return "collision"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	case EventMenu:
		return "menu"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a notable simulation occurrence reported to the platform
// for logging and score persistence. Games never log themselves.
type Event struct {
	Kind       EventKind
	Level      int
	Vehicle    int // Vehicle index, -1 when not applicable
	Score      int
	Remaining  float64 // Countdown seconds left
	Moves      int
	Collisions int
}
