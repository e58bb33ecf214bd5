package parkjam

import (
	"fmt"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
)

// Menu actions
const (
	ActionStart = 0
	ActionExit  = 1
)

// Pause actions
const (
	ActionResume   = 0
	ActionMainMenu = 1
)

// Level select actions. Levels use their ID as action.
const ActionBack = 0

func menuButtons() []core.Button {
	return []core.Button{
		{X: 400, Y: 300, W: 400, H: 80, Label: "START GAME", Action: ActionStart},
		{X: 400, Y: 420, W: 400, H: 80, Label: "EXIT", Action: ActionExit},
	}
}

func pauseButtons() []core.Button {
	return []core.Button{
		{X: 400, Y: 300, W: 400, H: 80, Label: "RESUME", Action: ActionResume},
		{X: 400, Y: 420, W: 400, H: 80, Label: "MAIN MENU", Action: ActionMainMenu},
	}
}

// levelButtons lays out one button per level in a row, then BACK.
func levelButtons(count int) []core.Button {
	buttons := make([]core.Button, 0, count+1)
	for i := 0; i < count; i++ {
		buttons = append(buttons, core.Button{
			X:      300 + 250*float64(i),
			Y:      250,
			W:      200,
			H:      100,
			Label:  fmt.Sprintf("LEVEL %d", i+1),
			Action: i + 1,
		})
	}
	return append(buttons, core.Button{X: 400, Y: 450, W: 400, H: 80, Label: "BACK", Action: ActionBack})
}
