package registry

import (
	"testing"

	"github.com/vovakirdan/parkjam/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub", title: "Another"} })

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d games, expected at least 2", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title = %q, expected Stub", g.Title())
	}

	// Each call builds a fresh game
	g2, _ := Create("zz_stub")
	if g == g2 {
		t.Error("Create() should return a new instance per call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("Registering the same ID twice should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
