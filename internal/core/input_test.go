package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionRight)
	f.PointerMove(10, 20)
	f.Release(ActionRight)
	f.PointerClick(MouseLeft, 30, 40)

	if len(f.Events) != 4 {
		t.Fatalf("len(Events) = %d, expected 4", len(f.Events))
	}

	kinds := []InputKind{InputPress, InputPointerMove, InputRelease, InputPointerClick}
	for i, k := range kinds {
		if f.Events[i].Kind != k {
			t.Errorf("Events[%d].Kind = %v, expected %v", i, f.Events[i].Kind, k)
		}
	}
	if f.Events[3].X != 30 || f.Events[3].Y != 40 {
		t.Errorf("click position = (%v, %v), expected (30, 40)", f.Events[3].X, f.Events[3].Y)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionUp)
	f.PointerMove(1, 2)

	f.Clear()
	if len(f.Events) != 0 {
		t.Errorf("len(Events) = %d after Clear, expected 0", len(f.Events))
	}

	f.Press(ActionDown)
	if len(f.Events) != 1 || f.Events[0].Action != ActionDown {
		t.Errorf("Events = %+v, expected a single Down press", f.Events)
	}
}

func TestSelectAction(t *testing.T) {
	for n := 1; n <= 9; n++ {
		a := SelectAction(n)
		got, ok := a.VehicleNumber()
		if !ok || got != n {
			t.Errorf("SelectAction(%d).VehicleNumber() = (%d, %v), expected (%d, true)", n, got, ok, n)
		}
	}

	if SelectAction(0) != ActionNone || SelectAction(10) != ActionNone {
		t.Error("SelectAction out of range should be ActionNone")
	}
	if _, ok := ActionPause.VehicleNumber(); ok {
		t.Error("Pause is not a selection action")
	}
	if ActionSelect3.String() != "Select3" {
		t.Errorf("ActionSelect3.String() = %q", ActionSelect3.String())
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	if ActionConfirm.IsDirection() {
		t.Error("Confirm is not a direction")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		ok    bool
	}{
		{"red", ColorRed, true},
		{" Orange ", ColorOrange, true},
		{"purple", ColorMagenta, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.name)
		if c != tc.color || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, c, ok, tc.color, tc.ok)
		}
	}
}
