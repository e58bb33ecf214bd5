package tui

import (
	"time"

	"github.com/vovakirdan/parkjam/internal/core"
)

// KeyLatch turns terminal key presses into held keys.
//
// Terminals report presses and auto-repeats but never releases. A held key is
// considered released once no repeat arrived within its hold window: the
// initial window covers the pause before auto-repeat starts, the repeat
// window the gap between repeats.
type KeyLatch struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[core.Action]time.Time
}

// NewKeyLatch creates a latch with the given hold windows.
func NewKeyLatch(initial, repeat time.Duration) *KeyLatch {
	return &KeyLatch{
		initial:  initial,
		repeat:   repeat,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press records a key event at now. Returns true if the key was not held before.
func (l *KeyLatch) Press(a core.Action, now time.Time) bool {
	if _, held := l.deadline[a]; held {
		l.deadline[a] = now.Add(l.repeat)
		return false
	}
	l.deadline[a] = now.Add(l.initial)
	return true
}

// Expire releases every key whose hold window ended before now.
// Released keys are returned in action order.
func (l *KeyLatch) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a := core.ActionUp; a <= core.ActionRight; a++ {
		if d, held := l.deadline[a]; held && now.After(d) {
			delete(l.deadline, a)
			released = append(released, a)
		}
	}
	return released
}

// Held reports whether the action is currently latched.
func (l *KeyLatch) Held(a core.Action) bool {
	_, held := l.deadline[a]
	return held
}

// Reset releases everything without reporting.
func (l *KeyLatch) Reset() {
	clear(l.deadline)
}
