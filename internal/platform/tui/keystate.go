package tui

import "lavaleap/internal/core"

// holdTicks is how many simulation ticks a movement key counts as held
// after its last press. Terminals deliver auto-repeat presses but no
// release events, so a key stays "down" until its repeats stop arriving.
const holdTicks = 8

// KeyState tracks which held actions are currently active. Each press
// refreshes the action's hold window; Decay expires windows tick by tick.
type KeyState struct {
	remaining map[core.Action]int
}

// NewKeyState creates an empty hold tracker.
func NewKeyState() *KeyState {
	return &KeyState{remaining: make(map[core.Action]int)}
}

// Press refreshes the hold window for an action.
func (k *KeyState) Press(a core.Action) {
	k.remaining[a] = holdTicks
}

// Release drops an action immediately, without waiting for its window
// to expire. Opposite-direction presses use this to avoid a sticky turn.
func (k *KeyState) Release(a core.Action) {
	delete(k.remaining, a)
}

// Held reports whether the action is currently considered held.
func (k *KeyState) Held(a core.Action) bool {
	return k.remaining[a] > 0
}

// Apply sets every held action on the given input frame.
func (k *KeyState) Apply(frame *core.InputFrame) {
	for a, n := range k.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Decay advances the tracker by one tick, expiring stale holds.
func (k *KeyState) Decay() {
	for a, n := range k.remaining {
		if n <= 1 {
			delete(k.remaining, a)
			continue
		}
		k.remaining[a] = n - 1
	}
}
