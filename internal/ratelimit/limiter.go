// Package ratelimit implements the cooldown state machine gating the breach
// check and the share operation. Each gated action carries two independent
// conditions: a fixed-window cooldown after every completion, and a
// consumed-for-current-password flag cleared only when the password changes.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultWindowSeconds is the cooldown window applied after a gated action.
const DefaultWindowSeconds = 10

// Action identifies one gated operation.
type Action string

const (
	// ActionBreach gates the breach-database lookup.
	ActionBreach Action = "breach"
	// ActionShare gates the ephemeral-link creation.
	ActionShare Action = "share"
)

// State is the externally visible gate state.
type State int

const (
	// StateReady means the action may run.
	StateReady State = iota
	// StateCooldown means the fixed delay since the last run has not elapsed.
	StateCooldown
	// StateAlreadyUsed means the cooldown elapsed but the action already ran
	// for the current password; it re-enables only on a password change.
	StateAlreadyUsed
)

func (s State) String() string {
	switch s {
	case StateCooldown:
		return "cooldown"
	case StateAlreadyUsed:
		return "already_used"
	default:
		return "ready"
	}
}

// Gate is the per-action state machine. All methods are safe for concurrent
// use; the tick source and the request handlers run on different goroutines.
type Gate struct {
	mu        sync.Mutex
	window    int
	remaining int
	consumed  bool
}

// NewGate creates a ready Gate with the given cooldown window in seconds.
func NewGate(windowSeconds int) *Gate {
	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}
	return &Gate{window: windowSeconds}
}

// State reports the current gate state. Cooldown wins over already-used:
// while the timer runs the UI shows a waiting indicator, and only after it
// elapses the distinct already-used label appears.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.remaining > 0:
		return StateCooldown
	case g.consumed:
		return StateAlreadyUsed
	default:
		return StateReady
	}
}

// Allowed reports whether the gated action may run now.
func (g *Gate) Allowed() bool {
	return g.State() == StateReady
}

// Consume records a completed run of the gated action, regardless of its
// success: the cooldown restarts and the action is marked used for the
// current password.
func (g *Gate) Consume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.remaining = g.window
	g.consumed = true
}

// Tick advances the cooldown countdown by one second.
func (g *Gate) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.remaining > 0 {
		g.remaining--
	}
}

// OnPasswordChanged clears the consumed flag. A running cooldown keeps
// running; both conditions must clear before the action re-enables.
func (g *Gate) OnPasswordChanged() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.consumed = false
}

// Limiter owns the gates of all rate-limited actions and the shared tick
// source driving their countdowns.
type Limiter struct {
	gates map[Action]*Gate
}

// New creates a Limiter with one gate per gated action.
func New(windowSeconds int) *Limiter {
	return &Limiter{
		gates: map[Action]*Gate{
			ActionBreach: NewGate(windowSeconds),
			ActionShare:  NewGate(windowSeconds),
		},
	}
}

// Gate returns the gate for the action, or nil for unknown actions.
func (l *Limiter) Gate(a Action) *Gate {
	return l.gates[a]
}

// Tick advances every gate by one second.
func (l *Limiter) Tick() {
	for _, g := range l.gates {
		g.Tick()
	}
}

// OnPasswordChanged clears the consumed flag on every gate.
func (l *Limiter) OnPasswordChanged() {
	for _, g := range l.gates {
		g.OnPasswordChanged()
	}
}

// Run drives the countdowns with a one-second ticker until ctx is done.
// The ticker runs independently of any in-flight network call.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}
