package ratelimit

import (
	"testing"
)

func TestGateLifecycle(t *testing.T) {
	g := NewGate(3)

	if got := g.State(); got != StateReady {
		t.Fatalf("fresh gate state = %v; want ready", got)
	}
	if !g.Allowed() {
		t.Fatal("fresh gate must allow the action")
	}

	g.Consume()
	if got := g.State(); got != StateCooldown {
		t.Fatalf("state after consume = %v; want cooldown", got)
	}
	if g.Allowed() {
		t.Fatal("cooling gate must not allow the action")
	}

	// Cooldown elapses, but the action stays blocked with the distinct
	// already-used state until the password changes.
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if got := g.State(); got != StateAlreadyUsed {
		t.Fatalf("state after cooldown = %v; want already_used", got)
	}
	if g.Allowed() {
		t.Fatal("consumed gate must stay blocked after cooldown")
	}

	g.OnPasswordChanged()
	if got := g.State(); got != StateReady {
		t.Fatalf("state after password change = %v; want ready", got)
	}
}

func TestPasswordChangeDuringCooldown(t *testing.T) {
	g := NewGate(5)
	g.Consume()
	g.Tick()

	// Changing the password mid-cooldown clears the consumed flag but the
	// countdown keeps running; both conditions must clear.
	g.OnPasswordChanged()
	if got := g.State(); got != StateCooldown {
		t.Fatalf("state = %v; want cooldown to keep running", got)
	}

	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if got := g.State(); got != StateReady {
		t.Fatalf("state after countdown = %v; want ready", got)
	}
}

func TestCooldownExpiryDoesNotResetConsumed(t *testing.T) {
	g := NewGate(2)
	g.Consume()
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if got := g.State(); got != StateAlreadyUsed {
		t.Fatalf("extra ticks flipped state to %v; want already_used", got)
	}
}

func TestConsumeRestartsCooldown(t *testing.T) {
	g := NewGate(3)
	g.Consume()
	g.Tick()
	g.Tick()
	g.OnPasswordChanged()
	g.Tick()
	if !g.Allowed() {
		t.Fatal("gate should be ready again")
	}

	g.Consume()
	if got := g.State(); got != StateCooldown {
		t.Fatalf("second consume state = %v; want cooldown", got)
	}
}

func TestLimiterGatesAreIndependent(t *testing.T) {
	l := New(2)

	l.Gate(ActionBreach).Consume()
	if l.Gate(ActionShare).State() != StateReady {
		t.Fatal("share gate must be unaffected by breach gate consumption")
	}

	l.Tick()
	l.Tick()
	if got := l.Gate(ActionBreach).State(); got != StateAlreadyUsed {
		t.Fatalf("breach gate = %v; want already_used", got)
	}

	l.OnPasswordChanged()
	if !l.Gate(ActionBreach).Allowed() {
		t.Fatal("breach gate should re-enable after password change")
	}
	if !l.Gate(ActionShare).Allowed() {
		t.Fatal("share gate should stay enabled")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateReady:       "ready",
		StateCooldown:    "cooldown",
		StateAlreadyUsed: "already_used",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q; want %q", state, got, want)
		}
	}
}
