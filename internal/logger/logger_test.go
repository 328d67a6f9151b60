package logger

import "testing"

func TestNewIsUsableBeforeInit(t *testing.T) {
	l := New()
	if l.Log == nil {
		t.Fatal("New must return a usable no-op logger")
	}
	l.Log.Info("no-op log must not panic")
}

func TestInit(t *testing.T) {
	l := New()
	if err := l.Init("Info"); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if l.Log == nil {
		t.Fatal("Init must replace the logger instance")
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	l := New()
	if err := l.Init("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
