package preset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.json")
	s := NewStore(path, zap.NewNop())
	require.NoError(t, s.Load())
	return s
}

func TestLoadMissingFileUsesBuiltIns(t *testing.T) {
	s := newTestStore(t)

	presets := s.List()
	require.Len(t, presets, 6)
	for _, p := range presets {
		assert.True(t, p.IsDefault, "preset %q should be built-in", p.Name)
		assert.True(t, p.Enabled)
	}

	// Built-ins live in memory only; nothing is written yet.
	_, err := os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Strong Password", selected.Name)
	assert.Equal(t, 15, selected.Length)
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewStore(path, zap.NewNop())
	require.NoError(t, s.Load())
	assert.Len(t, s.List(), 6)

	// The corrupt file must not be overwritten by Load itself.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestAddDuplicateNameFails(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("Work", 12, true, true, false, false))
	err := s.Add("Work", 16, false, false, false, false)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, s.List(), 7, "failed add must leave collection unchanged")

	// Exact-match only: a different case is a different name.
	assert.NoError(t, s.Add("work", 16, false, false, false, false))
}

func TestAddValidation(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.Add("", 12, true, true, true, false), ErrEmptyName)
	assert.ErrorIs(t, s.Add("Short", 7, true, true, true, false), ErrLengthOutOfRange)
	assert.ErrorIs(t, s.Add("Long", 33, true, true, true, false), ErrLengthOutOfRange)
}

func TestAddSelectedClearsOtherFlags(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("Mine", 12, true, true, true, true))

	selectedCount := 0
	for _, p := range s.List() {
		if p.IsSelectedByDefault {
			selectedCount++
			assert.Equal(t, "Mine", p.Name)
		}
	}
	assert.Equal(t, 1, selectedCount)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.Remove("Strong Password"), ErrBuiltIn)
	assert.ErrorIs(t, s.Remove("no such"), ErrNotFound)

	require.NoError(t, s.Add("Temp", 12, true, true, true, true))
	require.NoError(t, s.Remove("Temp"))

	// Default selection falls back to the Strong Password built-in.
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Strong Password", selected.Name)
}

func TestEditBuiltInRejected(t *testing.T) {
	s := newTestStore(t)
	err := s.Edit("Strong Password", "Strong Password", 16, true, true, true, false)
	assert.ErrorIs(t, err, ErrBuiltIn)
}

func TestEditRenameCollision(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("One", 12, true, true, true, false))
	require.NoError(t, s.Add("Two", 12, true, true, true, false))

	err := s.Edit("One", "Two", 12, true, true, true, false)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Renaming to the same name is fine.
	assert.NoError(t, s.Edit("One", "One", 14, false, true, false, false))
	for _, p := range s.List() {
		if p.Name == "One" {
			assert.Equal(t, 14, p.Length)
			assert.False(t, p.IncludeUppercase)
			assert.True(t, p.IncludeLowercase)
		}
	}
}

func TestSetEnabledLastRemaining(t *testing.T) {
	s := newTestStore(t)

	presets := s.List()
	for _, p := range presets[1:] {
		require.NoError(t, s.SetEnabled(p.Name, false))
	}
	err := s.SetEnabled(presets[0].Name, false)
	assert.ErrorIs(t, err, ErrLastEnabled)

	enabled := s.Enabled()
	require.Len(t, enabled, 1)
	assert.Equal(t, presets[0].Name, enabled[0].Name)
}

func TestSelectedFallsBackToFirstEnabled(t *testing.T) {
	s := newTestStore(t)

	// Disable the flagged preset; selection falls to the first enabled one.
	require.NoError(t, s.SetEnabled("Strong Password", false))
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Medium Password", selected.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	s := NewStore(path, zap.NewNop())
	require.NoError(t, s.Load())
	require.NoError(t, s.Add("Mine", 18, true, false, true, false))

	reloaded := NewStore(path, zap.NewNop())
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.List(), reloaded.List())
}

func TestSaveWritesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	s := NewStore(path, zap.NewNop())
	require.NoError(t, s.Load())

	// First mutation writes the file; second must snapshot the prior state.
	require.NoError(t, s.Add("First", 12, true, true, true, false))
	firstState, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Add("Second", 12, true, true, true, false))

	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, string(firstState), string(bak))

	var prior []models.PasswordPreset
	require.NoError(t, json.Unmarshal(bak, &prior))
	assert.Len(t, prior, 7)
}
