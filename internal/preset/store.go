// Package preset implements the password-preset store: CRUD over named
// generation configurations with durable JSON persistence and
// backup-on-write.
package preset

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/models"
)

// defaultSelectionFallback is the built-in that inherits the
// default-selection flag when the flagged preset is deleted.
const defaultSelectionFallback = "Strong Password"

var (
	// ErrEmptyName is returned when a preset name is empty.
	ErrEmptyName = errors.New("preset name must not be empty")
	// ErrDuplicateName is returned when a preset name already exists.
	ErrDuplicateName = errors.New("preset name already exists")
	// ErrNotFound is returned when no preset has the given name.
	ErrNotFound = errors.New("preset not found")
	// ErrBuiltIn is returned on attempts to modify or delete a built-in preset.
	ErrBuiltIn = errors.New("built-in presets cannot be modified or deleted")
	// ErrLastEnabled is returned when disabling the only enabled preset.
	ErrLastEnabled = errors.New("at least one preset must remain enabled")
	// ErrLengthOutOfRange is returned when a preset length is outside [8, 32].
	ErrLengthOutOfRange = errors.New("preset length must be between 8 and 32")
)

// BuiltIns returns the six factory presets created on first run.
// "Strong Password" starts as the default selection.
func BuiltIns() []models.PasswordPreset {
	mk := func(name string, length int, selected bool) models.PasswordPreset {
		return models.PasswordPreset{
			Name:                name,
			Length:              length,
			IncludeUppercase:    true,
			IncludeLowercase:    true,
			IncludeNumbers:      true,
			IncludeSpecial:      true,
			IsDefault:           true,
			Enabled:             true,
			IsSelectedByDefault: selected,
		}
	}
	return []models.PasswordPreset{
		mk("Medium Password", 10, false),
		mk("Strong Password", 15, true),
		mk("Very Strong Password", 20, false),
		mk("NIST Password", 12, false),
		mk("SOC2 Password", 14, false),
		mk("Financial Password", 16, false),
	}
}

// Store holds the preset collection and serializes all access, including the
// read-modify-write-with-backup save path.
type Store struct {
	mu      sync.Mutex
	path    string
	log     *zap.Logger
	presets []models.PasswordPreset
}

// NewStore creates a Store persisting to path. Call Load before use.
func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the persisted collection. A missing file or a file that fails
// to parse yields the built-in set in memory only; nothing is written back
// until the next mutating operation.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("preset file unreadable, using built-ins", zap.Error(err))
		}
		s.presets = BuiltIns()
		return nil
	}

	var presets []models.PasswordPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		s.log.Warn("preset file corrupt, using built-ins",
			zap.String("path", s.path), zap.Error(err))
		s.presets = BuiltIns()
		return nil
	}

	s.presets = presets
	return nil
}

// Save serializes the full collection to the preset file. An existing file
// is copied to <path>.bak before being overwritten. The returned error is
// informational; callers treat save failures as non-fatal.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.path+".bak", prev, 0o600); err != nil {
			s.log.Warn("failed to write preset backup", zap.Error(err))
		}
	}

	data, err := json.MarshalIndent(s.presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// persistLocked saves and downgrades failures to a log line: mutations
// succeed in memory even when the disk write fails.
func (s *Store) persistLocked() {
	if err := s.saveLocked(); err != nil {
		s.log.Error("failed to persist presets", zap.Error(err))
	}
}

func (s *Store) indexLocked(name string) int {
	for i := range s.presets {
		if s.presets[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) clearSelectionLocked() {
	for i := range s.presets {
		s.presets[i].IsSelectedByDefault = false
	}
}

// Add creates a user preset. The name must be unique (case-sensitive).
// If selected is true, the default-selection flag is cleared everywhere else.
func (s *Store) Add(name string, length int, upper, numbers, special, selected bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if length < 8 || length > 32 {
		return ErrLengthOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(name) >= 0 {
		return ErrDuplicateName
	}
	if selected {
		s.clearSelectionLocked()
	}
	s.presets = append(s.presets, models.PasswordPreset{
		Name:                name,
		Length:              length,
		IncludeUppercase:    upper,
		IncludeLowercase:    true,
		IncludeNumbers:      numbers,
		IncludeSpecial:      special,
		Enabled:             true,
		IsSelectedByDefault: selected,
	})
	s.persistLocked()
	return nil
}

// Remove deletes a user preset. Built-ins cannot be removed. If the removed
// preset carried the default-selection flag, the flag moves to the
// "Strong Password" built-in when present.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(name)
	if i < 0 {
		return ErrNotFound
	}
	if s.presets[i].IsDefault {
		return ErrBuiltIn
	}

	wasSelected := s.presets[i].IsSelectedByDefault
	s.presets = append(s.presets[:i], s.presets[i+1:]...)

	if wasSelected {
		for j := range s.presets {
			if s.presets[j].IsDefault && s.presets[j].Name == defaultSelectionFallback {
				s.presets[j].IsSelectedByDefault = true
				break
			}
		}
	}
	s.persistLocked()
	return nil
}

// Edit updates a user preset, optionally renaming it. Built-ins are treated
// as fully immutable. The new name must not collide with a different preset.
func (s *Store) Edit(originalName, newName string, length int, upper, numbers, special, selected bool) error {
	if newName == "" {
		return ErrEmptyName
	}
	if length < 8 || length > 32 {
		return ErrLengthOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(originalName)
	if i < 0 {
		return ErrNotFound
	}
	if s.presets[i].IsDefault {
		return ErrBuiltIn
	}
	if j := s.indexLocked(newName); j >= 0 && j != i {
		return ErrDuplicateName
	}

	if selected {
		s.clearSelectionLocked()
	}
	p := &s.presets[i]
	p.Name = newName
	p.Length = length
	p.IncludeUppercase = upper
	p.IncludeNumbers = numbers
	p.IncludeSpecial = special
	p.IncludeLowercase = true
	p.IsSelectedByDefault = selected

	s.persistLocked()
	return nil
}

// SetEnabled toggles a preset. Disabling the last enabled preset is
// rejected; the collection must always offer at least one preset.
func (s *Store) SetEnabled(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(name)
	if i < 0 {
		return ErrNotFound
	}
	if !enabled && s.presets[i].Enabled && s.enabledCountLocked() == 1 {
		return ErrLastEnabled
	}

	s.presets[i].Enabled = enabled
	s.persistLocked()
	return nil
}

func (s *Store) enabledCountLocked() int {
	n := 0
	for i := range s.presets {
		if s.presets[i].Enabled {
			n++
		}
	}
	return n
}

// List returns a copy of the full collection in stored order.
func (s *Store) List() []models.PasswordPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PasswordPreset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Enabled returns the enabled presets in stored order.
func (s *Store) Enabled() []models.PasswordPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PasswordPreset
	for _, p := range s.presets {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

// Selected resolves which preset the UI should preselect: the enabled preset
// flagged as default selection, else the first enabled preset. If nothing is
// enabled, the first preset is force-enabled, persisted, and returned.
func (s *Store) Selected() (models.PasswordPreset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.presets) == 0 {
		return models.PasswordPreset{}, false
	}
	for _, p := range s.presets {
		if p.Enabled && p.IsSelectedByDefault {
			return p, true
		}
	}
	for _, p := range s.presets {
		if p.Enabled {
			return p, true
		}
	}
	s.presets[0].Enabled = true
	s.persistLocked()
	return s.presets[0], true
}
