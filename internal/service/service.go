// Package service implements the application facade: it owns the session
// state (current password, breach verdict, rate-limit gates, link history)
// and exposes the operations the UI layer calls. Every operation returns a
// result value; errors never cross this boundary as panics.
package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/generator"
	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/phonetic"
	"github.com/mkarlsson/passforge/internal/preset"
	"github.com/mkarlsson/passforge/internal/ratelimit"
	"github.com/mkarlsson/passforge/internal/share"
	"github.com/mkarlsson/passforge/internal/strength"
)

// ErrUnknownAlphabet is returned for alphabet names other than NATO/Swedish.
var ErrUnknownAlphabet = errors.New("unknown phonetic alphabet")

// ErrNoPassword is returned when a gated operation runs without a current
// password.
var ErrNoPassword = errors.New("no password has been generated or entered")

// BreachChecker is the breach-lookup dependency.
type BreachChecker interface {
	Check(ctx context.Context, password string) models.BreachResult
}

// ShareClient is the ephemeral-link dependency.
type ShareClient interface {
	Push(ctx context.Context, password string, opts share.PushOptions) models.PushResult
	Expire(ctx context.Context, token string) models.ExpireResult
}

// PasswordResult is a generated password together with its score.
type PasswordResult struct {
	Password string                `json:"password"`
	Strength models.StrengthReport `json:"strength"`
}

// GateStatus reports one rate-limit gate to the UI.
type GateStatus struct {
	Action string `json:"action"`
	State  string `json:"state"`
}

// Service is the application facade. It is safe for concurrent use; the
// session state is guarded by a single mutex.
type Service struct {
	mu       sync.Mutex
	current  string
	breached bool

	limiter *ratelimit.Limiter
	breach  BreachChecker
	share   ShareClient
	history *share.History
	presets *preset.Store
	log     *zap.Logger
}

// New wires the facade. history must be the same instance the share client
// appends to.
func New(
	breach BreachChecker,
	shareClient ShareClient,
	history *share.History,
	presets *preset.Store,
	limiter *ratelimit.Limiter,
	log *zap.Logger,
) *Service {
	return &Service{
		limiter: limiter,
		breach:  breach,
		share:   shareClient,
		history: history,
		presets: presets,
		log:     log,
	}
}

// Presets exposes the preset store.
func (s *Service) Presets() *preset.Store {
	return s.presets
}

// Limiter exposes the rate limiter so the host can drive its tick loop.
func (s *Service) Limiter() *ratelimit.Limiter {
	return s.limiter
}

// GenerateRandom produces a random-charset password, makes it the current
// password, and scores it.
func (s *Service) GenerateRandom(params models.RandomParams) (PasswordResult, error) {
	password, err := generator.Random(params)
	if err != nil {
		return PasswordResult{}, err
	}
	s.SetPassword(password)
	return PasswordResult{Password: password, Strength: strength.Score(password)}, nil
}

// GenerateMemorable produces a word-based password, makes it the current
// password, and scores it.
func (s *Service) GenerateMemorable(params models.MemorableParams) (PasswordResult, error) {
	password, err := generator.Memorable(params)
	if err != nil {
		return PasswordResult{}, err
	}
	s.SetPassword(password)
	return PasswordResult{Password: password, Strength: strength.Score(password)}, nil
}

// SetPassword records a new current password (generated or typed). The
// breach verdict is discarded and every gate's consumed flag clears; a
// running cooldown keeps running.
func (s *Service) SetPassword(password string) {
	s.mu.Lock()
	s.current = password
	s.breached = false
	s.mu.Unlock()
	s.limiter.OnPasswordChanged()
}

// CurrentPassword returns the password the gated operations act on.
func (s *Service) CurrentPassword() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Score computes the strength report for an arbitrary password without
// touching session state.
func (s *Service) Score(password string) models.StrengthReport {
	return strength.Score(password)
}

// gateMessage names the reason a gate blocks an action.
func gateMessage(action string, state ratelimit.State) string {
	if state == ratelimit.StateAlreadyUsed {
		return action + " already performed for this password"
	}
	return action + " is cooling down"
}

// CheckBreach looks the current password up in the breach database. The
// breach gate must be ready; the gate is consumed after the call completes
// regardless of outcome, and the verdict is remembered for Share.
func (s *Service) CheckBreach(ctx context.Context) models.BreachResult {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == "" {
		return models.BreachResult{Error: ErrNoPassword.Error()}
	}

	gate := s.limiter.Gate(ratelimit.ActionBreach)
	if state := gate.State(); state != ratelimit.StateReady {
		return models.BreachResult{Error: gateMessage("breach check", state)}
	}

	result := s.breach.Check(ctx, current)
	gate.Consume()

	if result.Found {
		s.mu.Lock()
		// Only remember the verdict if the password was not replaced while
		// the lookup was in flight.
		if s.current == current {
			s.breached = true
		}
		s.mu.Unlock()
		s.log.Info("password found in breach database", zap.Int("count", result.Count))
	}
	return result
}

// Share pushes the current password to the ephemeral-link service. Blocked
// while the share gate is not ready and permanently for a password whose
// last breach check found a match.
func (s *Service) Share(ctx context.Context, opts share.PushOptions) models.PushResult {
	s.mu.Lock()
	current, breached := s.current, s.breached
	s.mu.Unlock()
	if current == "" {
		return models.PushResult{Log: ErrNoPassword.Error()}
	}
	if breached {
		return models.PushResult{Log: "password found in breach database; sharing is blocked"}
	}

	gate := s.limiter.Gate(ratelimit.ActionShare)
	if state := gate.State(); state != ratelimit.StateReady {
		return models.PushResult{Log: gateMessage("share", state)}
	}

	result := s.share.Push(ctx, current, opts)
	gate.Consume()
	return result
}

// ExpireLink expires a previously created link. Not rate-limited; the share
// client's availability probe still applies.
func (s *Service) ExpireLink(ctx context.Context, token string) models.ExpireResult {
	return s.share.Expire(ctx, token)
}

// Links returns the session link history in creation order.
func (s *Service) Links() []models.ShareLink {
	return s.history.List()
}

// Transliterate maps every character of password to its spoken word.
func (s *Service) Transliterate(password, alphabet string) ([]models.PhoneticPair, error) {
	switch phonetic.Alphabet(alphabet) {
	case phonetic.NATO, phonetic.Swedish:
		return phonetic.TransliterateString(password, phonetic.Alphabet(alphabet)), nil
	default:
		return nil, ErrUnknownAlphabet
	}
}

// Gates reports the current state of every rate-limit gate.
func (s *Service) Gates() []GateStatus {
	return []GateStatus{
		{Action: string(ratelimit.ActionBreach), State: s.limiter.Gate(ratelimit.ActionBreach).State().String()},
		{Action: string(ratelimit.ActionShare), State: s.limiter.Gate(ratelimit.ActionShare).State().String()},
	}
}
