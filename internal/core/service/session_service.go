package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

// SessionService owns the single identity slot. One writer path
// (SignIn/SignOut), many readers; every transition is broadcast to
// subscribers before the mutating call returns.
type SessionService struct {
	auth ports.Authenticator
	log  zerolog.Logger

	mu         sync.Mutex
	identity   *domain.Identity
	generation uint64
	inflight   int
	observers  []func(ports.SessionState)
}

func NewSessionService(auth ports.Authenticator, log zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, log: log}
}

// SignIn resolves the credentials through the authenticator and installs
// the resulting identity. Each call takes a generation number; when a newer
// SignIn or a SignOut started while this one was in flight, its result is
// discarded so a late completion cannot clobber the newer state. A rejected
// sign-in leaves the prior identity unchanged.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (ports.SessionState, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.inflight++
	s.broadcastLocked()
	s.mu.Unlock()

	identity, err := s.auth.Authenticate(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if gen != s.generation {
		s.log.Debug().Str("email", email).Msg("stale sign-in result discarded")
		s.broadcastLocked()
		return s.stateLocked(), domain.ErrSignInFailed
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("sign-in rejected")
		s.broadcastLocked()
		return s.stateLocked(), err
	}

	s.identity = identity
	s.log.Info().Str("role", string(identity.Role)).Str("name", identity.Name).Msg("signed in")
	s.broadcastLocked()
	return s.stateLocked(), nil
}

// SignOut clears the slot synchronously. Bumping the generation invalidates
// any sign-in still in flight.
func (s *SessionService) SignOut() ports.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.identity = nil
	s.log.Info().Msg("signed out")
	s.broadcastLocked()
	return s.stateLocked()
}

func (s *SessionService) State() ports.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Subscribe registers an observer for session transitions. Observers run
// synchronously on the writer's goroutine and must not call back into the
// service.
func (s *SessionService) Subscribe(fn func(ports.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *SessionService) stateLocked() ports.SessionState {
	var identity *domain.Identity
	if s.identity != nil {
		clone := *s.identity
		identity = &clone
	}
	return ports.SessionState{
		Identity: identity,
		IsAdmin:  s.identity != nil && s.identity.Role == domain.RoleAdmin,
		Loading:  s.inflight > 0,
	}
}

func (s *SessionService) broadcastLocked() {
	state := s.stateLocked()
	for _, fn := range s.observers {
		fn(state)
	}
}
