package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

// NavigationService tracks the navigator position and keeps the tab set in
// step with the session: it subscribes to the session service so the set is
// recomputed on every role change, not just on construction. When the
// active tab becomes unavailable (admin access revoked mid-session) the
// navigator falls back to home.
type NavigationService struct {
	session ports.SessionService
	log     zerolog.Logger

	mu   sync.Mutex
	nav  domain.Navigator
	role domain.Role
}

func NewNavigationService(session ports.SessionService, log zerolog.Logger) *NavigationService {
	s := &NavigationService{
		session: session,
		log:     log,
		nav:     domain.NewNavigator(),
		role:    session.State().Role(),
	}
	session.Subscribe(s.onSessionChange)
	return s
}

func (s *NavigationService) onSessionChange(state ports.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.role = state.Role()
	if s.nav.Refresh(s.role) {
		s.log.Info().Str("role", string(s.role)).Msg("active tab revoked, falling back to home")
	}
}

func (s *NavigationService) State() ports.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// GoTo performs a top-level area transition (main to signup and back).
func (s *NavigationService) GoTo(area domain.Area) (ports.NavigationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nav.GoTo(area); err != nil {
		return s.stateLocked(), err
	}
	return s.stateLocked(), nil
}

// Enter selects a tab. The doctor onboarding gate is enforced inside the
// navigator even when the tab set already hid the destination; a denied
// entry lands back on home.
func (s *NavigationService) Enter(d domain.Destination) (ports.NavigationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nav.Enter(d, s.role); err != nil {
		return s.stateLocked(), err
	}
	return s.stateLocked(), nil
}

func (s *NavigationService) stateLocked() ports.NavigationState {
	return ports.NavigationState{
		Area:         s.nav.Area,
		ActiveTab:    s.nav.ActiveTab,
		Destinations: domain.AvailableDestinations(s.role),
	}
}
