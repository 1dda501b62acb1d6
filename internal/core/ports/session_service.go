package ports

import (
	"context"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// SessionState is a snapshot of the session slot. Identity is nil when
// nobody is signed in; IsAdmin is derived from the identity, never cached.
type SessionState struct {
	Identity *domain.Identity
	IsAdmin  bool
	Loading  bool
}

// Role returns the active role, or the empty Role when signed out.
func (s SessionState) Role() domain.Role {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}

// SessionService is the single source of truth for who is using the app.
//
// SignIn classifies the email, replaces any prior identity, and toggles the
// loading flag for the duration of the call. A failed sign-in leaves the
// prior identity unchanged. SignOut clears the slot synchronously.
// Subscribe registers an observer invoked on every state transition, before
// the mutating call returns.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (SessionState, error)
	SignOut() SessionState
	State() SessionState
	Subscribe(fn func(SessionState))
}

// Authenticator resolves credentials into an identity. The mock
// implementation never fails; a real backend plugged in here may reject,
// and SessionService callers must already handle that path.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
}
