package ports

import "github.com/consulta-ja/booking-system/internal/core/domain"

// NavigationState is the navigator position plus the tab set currently
// reachable for the active role.
type NavigationState struct {
	Area         domain.Area
	ActiveTab    domain.Destination
	Destinations []domain.Destination
}

// NavigationService governs screen transitions and enforces the admin gate
// on the doctor onboarding destination.
type NavigationService interface {
	State() NavigationState
	GoTo(area domain.Area) (NavigationState, error)
	Enter(d domain.Destination) (NavigationState, error)
}
