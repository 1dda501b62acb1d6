package domain

import "errors"

// Area is a top-level navigation state.
type Area string

const (
	AreaMain   Area = "main"
	AreaSignUp Area = "signup"
)

// Destination is a navigable tab target inside the main area.
type Destination string

const (
	DestinationHome             Destination = "home"
	DestinationDoctorOnboarding Destination = "doctor_onboarding"
)

// validAreaTransitions defines the allowed top-level moves.
var validAreaTransitions = map[Area][]Area{
	AreaMain:   {AreaSignUp},
	AreaSignUp: {AreaMain},
}

var ErrInvalidNavigation = errors.New("invalid navigation transition")

// CanNavigateTo reports whether a top-level transition from a to next is allowed.
func (a Area) CanNavigateTo(next Area) bool {
	for _, allowed := range validAreaTransitions[a] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AvailableDestinations computes the tab set for a role. Home is always
// present; doctor onboarding only while the role is admin. Pure: callers
// must re-invoke it on every role change.
func AvailableDestinations(role Role) []Destination {
	destinations := []Destination{DestinationHome}
	if role == RoleAdmin {
		destinations = append(destinations, DestinationDoctorOnboarding)
	}
	return destinations
}

// DestinationAvailable reports whether d is in the tab set for role.
func DestinationAvailable(role Role, d Destination) bool {
	for _, dest := range AvailableDestinations(role) {
		if dest == d {
			return true
		}
	}
	return false
}

// Navigator is the two-level navigation state machine: a top-level area
// plus the active tab within the main area.
type Navigator struct {
	Area      Area        `json:"area"`
	ActiveTab Destination `json:"active_tab"`
}

// NewNavigator returns the initial navigation state: main area, home tab.
func NewNavigator() Navigator {
	return Navigator{Area: AreaMain, ActiveTab: DestinationHome}
}

// GoTo performs a top-level area transition.
func (n *Navigator) GoTo(next Area) error {
	if !n.Area.CanNavigateTo(next) {
		return ErrInvalidNavigation
	}
	n.Area = next
	return nil
}

// Enter selects a tab in the main area. The destination gate is enforced
// here again even when the tab set already hid it: a denied entry forces
// the navigator back to home and returns ErrAccessDenied.
func (n *Navigator) Enter(d Destination, role Role) error {
	if n.Area != AreaMain {
		return ErrInvalidNavigation
	}
	if !DestinationAvailable(role, d) {
		n.ActiveTab = DestinationHome
		return ErrAccessDenied
	}
	n.ActiveTab = d
	return nil
}

// Refresh recomputes the tab set for role and falls back to home when the
// active tab is no longer available (admin access revoked mid-session).
// It reports whether a fallback happened.
func (n *Navigator) Refresh(role Role) bool {
	if DestinationAvailable(role, n.ActiveTab) {
		return false
	}
	n.ActiveTab = DestinationHome
	return true
}
