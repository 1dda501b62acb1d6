package handler

import "github.com/consulta-ja/booking-system/internal/core/domain"

// No format validation on purpose: email and password are free-form and the
// password is never verified.
type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Identity *domain.Identity `json:"identity"`
	IsAdmin  bool             `json:"is_admin"`
	Loading  bool             `json:"loading"`
	// AdminNotice is set once, on the sign-in response that produced an
	// admin identity.
	AdminNotice string `json:"admin_notice,omitempty"`
}
