package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// MockAuthenticator classifies any email without verifying credentials.
// The fixed admin address yields the admin identity; every other email
// yields a patient named after the local part. The password is accepted
// and ignored. Swap this for a real backend client when one exists.
type MockAuthenticator struct{}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{}
}

func (a *MockAuthenticator) Authenticate(_ context.Context, email, _ string) (*domain.Identity, error) {
	if domain.IsAdminEmail(email) {
		return &domain.Identity{
			ID:    uuid.NewString(),
			Name:  domain.AdminName,
			Email: domain.AdminEmail,
			Role:  domain.RoleAdmin,
		}, nil
	}
	return &domain.Identity{
		ID:    uuid.NewString(),
		Name:  domain.DisplayName(email),
		Email: email,
		Role:  domain.RolePatient,
	}, nil
}
