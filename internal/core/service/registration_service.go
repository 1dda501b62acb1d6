package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

// RegistrationService validates sign-up submissions and hands accepted ones
// to the sink. Validation is presence plus password equality only; CRM,
// phone and price remain free-form text.
type RegistrationService struct {
	sink ports.RegistrationSink
	log  zerolog.Logger
}

func NewRegistrationService(sink ports.RegistrationSink, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{sink: sink, log: log}
}

func (s *RegistrationService) RegisterPatient(ctx context.Context, in ports.PatientRegistrationInput) error {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" || in.ConfirmPassword == "" {
		return domain.ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	return s.sink.SubmitPatient(ctx, domain.Patient{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

// RegisterDoctor rejects non-admin callers outright, before validation.
// The route gate already hides the operation; this mirrors the check the
// way a real backend would enforce it.
func (s *RegistrationService) RegisterDoctor(ctx context.Context, role domain.Role, in ports.DoctorRegistrationInput) error {
	if role != domain.RoleAdmin {
		s.log.Warn().Str("role", string(role)).Msg("doctor registration denied")
		return domain.ErrAccessDenied
	}

	if in.Name == "" || in.CRM == "" || in.Specialty == "" || in.Email == "" ||
		in.Phone == "" || in.Price == "" || in.Password == "" || in.ConfirmPassword == "" {
		return domain.ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	return s.sink.SubmitDoctor(ctx, domain.Doctor{
		Name:      in.Name,
		CRM:       in.CRM,
		Specialty: in.Specialty,
		Email:     in.Email,
		Phone:     in.Phone,
		Price:     in.Price,
	})
}
