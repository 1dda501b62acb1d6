package ports

import (
	"context"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// PatientRegistrationInput carries the patient sign-up form fields.
type PatientRegistrationInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// DoctorRegistrationInput carries the doctor onboarding form fields.
// CRM, phone and price are accepted as free-form text.
type DoctorRegistrationInput struct {
	Name            string
	CRM             string
	Specialty       string
	Email           string
	Phone           string
	Price           string
	Password        string
	ConfirmPassword string
}

// RegistrationService validates sign-up submissions. Doctor registration
// additionally requires the caller's role to be admin, independent of any
// gate applied at the transport layer.
type RegistrationService interface {
	RegisterPatient(ctx context.Context, in PatientRegistrationInput) error
	RegisterDoctor(ctx context.Context, role domain.Role, in DoctorRegistrationInput) error
}

// RegistrationSink receives fully-validated submissions. This is the seam
// where a real backend would be injected; the default sink logs the
// submission and discards it.
type RegistrationSink interface {
	SubmitPatient(ctx context.Context, patient domain.Patient) error
	SubmitDoctor(ctx context.Context, doctor domain.Doctor) error
}
