package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// LogSink logs accepted submissions and discards them. Nothing is stored
// or transmitted; replace with a real backend client to persist intakes.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) SubmitPatient(_ context.Context, patient domain.Patient) error {
	s.log.Info().
		Str("name", patient.Name).
		Str("email", patient.Email).
		Str("phone", patient.Phone).
		Msg("patient sign-up accepted")
	return nil
}

func (s *LogSink) SubmitDoctor(_ context.Context, doctor domain.Doctor) error {
	s.log.Info().
		Str("name", doctor.Name).
		Str("crm", doctor.CRM).
		Str("specialty", doctor.Specialty).
		Str("email", doctor.Email).
		Str("phone", doctor.Phone).
		Str("price", doctor.Price).
		Msg("doctor onboarding accepted")
	return nil
}
