package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/api/metrics"
	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

type RegistrationHandler struct {
	registration ports.RegistrationService
}

func NewRegistrationHandler(registration ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

// RegisterPatient handles POST /v1/signup/patients.
func (h *RegistrationHandler) RegisterPatient(c echo.Context) error {
	var req patientSignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("patient", "invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.registration.RegisterPatient(c.Request().Context(), ports.PatientRegistrationInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("patient", "invalid").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("patient", "accepted").Inc()
	return c.JSON(http.StatusCreated, signUpResponse{
		Message:     "Conta criada com sucesso!",
		ClearFields: true,
	})
}

// RegisterDoctor handles POST /v1/signup/doctors. The route is already
// gated to admins; the service re-checks the role regardless.
func (h *RegistrationHandler) RegisterDoctor(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	var req doctorSignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("doctor", "invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.registration.RegisterDoctor(c.Request().Context(), role, ports.DoctorRegistrationInput{
		Name:            req.Name,
		CRM:             req.CRM,
		Specialty:       req.Specialty,
		Email:           req.Email,
		Phone:           req.Phone,
		Price:           req.Price,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		result := "invalid"
		if errors.Is(err, domain.ErrAccessDenied) {
			result = "forbidden"
		}
		metrics.RegistrationsTotal.WithLabelValues("doctor", result).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("doctor", "accepted").Inc()
	return c.JSON(http.StatusCreated, signUpResponse{
		Message:     "Médico cadastrado com sucesso!",
		ClearFields: true,
	})
}

// Specialties handles GET /v1/specialties — the catalog backing the doctor
// form's picker.
func (h *RegistrationHandler) Specialties(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"specialties": domain.Specialties})
}
