package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/api/metrics"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

const adminNotice = "Você tem acesso às funcionalidades administrativas."

type SessionHandler struct {
	session ports.SessionService
}

func NewSessionHandler(session ports.SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// SignIn handles POST /v1/session — signs in and returns the new state.
// A rejected sign-in leaves the prior identity in place so the client can
// retry with its entered values intact.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	state, err := h.session.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SignInFailuresTotal.Inc()
		return err
	}

	metrics.SignInsTotal.WithLabelValues(string(state.Role())).Inc()
	metrics.SessionActive.Set(1)

	resp := toSessionResponse(state)
	if state.IsAdmin {
		resp.AdminNotice = adminNotice
	}
	return c.JSON(http.StatusCreated, resp)
}

// SignOut handles DELETE /v1/session — clears the slot unconditionally.
func (h *SessionHandler) SignOut(c echo.Context) error {
	state := h.session.SignOut()

	metrics.SignOutsTotal.Inc()
	metrics.SessionActive.Set(0)

	return c.JSON(http.StatusOK, toSessionResponse(state))
}

// State handles GET /v1/session — returns the current snapshot.
func (h *SessionHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.session.State()))
}

func toSessionResponse(state ports.SessionState) sessionResponse {
	return sessionResponse{
		Identity: state.Identity,
		IsAdmin:  state.IsAdmin,
		Loading:  state.Loading,
	}
}
