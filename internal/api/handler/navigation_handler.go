package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/api/metrics"
	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

type NavigationHandler struct {
	navigation ports.NavigationService
}

func NewNavigationHandler(navigation ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

type enterRequest struct {
	Destination string `json:"destination" validate:"required,oneof=home doctor_onboarding"`
}

type goToRequest struct {
	Area string `json:"area" validate:"required,oneof=main signup"`
}

type navigationResponse struct {
	Area         domain.Area          `json:"area"`
	ActiveTab    domain.Destination   `json:"active_tab"`
	Destinations []domain.Destination `json:"destinations"`
}

// State handles GET /v1/navigation — the navigator position plus the tab
// set reachable for the active role.
func (h *NavigationHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, toNavigationResponse(h.navigation.State()))
}

// Enter handles POST /v1/navigation/enter — selects a tab. A gate denial
// returns 403 with the navigator already forced back to home, so the body
// doubles as the forced back-navigation the client must apply.
func (h *NavigationHandler) Enter(c echo.Context) error {
	var req enterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	state, err := h.navigation.Enter(domain.Destination(req.Destination))
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			metrics.GateDeniedTotal.WithLabelValues(req.Destination).Inc()
			return c.JSON(http.StatusForbidden, map[string]any{
				"error":      err.Error(),
				"navigation": toNavigationResponse(state),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, toNavigationResponse(state))
}

// GoTo handles POST /v1/navigation/goto — a top-level area transition
// (main to signup and back).
func (h *NavigationHandler) GoTo(c echo.Context) error {
	var req goToRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	state, err := h.navigation.GoTo(domain.Area(req.Area))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNavigationResponse(state))
}

func toNavigationResponse(state ports.NavigationState) navigationResponse {
	return navigationResponse{
		Area:         state.Area,
		ActiveTab:    state.ActiveTab,
		Destinations: state.Destinations,
	}
}
