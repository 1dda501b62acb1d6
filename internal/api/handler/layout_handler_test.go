package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLayoutHandler_Metrics(t *testing.T) {
	e := newEcho()
	h := NewLayoutHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/layout/metrics?width=750&height=1624&status_bar=20&size=375&size=100", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Metrics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		ReferenceWidth float64 `json:"reference_width"`
		Insets         struct {
			StatusBar float64 `json:"status_bar"`
			Bottom    float64 `json:"bottom"`
		} `json:"insets"`
		Sizes []struct {
			Size     float64 `json:"size"`
			Width    float64 `json:"width"`
			Height   float64 `json:"height"`
			Moderate float64 `json:"moderate"`
		} `json:"sizes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if resp.ReferenceWidth != 375 {
		t.Fatalf("unexpected reference width: %v", resp.ReferenceWidth)
	}
	if resp.Insets.StatusBar != 20 || resp.Insets.Bottom != 0 {
		t.Fatalf("expected status_bar=20 and bottom fallback 0, got %+v", resp.Insets)
	}
	if len(resp.Sizes) != 2 {
		t.Fatalf("expected 2 scaled sizes, got %d", len(resp.Sizes))
	}
	if resp.Sizes[0].Width != 750 {
		t.Fatalf("ScaleWidth(375) on width 750 should be 750, got %v", resp.Sizes[0].Width)
	}
	if resp.Sizes[1].Moderate != 150 {
		t.Fatalf("ModerateScale(100, 0.5) should be 150, got %v", resp.Sizes[1].Moderate)
	}
}

func TestLayoutHandler_Metrics_RequiresViewport(t *testing.T) {
	e := newEcho()
	h := NewLayoutHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/layout/metrics?height=1624", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Metrics(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
