package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/pkg/scale"
)

// LayoutHandler computes responsive layout metrics for a device viewport.
// The viewport is re-sampled on every request, so dimension changes are
// always picked up.
type LayoutHandler struct{}

func NewLayoutHandler() *LayoutHandler {
	return &LayoutHandler{}
}

type scaledSize struct {
	Size     float64 `json:"size"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Moderate float64 `json:"moderate"`
}

type layoutResponse struct {
	ReferenceWidth  float64      `json:"reference_width"`
	ReferenceHeight float64      `json:"reference_height"`
	Insets          scale.Insets `json:"insets"`
	Sizes           []scaledSize `json:"sizes,omitempty"`
}

// Metrics handles GET /v1/layout/metrics.
//
// Query parameters: width and height (required, device viewport),
// status_bar and bottom_inset (optional, fallback 0), factor (optional,
// default 0.5), and repeated size values to scale.
func (h *LayoutHandler) Metrics(c echo.Context) error {
	width, err := parseFloat(c.QueryParam("width"))
	if err != nil || width <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "width must be a positive number")
	}
	height, err := parseFloat(c.QueryParam("height"))
	if err != nil || height <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "height must be a positive number")
	}

	factor := scale.DefaultFactor
	if raw := c.QueryParam("factor"); raw != "" {
		if factor, err = parseFloat(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "factor must be a number")
		}
	}

	scaler := scale.New(width, height)
	resp := layoutResponse{
		ReferenceWidth:  scale.ReferenceWidth,
		ReferenceHeight: scale.ReferenceHeight,
		Insets: scale.Insets{
			StatusBar: parseFloatOrZero(c.QueryParam("status_bar")),
			Bottom:    parseFloatOrZero(c.QueryParam("bottom_inset")),
		},
	}

	for _, raw := range c.QueryParams()["size"] {
		size, err := parseFloat(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be a number")
		}
		resp.Sizes = append(resp.Sizes, scaledSize{
			Size:     size,
			Width:    scaler.ScaleWidth(size),
			Height:   scaler.ScaleHeight(size),
			Moderate: scaler.ModerateScale(size, factor),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

// parseFloatOrZero applies the documented fallback for platform-supplied
// insets the host did not report.
func parseFloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
