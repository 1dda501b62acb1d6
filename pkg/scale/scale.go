// Package scale converts design-reference pixel values into device-actual
// values for a given viewport. The reference design is 375×812; the math is
// pure and performs no bounds checking.
package scale

const (
	ReferenceWidth  = 375.0
	ReferenceHeight = 812.0

	// DefaultFactor dampens linear width scaling for fonts and icons.
	DefaultFactor = 0.5
)

// Insets are environment facts supplied by the host platform. Zero values
// are the documented fallback when the platform reports nothing.
type Insets struct {
	StatusBar float64 `json:"status_bar"`
	Bottom    float64 `json:"bottom"`
}

// Scaler computes layout metrics for one viewport. Construct a fresh one
// per layout pass so viewport changes are picked up.
type Scaler struct {
	Width  float64
	Height float64
}

func New(width, height float64) Scaler {
	return Scaler{Width: width, Height: height}
}

// ScaleWidth scales size linearly by the viewport/reference width ratio.
func (s Scaler) ScaleWidth(size float64) float64 {
	return size * (s.Width / ReferenceWidth)
}

// ScaleHeight scales size linearly by the viewport/reference height ratio.
func (s Scaler) ScaleHeight(size float64) float64 {
	return size * (s.Height / ReferenceHeight)
}

// ModerateScale dampens width scaling by factor:
// size + (ScaleWidth(size) - size) * factor.
func (s Scaler) ModerateScale(size, factor float64) float64 {
	return size + (s.ScaleWidth(size)-size)*factor
}
