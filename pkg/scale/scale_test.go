package scale

import "testing"

func TestScaler_DoubleWidthViewport(t *testing.T) {
	s := New(750, 1624)

	if got := s.ScaleWidth(375); got != 750 {
		t.Fatalf("ScaleWidth(375) = %v, want 750", got)
	}
	if got := s.ScaleHeight(812); got != 1624 {
		t.Fatalf("ScaleHeight(812) = %v, want 1624", got)
	}
	if got := s.ModerateScale(100, 0.5); got != 150 {
		t.Fatalf("ModerateScale(100, 0.5) = %v, want 150", got)
	}
}

func TestScaler_ReferenceViewportIsIdentity(t *testing.T) {
	s := New(ReferenceWidth, ReferenceHeight)

	for _, size := range []float64{0, 8, 16, 48, 375} {
		if got := s.ScaleWidth(size); got != size {
			t.Fatalf("ScaleWidth(%v) = %v on reference viewport", size, got)
		}
		if got := s.ScaleHeight(size); got != size {
			t.Fatalf("ScaleHeight(%v) = %v on reference viewport", size, got)
		}
		if got := s.ModerateScale(size, DefaultFactor); got != size {
			t.Fatalf("ModerateScale(%v) = %v on reference viewport", size, got)
		}
	}
}

func TestScaler_ModerateFactorBounds(t *testing.T) {
	s := New(750, 1624)

	// factor 0 disables scaling entirely, factor 1 is pure linear scaling.
	if got := s.ModerateScale(100, 0); got != 100 {
		t.Fatalf("factor 0: got %v, want 100", got)
	}
	if got := s.ModerateScale(100, 1); got != s.ScaleWidth(100) {
		t.Fatalf("factor 1: got %v, want %v", got, s.ScaleWidth(100))
	}
}
