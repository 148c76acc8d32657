package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if |got - want| is not strictly below eps.
// A NaN on either side always fails.
func RequireNearlyEqual(t testing.TB, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff < eps) {
		t.Fatalf("got %.17g, want %.17g (diff %v >= eps %v)", got, want, diff, eps)
	}
}
