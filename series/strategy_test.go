package series

import (
	"errors"
	"sync"
	"testing"

	"github.com/berquist/simd-examples/internal/testutil"
)

func availableStrategies(t testing.TB) []Strategy {
	t.Helper()

	var out []Strategy
	for _, s := range Strategies() {
		if s.Available() {
			out = append(out, s)
		}
	}
	return out
}

func TestStrategyNamesRoundTrip(t *testing.T) {
	want := []string{"naive", "inline", "vector", "vector-inner"}
	for i, s := range Strategies() {
		if s.String() != want[i] {
			t.Fatalf("Strategies()[%d] = %q, want %q", i, s, want[i])
		}

		parsed, err := ParseStrategy("  " + want[i] + " ")
		if err != nil || parsed != s {
			t.Fatalf("ParseStrategy(%q) = %v, %v", want[i], parsed, err)
		}
	}

	if got, err := ParseStrategy("VECTOR"); err != nil || got != Vector {
		t.Fatalf("ParseStrategy is case-insensitive: got %v, %v", got, err)
	}
}

func TestParseStrategyUnknown(t *testing.T) {
	_, err := ParseStrategy("sse4")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}

	if s := Strategy(17).String(); s != "Strategy(17)" {
		t.Fatalf("String of undefined strategy = %q", s)
	}
	if Strategy(-1).Available() {
		t.Fatal("undefined strategy must not be available")
	}
}

func TestStrategyAvailability(t *testing.T) {
	for _, s := range []Strategy{Naive, Inline, Vector} {
		if !s.Available() {
			t.Fatalf("%v must always be available", s)
		}
	}
	if VectorInner.Available() != NativeAvailable() {
		t.Fatal("VectorInner availability must follow NativeAvailable")
	}
}

func TestStrategiesEmptySeriesIsZero(t *testing.T) {
	for _, s := range availableStrategies(t) {
		if got := s.Evaluate(1989, nil); got != 0 {
			t.Fatalf("%v on empty series = %v, want 0", s, got)
		}
	}
	if got := NewBlockEvaluator(nil).Evaluate(1989); got != 0 {
		t.Fatalf("BlockEvaluator on empty series = %v, want 0", got)
	}
}

func TestStrategiesSingleConstantTerm(t *testing.T) {
	s := Series{{A: 1, B: 0, C: 0}}
	for _, st := range availableStrategies(t) {
		if got := st.Evaluate(1989, s); got != 1 {
			t.Fatalf("%v = %v, want 1", st, got)
		}
	}
	if got := NewBlockEvaluator(s).Evaluate(1989); got != 1 {
		t.Fatalf("BlockEvaluator = %v, want 1", got)
	}
}

func TestStrategiesCrossEquivalence(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := int(seed)*3%34 + 1
		s := randomSeries(seed, n)
		block := NewBlockEvaluator(s)

		for _, tm := range testTimes {
			want := Evaluate(tm, s)
			for _, st := range availableStrategies(t) {
				testutil.RequireNearlyEqual(t, st.Evaluate(tm, s), want, Tolerance)
			}
			testutil.RequireNearlyEqual(t, block.Evaluate(tm), want, Tolerance)
		}
	}
}

// Permuting the terms changes rounding only.
func TestStrategiesPermutationWithinTolerance(t *testing.T) {
	s := randomSeries(77, 23)
	want := Evaluate(1989, s)

	for seed := int64(0); seed < 8; seed++ {
		perm := testutil.Permute(seed, len(s))
		shuffled := make(Series, len(s))
		for i, j := range perm {
			shuffled[i] = s[j]
		}

		for _, st := range availableStrategies(t) {
			testutil.RequireNearlyEqual(t, st.Evaluate(1989, shuffled), want, Tolerance)
		}
	}
}

func TestStrategiesConcurrentUse(t *testing.T) {
	s := randomSeries(5, 29)
	strategies := availableStrategies(t)

	want := make([]float64, len(strategies))
	for i, st := range strategies {
		want[i] = st.Evaluate(1989, s)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < 200; iter++ {
				for i, st := range strategies {
					if got := st.Evaluate(1989, s); got != want[i] {
						errs <- st.String()
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for name := range errs {
		t.Errorf("%s gave a different result under concurrent use", name)
	}
}
