package series_test

import (
	"math"
	"testing"

	"github.com/berquist/simd-examples/series"
	"github.com/berquist/simd-examples/series/refdata"
)

func TestImplsAreConsistentOnReferenceSeries(t *testing.T) {
	a0 := refdata.A0()
	if len(a0) != refdata.Len {
		t.Fatalf("reference series has %d terms, want %d", len(a0), refdata.Len)
	}

	want := series.Evaluate(refdata.Epoch, a0)
	for _, s := range series.Strategies() {
		if !s.Available() {
			t.Logf("%v not available on this processor, skipped", s)
			continue
		}
		if got := s.Evaluate(refdata.Epoch, a0); math.Abs(got-want) >= series.Tolerance {
			t.Errorf("%v: got %.17g, want %.17g (diff %g)", s, got, want, math.Abs(got-want))
		}
	}

	block := series.NewBlockEvaluator(a0)
	if got := block.Evaluate(refdata.Epoch); math.Abs(got-want) >= series.Tolerance {
		t.Errorf("block: got %.17g, want %.17g", got, want)
	}
}

func TestReferenceSeriesIsCopied(t *testing.T) {
	a := refdata.A0()
	a[0].A = 0

	if b := refdata.A0(); b[0].A == 0 {
		t.Fatal("A0 must return an independent copy")
	}
}
