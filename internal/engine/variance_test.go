package engine

import (
	"testing"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

func TestComputeVarianceAOE(t *testing.T) {
	rec := record("A", "Sys1", "2025-Q1", f(100), f(100), f(90))

	fv := ComputeVariance(rec)

	if fv.AOEVariance.Variance == nil || *fv.AOEVariance.Variance != 10 {
		t.Fatalf("AOE variance = %v, want 10", fv.AOEVariance.Variance)
	}
	wantPct := 10.0 / 90.0 * 100
	if fv.AOEVariance.VariancePct == nil || !approxEqual(*fv.AOEVariance.VariancePct, wantPct) {
		t.Errorf("AOE variance pct = %v, want %v", *fv.AOEVariance.VariancePct, wantPct)
	}
}

func TestComputeVarianceRoundTrip(t *testing.T) {
	// Re-deriving the percentage from the stored variance recovers it.
	rec := record("A", "Sys1", "2025-Q1", nil, f(123.45), f(98.7))

	fv := ComputeVariance(rec)

	rederived := *fv.AOEVariance.Variance / *rec.AOE.PeerMid * 100
	if !approxEqual(rederived, *fv.AOEVariance.VariancePct) {
		t.Errorf("re-derived pct = %v, stored pct = %v", rederived, *fv.AOEVariance.VariancePct)
	}
}

func TestComputeVarianceMissingLegs(t *testing.T) {
	tests := []struct {
		name   string
		actual *float64
		mid    *float64
	}{
		{"no actual", nil, f(90)},
		{"no peer mid", f(100), nil},
		{"neither", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record("A", "Sys1", "2025-Q1", nil, tt.actual, tt.mid)
			fv := ComputeVariance(rec)
			if fv.AOEVariance.Variance != nil || fv.AOEVariance.VariancePct != nil {
				t.Error("variance should be undefined when a leg is missing")
			}
			if fv.TotalVariance != nil || fv.PerformanceScore != nil {
				t.Error("total variance and score should be nil when AOE variance is undefined")
			}
		})
	}
}

func TestComputeVarianceTotalMirrorsAOE(t *testing.T) {
	rec := record("A", "Sys1", "2025-Q1", nil, f(100), f(90))
	rec.Labor = model.Metric{Actual: f(50), PeerMid: f(40)}

	fv := ComputeVariance(rec)

	if fv.TotalVariance == nil || *fv.TotalVariance != *fv.AOEVariance.Variance {
		t.Errorf("total variance = %v, want AOE variance %v", fv.TotalVariance, fv.AOEVariance.Variance)
	}
	// Mirrors AOE only; labor must not be summed in.
	if *fv.TotalVariance != 10 {
		t.Errorf("total variance = %v, want 10", *fv.TotalVariance)
	}
}

func TestComputeVariancePerformanceScore(t *testing.T) {
	// Below-peer AOE scores positive.
	rec := record("A", "Sys1", "2025-Q1", nil, f(80), f(100))

	fv := ComputeVariance(rec)

	if fv.PerformanceScore == nil || !approxEqual(*fv.PerformanceScore, 20) {
		t.Errorf("performance score = %v, want 20", fv.PerformanceScore)
	}
}

func TestComputeVarianceSignConvention(t *testing.T) {
	rec := record("A", "Sys1", "2025-Q1", nil, f(110), f(100))
	rec.Revenue = model.Metric{Actual: f(110), PeerMid: f(100)}

	fv := ComputeVariance(rec)

	// Both variances are computed identically; the cost-vs-revenue coloring
	// convention lives downstream and relies on raw signs being preserved.
	if *fv.AOEVariance.Variance != 10 {
		t.Errorf("AOE variance = %v, want +10 (over peer)", *fv.AOEVariance.Variance)
	}
	if *fv.RevenueVariance.Variance != 10 {
		t.Errorf("revenue variance = %v, want +10 (over peer)", *fv.RevenueVariance.Variance)
	}
}

func TestComputeVariancesExcludesUndefined(t *testing.T) {
	records := []*model.BenchmarkRecord{
		record("curated", "Sys1", "2025-Q1", nil, f(100), f(90)),
		record("imported", "Imported", "Imported", nil, f(100), nil), // nil peer fields
		record("sparse", "Sys1", "2025-Q1", nil, nil, nil),
	}

	got := ComputeVariances(records)

	if len(got) != 1 {
		t.Fatalf("kept %d records, want 1", len(got))
	}
	if got[0].FacilityName != "curated" {
		t.Errorf("kept %s, want curated", got[0].FacilityName)
	}
}
