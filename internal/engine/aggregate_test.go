package engine

import (
	"testing"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

func TestComputeAveragesEmpty(t *testing.T) {
	got := ComputeAverages(nil)

	if got.FacilityCount != 0 {
		t.Errorf("FacilityCount = %d, want 0", got.FacilityCount)
	}
	if got.AvgAOEPPD != 0 || got.AvgLaborPPD != 0 || got.AvgCOGSPPD != 0 || got.AvgRevenuePPD != 0 {
		t.Error("empty input should yield zero averages")
	}
}

func TestComputeAveragesSkipsNull(t *testing.T) {
	records := []*model.BenchmarkRecord{
		record("A", "Sys1", "2025-Q1", f(100), f(40), nil),
		record("B", "Sys1", "2025-Q1", nil, f(60), nil),
		record("C", "Sys1", "2025-Q1", f(200), nil, nil),
	}

	got := ComputeAverages(records)

	if !approxEqual(got.AvgAOEPPD, 50) {
		t.Errorf("AvgAOEPPD = %v, want 50 (mean over non-null)", got.AvgAOEPPD)
	}
	if !approxEqual(got.AvgCensus, 150) {
		t.Errorf("AvgCensus = %v, want 150", got.AvgCensus)
	}
	if got.FacilityCount != 3 {
		t.Errorf("FacilityCount = %d, want 3", got.FacilityCount)
	}
}

func TestComputePortfolioMetricsTwoFacilities(t *testing.T) {
	records := ComputeVariances([]*model.BenchmarkRecord{
		record("over", "Sys1", "2025-Q1", f(100), f(100), f(90)),
		record("under", "Sys1", "2025-Q1", f(100), f(80), f(90)),
	})

	got := ComputePortfolioMetrics(records)

	if got.BelowMedian != 1 {
		t.Errorf("BelowMedian = %d, want 1", got.BelowMedian)
	}
	if got.AboveMedian != 1 {
		t.Errorf("AboveMedian = %d, want 1", got.AboveMedian)
	}
	if got.TopPerformer == nil || got.TopPerformer.FacilityName != "under" {
		t.Errorf("TopPerformer = %v, want the under-peer facility", got.TopPerformer)
	}
	// +11.1% and -11.1% average to zero.
	if !approxEqual(got.AvgAOEVariancePct, 0) {
		t.Errorf("AvgAOEVariancePct = %v, want 0", got.AvgAOEVariancePct)
	}
}

func TestComputePortfolioMetricsZeroVarianceCountsAbove(t *testing.T) {
	records := ComputeVariances([]*model.BenchmarkRecord{
		record("exact", "Sys1", "2025-Q1", nil, f(90), f(90)),
	})

	got := ComputePortfolioMetrics(records)

	if got.BelowMedian != 0 || got.AboveMedian != 1 {
		t.Errorf("zero variance counted below=%d above=%d, want 0/1", got.BelowMedian, got.AboveMedian)
	}
}

func TestComputePortfolioMetricsPotentialSavings(t *testing.T) {
	records := ComputeVariances([]*model.BenchmarkRecord{
		record("over", "Sys1", "2025-Q1", f(100), f(95), f(90)),  // +5 PPD excess
		record("under", "Sys1", "2025-Q1", f(100), f(85), f(90)), // below peer, no savings
		record("no census", "Sys1", "2025-Q1", nil, f(95), f(90)),
	})

	got := ComputePortfolioMetrics(records)

	want := 5.0 * 100 * 365
	if !approxEqual(got.PotentialSavings, want) {
		t.Errorf("PotentialSavings = %v, want %v", got.PotentialSavings, want)
	}
}

func TestComputePortfolioMetricsEmpty(t *testing.T) {
	got := ComputePortfolioMetrics(nil)

	if got.FacilityCount != 0 || got.BelowMedian != 0 || got.AboveMedian != 0 {
		t.Error("empty input should yield zero counts")
	}
	if got.PotentialSavings != 0 || got.AvgAOEVariancePct != 0 {
		t.Error("empty input should yield zero metrics")
	}
	if got.TopPerformer != nil {
		t.Error("empty input should have no top performer")
	}
}

func TestComputeSystemRollups(t *testing.T) {
	recA := record("A1", "Alpha", "2025-Q1", nil, f(100), f(90)) // +11.1%
	recB1 := record("B1", "Beta", "2025-Q1", nil, f(80), f(90))  // -11.1%
	recB2 := record("B2", "Beta", "2025-Q1", nil, f(90), f(90))  // 0%
	recB1.Labor = model.Metric{Actual: f(50), PeerMid: f(40)}

	got := ComputeSystemRollups(ComputeVariances([]*model.BenchmarkRecord{recA, recB1, recB2}))

	if len(got) != 2 {
		t.Fatalf("rollup groups = %d, want 2", len(got))
	}
	// Ascending by mean AOE variance: Beta (−5.55) before Alpha (+11.1).
	if got[0].HealthSystem != "Beta" || got[1].HealthSystem != "Alpha" {
		t.Errorf("rollup order = %s, %s, want Beta, Alpha", got[0].HealthSystem, got[1].HealthSystem)
	}
	if got[0].FacilityCount != 2 {
		t.Errorf("Beta facility count = %d, want 2", got[0].FacilityCount)
	}
	if got[0].BelowMedian != 1 {
		t.Errorf("Beta below median = %d, want 1", got[0].BelowMedian)
	}
	if !approxEqual(got[0].BelowMedianPct, 50) {
		t.Errorf("Beta below median pct = %v, want 50", got[0].BelowMedianPct)
	}
	if !approxEqual(got[0].AvgLaborVariancePct, 25) {
		t.Errorf("Beta labor variance pct = %v, want 25", got[0].AvgLaborVariancePct)
	}
}

func TestComputeSystemRollupsEmpty(t *testing.T) {
	got := ComputeSystemRollups(nil)
	if len(got) != 0 {
		t.Errorf("rollup of empty input = %v, want empty", got)
	}
}
