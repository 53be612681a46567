package engine

import (
	"sort"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Averages simple per-metric arithmetic means for the overview panel
type Averages struct {
	FacilityCount int     `json:"facilityCount"`
	AvgAOEPPD     float64 `json:"avgAOEPPD"`
	AvgLaborPPD   float64 `json:"avgLaborPPD"`
	AvgCOGSPPD    float64 `json:"avgCOGSPPD"`
	AvgRevenuePPD float64 `json:"avgRevenuePPD"`
	AvgCensus     float64 `json:"avgCensus"`
}

// PortfolioMetrics portfolio-level peer-comparison rollup
type PortfolioMetrics struct {
	FacilityCount     int      `json:"facilityCount"`
	AvgAOEVariancePct float64  `json:"avgAOEVariancePct"`
	BelowMedian       int      `json:"belowMedian"`
	AboveMedian       int      `json:"aboveMedian"`
	PotentialSavings  float64  `json:"potentialSavings"`
	TopPerformer      *model.FacilityWithVariance `json:"topPerformer,omitempty"`
}

// SystemRollup per-health-system variance summary
type SystemRollup struct {
	HealthSystem        string  `json:"healthSystem"`
	FacilityCount       int     `json:"facilityCount"`
	AvgAOEVariancePct   float64 `json:"avgAOEVariancePct"`
	AvgLaborVariancePct float64 `json:"avgLaborVariancePct"`
	AvgCOGSVariancePct  float64 `json:"avgCOGSVariancePct"`
	BelowMedian         int     `json:"belowMedian"`
	BelowMedianPct      float64 `json:"belowMedianPct"`
}

// ComputeAverages means each metric over records where it is non-null.
// Empty input yields the zero struct, never an error.
func ComputeAverages(records []*model.BenchmarkRecord) Averages {
	avg := Averages{FacilityCount: len(records)}

	mean := func(pick func(*model.BenchmarkRecord) *float64) float64 {
		var sum float64
		var n int
		for _, rec := range records {
			if v := pick(rec); v != nil {
				sum += *v
				n++
			}
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}

	avg.AvgAOEPPD = mean(func(r *model.BenchmarkRecord) *float64 { return r.AOE.Actual })
	avg.AvgLaborPPD = mean(func(r *model.BenchmarkRecord) *float64 { return r.Labor.Actual })
	avg.AvgCOGSPPD = mean(func(r *model.BenchmarkRecord) *float64 { return r.COGS.Actual })
	avg.AvgRevenuePPD = mean(func(r *model.BenchmarkRecord) *float64 { return r.Revenue.Actual })
	avg.AvgCensus = mean(func(r *model.BenchmarkRecord) *float64 { return r.DailyCensus })
	return avg
}

// ComputePortfolioMetrics reduces variance-augmented records to the peer
// comparison summary. Exactly-zero AOE variance counts as at-or-above
// median. Potential savings annualize the positive AOE excess over peer
// median: variance × census × 365, with nil census contributing zero.
func ComputePortfolioMetrics(records []model.FacilityWithVariance) PortfolioMetrics {
	pm := PortfolioMetrics{FacilityCount: len(records)}

	var pctSum float64
	var pctCount int
	for i := range records {
		rec := &records[i]

		if pct := rec.AOEVariance.VariancePct; pct != nil {
			pctSum += *pct
			pctCount++
			if *pct < 0 {
				pm.BelowMedian++
			} else {
				pm.AboveMedian++
			}
			if pm.TopPerformer == nil || *pct < *pm.TopPerformer.AOEVariance.VariancePct {
				pm.TopPerformer = rec
			}
		} else {
			pm.AboveMedian++
		}

		if v := rec.AOEVariance.Variance; v != nil && *v > 0 && rec.DailyCensus != nil {
			pm.PotentialSavings += *v * *rec.DailyCensus * 365
		}
	}

	if pctCount > 0 {
		pm.AvgAOEVariancePct = pctSum / float64(pctCount)
	}
	return pm
}

// ComputeSystemRollups groups variance-augmented records by health system
// and sorts ascending by mean AOE variance, best-performing system first.
func ComputeSystemRollups(records []model.FacilityWithVariance) []SystemRollup {
	type acc struct {
		rollup   SystemRollup
		aoeSum   float64
		aoeN     int
		laborSum float64
		laborN   int
		cogsSum  float64
		cogsN    int
	}

	order := []string{}
	groups := make(map[string]*acc)

	for i := range records {
		rec := &records[i]
		g, ok := groups[rec.HealthSystem]
		if !ok {
			g = &acc{rollup: SystemRollup{HealthSystem: rec.HealthSystem}}
			groups[rec.HealthSystem] = g
			order = append(order, rec.HealthSystem)
		}
		g.rollup.FacilityCount++

		if pct := rec.AOEVariance.VariancePct; pct != nil {
			g.aoeSum += *pct
			g.aoeN++
			if *pct < 0 {
				g.rollup.BelowMedian++
			}
		}
		if pct := rec.LaborVariance.VariancePct; pct != nil {
			g.laborSum += *pct
			g.laborN++
		}
		if pct := rec.COGSVariance.VariancePct; pct != nil {
			g.cogsSum += *pct
			g.cogsN++
		}
	}

	out := make([]SystemRollup, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.aoeN > 0 {
			g.rollup.AvgAOEVariancePct = g.aoeSum / float64(g.aoeN)
		}
		if g.laborN > 0 {
			g.rollup.AvgLaborVariancePct = g.laborSum / float64(g.laborN)
		}
		if g.cogsN > 0 {
			g.rollup.AvgCOGSVariancePct = g.cogsSum / float64(g.cogsN)
		}
		if g.rollup.FacilityCount > 0 {
			g.rollup.BelowMedianPct = float64(g.rollup.BelowMedian) / float64(g.rollup.FacilityCount) * 100
		}
		out = append(out, g.rollup)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgAOEVariancePct < out[j].AvgAOEVariancePct
	})
	return out
}
