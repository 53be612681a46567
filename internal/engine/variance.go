package engine

import (
	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// metricVariance deviation of actual from the peer median. Both legs must be
// present; otherwise the variance is undefined.
func metricVariance(m model.Metric) model.MetricVariance {
	if m.Actual == nil || m.PeerMid == nil {
		return model.MetricVariance{}
	}
	v := *m.Actual - *m.PeerMid
	pct := v / *m.PeerMid * 100
	return model.MetricVariance{Variance: &v, VariancePct: &pct}
}

// ComputeVariance augments one record with per-metric peer-median deviations.
// Sign convention: for cost metrics (AOE, labor, COGS) positive variance is
// over peer median (worse); for revenue positive is better. Downstream
// coloring and scoring rely on this exactly.
func ComputeVariance(rec *model.BenchmarkRecord) model.FacilityWithVariance {
	fv := model.FacilityWithVariance{
		BenchmarkRecord: *rec,
		AOEVariance:     metricVariance(rec.AOE),
		LaborVariance:   metricVariance(rec.Labor),
		COGSVariance:    metricVariance(rec.COGS),
		RevenueVariance: metricVariance(rec.Revenue),
	}

	// Total variance mirrors the AOE variance, not a sum across metrics.
	if fv.AOEVariance.Variance != nil {
		total := *fv.AOEVariance.Variance
		fv.TotalVariance = &total
	}

	// Lower AOE vs peer scores higher.
	if fv.AOEVariance.VariancePct != nil {
		score := -*fv.AOEVariance.VariancePct
		fv.PerformanceScore = &score
	}

	return fv
}

// ComputeVariances augments every record, then drops those whose AOE
// variance is undefined. Imported records always carry nil peer fields, so
// they never reach variance, ranking, or system-comparison views.
func ComputeVariances(records []*model.BenchmarkRecord) []model.FacilityWithVariance {
	out := make([]model.FacilityWithVariance, 0, len(records))
	for _, rec := range records {
		fv := ComputeVariance(rec)
		if fv.AOEVariance.Variance == nil {
			continue
		}
		out = append(out, fv)
	}
	return out
}
