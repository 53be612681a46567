package engine

import (
	"sort"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Direction sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortField enumerated sortable field. Each maps to an accessor; dynamic
// field lookup by name is deliberately avoided.
type SortField string

const (
	SortAOEVariancePct     SortField = "aoe_variance_pct"
	SortLaborVariancePct   SortField = "labor_variance_pct"
	SortCOGSVariancePct    SortField = "cogs_variance_pct"
	SortRevenueVariancePct SortField = "revenue_variance_pct"
	SortAOEPPD             SortField = "aoe_ppd"
	SortLaborPPD           SortField = "labor_ppd"
	SortCOGSPPD            SortField = "cogs_ppd"
	SortRevenuePPD         SortField = "revenue_ppd"
	SortDailyCensus        SortField = "daily_census"
	SortPerformanceScore   SortField = "performance_score"
)

// Default ranking: worst performers first.
const (
	DefaultSortField = SortAOEVariancePct
	DefaultDirection = Descending
)

var sortAccessors = map[SortField]func(*model.FacilityWithVariance) *float64{
	SortAOEVariancePct:     func(r *model.FacilityWithVariance) *float64 { return r.AOEVariance.VariancePct },
	SortLaborVariancePct:   func(r *model.FacilityWithVariance) *float64 { return r.LaborVariance.VariancePct },
	SortCOGSVariancePct:    func(r *model.FacilityWithVariance) *float64 { return r.COGSVariance.VariancePct },
	SortRevenueVariancePct: func(r *model.FacilityWithVariance) *float64 { return r.RevenueVariance.VariancePct },
	SortAOEPPD:             func(r *model.FacilityWithVariance) *float64 { return r.AOE.Actual },
	SortLaborPPD:           func(r *model.FacilityWithVariance) *float64 { return r.Labor.Actual },
	SortCOGSPPD:            func(r *model.FacilityWithVariance) *float64 { return r.COGS.Actual },
	SortRevenuePPD:         func(r *model.FacilityWithVariance) *float64 { return r.Revenue.Actual },
	SortDailyCensus:        func(r *model.FacilityWithVariance) *float64 { return r.DailyCensus },
	SortPerformanceScore:   func(r *model.FacilityWithVariance) *float64 { return r.PerformanceScore },
}

// ParseSortField validates a query-supplied sort field, falling back to the
// default when unknown.
func ParseSortField(s string) SortField {
	field := SortField(s)
	if _, ok := sortAccessors[field]; !ok {
		return DefaultSortField
	}
	return field
}

// Rank returns a new ordering of the records by the named field. The caller's
// slice is not mutated. Records with a nil value on the sort field sort after
// every non-nil record regardless of direction.
func Rank(records []model.FacilityWithVariance, field SortField, dir Direction) []model.FacilityWithVariance {
	acc, ok := sortAccessors[field]
	if !ok {
		acc = sortAccessors[DefaultSortField]
	}

	out := make([]model.FacilityWithVariance, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a := acc(&out[i])
		b := acc(&out[j])
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if dir == Ascending {
			return *a < *b
		}
		return *a > *b
	})
	return out
}
