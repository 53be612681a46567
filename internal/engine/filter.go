package engine

import (
	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// FilterAll wildcard value accepted by the system and period filters
const FilterAll = "all"

// Filter reduces the record set by health system, period, and census range,
// preserving the original relative order. A nil census always passes the
// range test: a facility with unknown census is never excluded by range
// filtering.
func Filter(records []*model.BenchmarkRecord, healthSystem, period string, censusMin, censusMax float64) []*model.BenchmarkRecord {
	out := make([]*model.BenchmarkRecord, 0, len(records))
	for _, rec := range records {
		if healthSystem != FilterAll && rec.HealthSystem != healthSystem {
			continue
		}
		if period != FilterAll && rec.Period != period {
			continue
		}
		if rec.DailyCensus != nil {
			if *rec.DailyCensus < censusMin || *rec.DailyCensus > censusMax {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}
