package engine

import (
	"math"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Shared fixture helpers for the engine tests.

func f(v float64) *float64 { return &v }

func record(name, system, period string, census *float64, aoe, peerMid *float64) *model.BenchmarkRecord {
	return &model.BenchmarkRecord{
		ID:           name,
		FacilityName: name,
		DisplayName:  name,
		HealthSystem: system,
		Period:       period,
		DailyCensus:  census,
		AOE:          model.Metric{Actual: aoe, PeerMid: peerMid},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
