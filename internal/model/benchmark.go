package model

// Field canonical record field name
type Field string

const (
	FieldFacilityName   Field = "facility_name"
	FieldHealthSystem   Field = "health_system"
	FieldPeriod         Field = "period"
	FieldDailyCensus    Field = "daily_census"
	FieldAOEPPD         Field = "aoe_ppd"
	FieldLaborPPD       Field = "labor_ppd"
	FieldCOGSPPD        Field = "cogs_ppd"
	FieldRevenuePPD     Field = "revenue_ppd"
	FieldProductiveFTEs Field = "productive_ftes"
)

// NumericFields importable numeric fields, in canonical order
var NumericFields = []Field{
	FieldDailyCensus,
	FieldAOEPPD,
	FieldLaborPPD,
	FieldCOGSPPD,
	FieldRevenuePPD,
	FieldProductiveFTEs,
}

// Metric one per-patient-day measure with its peer reference band.
// Peer fields stay nil for records created via import.
type Metric struct {
	Actual  *float64 `json:"actual"`
	PeerMin *float64 `json:"peerMin,omitempty"`
	PeerMid *float64 `json:"peerMid,omitempty"`
	PeerMax *float64 `json:"peerMax,omitempty"`
}

// BenchmarkRecord one facility's metrics for one reporting period
type BenchmarkRecord struct {
	ID             string   `json:"id"`
	FacilityName   string   `json:"facilityName"`
	DisplayName    string   `json:"displayName"`
	HealthSystem   string   `json:"healthSystem"`
	Period         string   `json:"period"`
	DailyCensus    *float64 `json:"dailyCensus"`
	AOE            Metric   `json:"aoePPD"`
	Labor          Metric   `json:"laborPPD"`
	COGS           Metric   `json:"cogsPPD"`
	Revenue        Metric   `json:"revenuePPD"`
	ProductiveFTEs *float64 `json:"productiveFTEs"`
	Imported       bool     `json:"imported"`
}

// PercentileBand p25/p50/p75 reference points for one metric across a cohort
type PercentileBand struct {
	P25 *float64 `json:"p25"`
	P50 *float64 `json:"p50"`
	P75 *float64 `json:"p75"`
}

// PeerBenchmark precomputed percentile summary for one census cohort.
// Read-only reference data; never recomputed from raw records.
type PeerBenchmark struct {
	CensusLabel string         `json:"censusLabel"`
	Count       int            `json:"count"`
	AOE         PercentileBand `json:"aoePPD"`
	Labor       PercentileBand `json:"laborPPD"`
	COGS        PercentileBand `json:"cogsPPD"`
	Revenue     PercentileBand `json:"revenuePPD"`
}

// Summary precomputed portfolio statistics shipped with the curated dataset
type Summary struct {
	FacilityCount  int             `json:"facilityCount"`
	SystemCounts   map[string]int  `json:"systemCounts"`
	PeriodCounts   map[string]int  `json:"periodCounts"`
	PeerBenchmarks []PeerBenchmark `json:"peerBenchmarks"`
}

// MetricVariance deviation of one metric from its peer median
type MetricVariance struct {
	Variance    *float64 `json:"variance"`    // actual - peer_mid
	VariancePct *float64 `json:"variancePct"` // variance / peer_mid * 100
}

// FacilityWithVariance a BenchmarkRecord augmented with peer-median deviations.
// Derived and ephemeral; recomputed on every relevant change.
type FacilityWithVariance struct {
	BenchmarkRecord
	AOEVariance     MetricVariance `json:"aoeVariance"`
	LaborVariance   MetricVariance `json:"laborVariance"`
	COGSVariance    MetricVariance `json:"cogsVariance"`
	RevenueVariance MetricVariance `json:"revenueVariance"`
	// TotalVariance mirrors the AOE variance (not a sum across metrics).
	TotalVariance    *float64 `json:"totalVariance"`
	PerformanceScore *float64 `json:"performanceScore"`
}
