package dataset

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

//go:embed facilities.json summary.json
var dataFiles embed.FS

// facilityRecord curated dataset wire shape. Every field except the facility
// name tolerates null.
type facilityRecord struct {
	FacilityName   *string       `json:"facility_name"`
	DisplayName    string        `json:"display_name"`
	HealthSystem   string        `json:"health_system"`
	Period         string        `json:"period"`
	DailyCensus    *float64      `json:"daily_census"`
	AOEPPD         metricActual  `json:"aoe_ppd"`
	AOEPeerMin     *float64      `json:"aoe_peer_min"`
	AOEPeerMid     *float64      `json:"aoe_peer_mid"`
	AOEPeerMax     *float64      `json:"aoe_peer_max"`
	LaborPPD       metricActual  `json:"labor_ppd"`
	LaborPeerMin   *float64      `json:"labor_peer_min"`
	LaborPeerMid   *float64      `json:"labor_peer_mid"`
	LaborPeerMax   *float64      `json:"labor_peer_max"`
	COGSPPD        metricActual  `json:"cogs_ppd"`
	COGSPeerMin    *float64      `json:"cogs_peer_min"`
	COGSPeerMid    *float64      `json:"cogs_peer_mid"`
	COGSPeerMax    *float64      `json:"cogs_peer_max"`
	RevenuePPD     metricActual  `json:"revenue_ppd"`
	RevenuePeerMin *float64      `json:"revenue_peer_min"`
	RevenuePeerMid *float64      `json:"revenue_peer_mid"`
	RevenuePeerMax *float64      `json:"revenue_peer_max"`
	ProductiveFTEs *float64      `json:"productive_ftes"`
}

type metricActual struct {
	Actual *float64 `json:"actual"`
}

type summaryDoc struct {
	FacilityCount  int                `json:"facility_count"`
	SystemCounts   map[string]int     `json:"system_counts"`
	PeriodCounts   map[string]int     `json:"period_counts"`
	PeerBenchmarks []peerBenchmarkDoc `json:"peer_benchmarks"`
}

type peerBenchmarkDoc struct {
	CensusLabel string               `json:"census_label"`
	Count       int                  `json:"count"`
	AOEPPD      model.PercentileBand `json:"aoe_ppd"`
	LaborPPD    model.PercentileBand `json:"labor_ppd"`
	COGSPPD     model.PercentileBand `json:"cogs_ppd"`
	RevenuePPD  model.PercentileBand `json:"revenue_ppd"`
}

// Load reads the embedded curated reference datasets
func Load() ([]*model.BenchmarkRecord, *model.Summary, error) {
	facilities, err := dataFiles.ReadFile("facilities.json")
	if err != nil {
		return nil, nil, fmt.Errorf("read facilities dataset: %w", err)
	}
	summary, err := dataFiles.ReadFile("summary.json")
	if err != nil {
		return nil, nil, fmt.Errorf("read summary dataset: %w", err)
	}
	return Parse(facilities, summary)
}

// Parse decodes the reference datasets. Fails loudly when a facility record
// is missing the facility_name key; any other field may be null.
func Parse(facilitiesJSON, summaryJSON []byte) ([]*model.BenchmarkRecord, *model.Summary, error) {
	var raw []facilityRecord
	if err := json.Unmarshal(facilitiesJSON, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode facilities dataset: %w", err)
	}

	records := make([]*model.BenchmarkRecord, 0, len(raw))
	for i, fr := range raw {
		if fr.FacilityName == nil {
			return nil, nil, fmt.Errorf("facilities dataset record %d: missing facility_name", i)
		}

		displayName := fr.DisplayName
		if displayName == "" {
			displayName = *fr.FacilityName
		}

		records = append(records, &model.BenchmarkRecord{
			ID:           uuid.New().String(),
			FacilityName: *fr.FacilityName,
			DisplayName:  displayName,
			HealthSystem: fr.HealthSystem,
			Period:       fr.Period,
			DailyCensus:  fr.DailyCensus,
			AOE: model.Metric{
				Actual:  fr.AOEPPD.Actual,
				PeerMin: fr.AOEPeerMin,
				PeerMid: fr.AOEPeerMid,
				PeerMax: fr.AOEPeerMax,
			},
			Labor: model.Metric{
				Actual:  fr.LaborPPD.Actual,
				PeerMin: fr.LaborPeerMin,
				PeerMid: fr.LaborPeerMid,
				PeerMax: fr.LaborPeerMax,
			},
			COGS: model.Metric{
				Actual:  fr.COGSPPD.Actual,
				PeerMin: fr.COGSPeerMin,
				PeerMid: fr.COGSPeerMid,
				PeerMax: fr.COGSPeerMax,
			},
			Revenue: model.Metric{
				Actual:  fr.RevenuePPD.Actual,
				PeerMin: fr.RevenuePeerMin,
				PeerMid: fr.RevenuePeerMid,
				PeerMax: fr.RevenuePeerMax,
			},
			ProductiveFTEs: fr.ProductiveFTEs,
		})
	}

	var sd summaryDoc
	if err := json.Unmarshal(summaryJSON, &sd); err != nil {
		return nil, nil, fmt.Errorf("decode summary dataset: %w", err)
	}

	benchmarks := make([]model.PeerBenchmark, 0, len(sd.PeerBenchmarks))
	for _, pb := range sd.PeerBenchmarks {
		benchmarks = append(benchmarks, model.PeerBenchmark{
			CensusLabel: pb.CensusLabel,
			Count:       pb.Count,
			AOE:         pb.AOEPPD,
			Labor:       pb.LaborPPD,
			COGS:        pb.COGSPPD,
			Revenue:     pb.RevenuePPD,
		})
	}

	return records, &model.Summary{
		FacilityCount:  sd.FacilityCount,
		SystemCounts:   sd.SystemCounts,
		PeriodCounts:   sd.PeriodCounts,
		PeerBenchmarks: benchmarks,
	}, nil
}
