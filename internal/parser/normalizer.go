package parser

import (
	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Placeholder values for unmapped or empty string fields
const (
	UnknownFacility  = "Unknown"
	ImportedFallback = "Imported"
)

// NormalizeRow converts one raw spreadsheet row into the canonical imported
// shape. Numeric coercion failures become nil, never an error: no row is
// rejected solely for unparsable numerics.
func NormalizeRow(raw map[string]string, mapping model.ColumnMapping) model.ImportedRow {
	getString := func(field model.Field, fallback string) string {
		header, ok := mapping[field]
		if !ok {
			return fallback
		}
		val, ok := cellValue(raw, header)
		if !ok || val == "" {
			return fallback
		}
		return val
	}

	getNumber := func(field model.Field) *float64 {
		header, ok := mapping[field]
		if !ok {
			return nil
		}
		val, ok := cellValue(raw, header)
		if !ok {
			return nil
		}
		return ParseNumber(val)
	}

	return model.ImportedRow{
		FacilityName:   getString(model.FieldFacilityName, UnknownFacility),
		HealthSystem:   getString(model.FieldHealthSystem, ImportedFallback),
		Period:         getString(model.FieldPeriod, ImportedFallback),
		DailyCensus:    getNumber(model.FieldDailyCensus),
		AOEPPD:         getNumber(model.FieldAOEPPD),
		LaborPPD:       getNumber(model.FieldLaborPPD),
		COGSPPD:        getNumber(model.FieldCOGSPPD),
		RevenuePPD:     getNumber(model.FieldRevenuePPD),
		ProductiveFTEs: getNumber(model.FieldProductiveFTEs),
	}
}

// cellValue looks up a cell by its original header, falling back to the
// normalized form. Sheet tabulation keys rows by the raw header text.
func cellValue(raw map[string]string, header string) (string, bool) {
	if v, ok := raw[header]; ok {
		return trimCell(v), true
	}
	want := NormalizeHeader(header)
	for k, v := range raw {
		if NormalizeHeader(k) == want {
			return trimCell(v), true
		}
	}
	return "", false
}
