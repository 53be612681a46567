package parser

import (
	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// fieldAliases accepted header variants per canonical field, in priority
// order (first alias wins). Matching is exact after trim + lowercase; no
// fuzzy or partial matching.
var fieldAliases = map[model.Field][]string{
	model.FieldFacilityName: {
		"facility name", "facility", "hospital", "name", "facility_name", "site",
	},
	model.FieldHealthSystem: {
		"health system", "system", "health_system", "organization", "parent system",
	},
	model.FieldPeriod: {
		"period", "reporting period", "month", "fiscal period",
	},
	model.FieldDailyCensus: {
		"daily census", "census", "average daily census", "adc", "daily_census",
	},
	model.FieldAOEPPD: {
		"aoe ppd", "aoe", "aoe per patient day", "all operating expense ppd", "aoe_ppd",
	},
	model.FieldLaborPPD: {
		"labor ppd", "labor", "labor per patient day", "labor cost ppd", "labor_ppd",
	},
	model.FieldCOGSPPD: {
		"cogs ppd", "cogs", "cogs per patient day", "supply cost ppd", "cogs_ppd",
	},
	model.FieldRevenuePPD: {
		"revenue ppd", "revenue", "net revenue ppd", "revenue per patient day", "revenue_ppd",
	},
	model.FieldProductiveFTEs: {
		"productive ftes", "ftes", "productive fte", "total ftes", "productive_ftes",
	},
}

// fieldLabels human-readable field names used in warnings
var fieldLabels = map[model.Field]string{
	model.FieldFacilityName:   "Facility Name",
	model.FieldHealthSystem:   "Health System",
	model.FieldPeriod:         "Period",
	model.FieldDailyCensus:    "Daily Census",
	model.FieldAOEPPD:         "AOE PPD",
	model.FieldLaborPPD:       "Labor PPD",
	model.FieldCOGSPPD:        "COGS PPD",
	model.FieldRevenuePPD:     "Revenue PPD",
	model.FieldProductiveFTEs: "Productive FTEs",
}

// mappedFields fields resolved during mapping, in canonical order
var mappedFields = []model.Field{
	model.FieldFacilityName,
	model.FieldHealthSystem,
	model.FieldPeriod,
	model.FieldDailyCensus,
	model.FieldAOEPPD,
	model.FieldLaborPPD,
	model.FieldCOGSPPD,
	model.FieldRevenuePPD,
	model.FieldProductiveFTEs,
}

// MatchColumn finds the external header matching a canonical field.
// Returns the original (untrimmed) header so it can be used as a row key.
func MatchColumn(headers []string, field model.Field) (string, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	for _, alias := range fieldAliases[field] {
		want := NormalizeHeader(alias)
		for i, h := range normalized {
			if h == want {
				return headers[i], true
			}
		}
	}
	return "", false
}

// BuildMapping resolves every canonical field against the header row.
// All fields are optional except facility_name, whose absence produces a
// required-field warning; the mapping is still usable (rows fall back to
// the "Unknown" placeholder).
func BuildMapping(headers []string) (model.ColumnMapping, []string) {
	mapping := make(model.ColumnMapping)
	warnings := []string{}

	for _, field := range mappedFields {
		header, ok := MatchColumn(headers, field)
		if !ok {
			if field == model.FieldFacilityName {
				warnings = append(warnings, "Required column \"Facility Name\" not found; rows will be imported as \"Unknown\"")
			}
			continue
		}
		mapping[field] = header
	}

	return mapping, warnings
}
