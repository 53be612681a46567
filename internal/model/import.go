package model

// ColumnMapping canonical field → external header matched for the current
// import session. Discarded on reset.
type ColumnMapping map[Field]string

// ImportedRow canonical intermediate shape produced by the row normalizer
// before promotion to a BenchmarkRecord. Carries no peer fields.
type ImportedRow struct {
	FacilityName   string   `json:"facilityName"`
	HealthSystem   string   `json:"healthSystem"`
	Period         string   `json:"period"`
	DailyCensus    *float64 `json:"dailyCensus"`
	AOEPPD         *float64 `json:"aoePPD"`
	LaborPPD       *float64 `json:"laborPPD"`
	COGSPPD        *float64 `json:"cogsPPD"`
	RevenuePPD     *float64 `json:"revenuePPD"`
	ProductiveFTEs *float64 `json:"productiveFTEs"`
}

// ImportPreview bounded preview produced by the upload step
type ImportPreview struct {
	Rows      []ImportedRow `json:"rows"`
	Mapping   ColumnMapping `json:"mapping"`
	Warnings  []string      `json:"warnings"`
	TotalRows int           `json:"totalRows"`
	Truncated bool          `json:"truncated"`
}

// ImportResult terminal outcome of one import session
type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	BatchID  string   `json:"batchId,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
