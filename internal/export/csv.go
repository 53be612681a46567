package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Filename names a download per view: fans_<view>_<ISO-date>.csv
func Filename(view string, now time.Time) string {
	return fmt.Sprintf("fans_%s_%s.csv", view, now.Format("2006-01-02"))
}

// facilityHeader fixed column set for the facility listing export
var facilityHeader = []string{
	"Facility", "Health System", "Period", "Census",
	"AOE PPD", "Labor PPD", "COGS PPD", "Revenue PPD",
}

// comparisonHeader extended column set for the peer-comparison export
var comparisonHeader = []string{
	"Facility", "Health System", "Period", "Census",
	"AOE PPD", "Peer Median", "Variance %",
}

// FacilityCSV renders derived facility rows as CSV text. String fields are
// double-quoted; census is formatted to 0 decimals, currency to 2; missing
// values render as empty string.
func FacilityCSV(records []*model.BenchmarkRecord) string {
	var sb strings.Builder
	writeRow(&sb, quoteAll(facilityHeader))

	for _, rec := range records {
		writeRow(&sb, []string{
			quote(rec.FacilityName),
			quote(rec.HealthSystem),
			quote(rec.Period),
			number(rec.DailyCensus, 0),
			number(rec.AOE.Actual, 2),
			number(rec.Labor.Actual, 2),
			number(rec.COGS.Actual, 2),
			number(rec.Revenue.Actual, 2),
		})
	}
	return sb.String()
}

// ComparisonCSV renders the peer-comparison view with peer median and AOE
// variance percentage columns
func ComparisonCSV(records []model.FacilityWithVariance) string {
	var sb strings.Builder
	writeRow(&sb, quoteAll(comparisonHeader))

	for i := range records {
		rec := &records[i]
		writeRow(&sb, []string{
			quote(rec.FacilityName),
			quote(rec.HealthSystem),
			quote(rec.Period),
			number(rec.DailyCensus, 0),
			number(rec.AOE.Actual, 2),
			number(rec.AOE.PeerMid, 2),
			number(rec.AOEVariance.VariancePct, 2),
		})
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.Join(cells, ","))
	sb.WriteString("\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = quote(c)
	}
	return out
}

func number(v *float64, decimals int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}
