package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// Workbook builds an xlsx workbook of the facility listing. The sheet
// mirrors the CSV column set; missing values are left as empty cells.
func Workbook(records []*model.BenchmarkRecord) (*excelize.File, error) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())

	header := make([]interface{}, len(facilityHeader))
	for i, h := range facilityHeader {
		header[i] = h
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, rec := range records {
		row := []interface{}{
			rec.FacilityName,
			rec.HealthSystem,
			rec.Period,
			cellValue(rec.DailyCensus),
			cellValue(rec.AOE.Actual),
			cellValue(rec.Labor.Actual),
			cellValue(rec.COGS.Actual),
			cellValue(rec.Revenue.Actual),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return wb, nil
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
