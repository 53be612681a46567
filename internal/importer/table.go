package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Supported upload extensions. Anything else is ignored before it reaches
// the pipeline.
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// AllowedFile reports whether the filename carries a supported spreadsheet
// extension
func AllowedFile(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// readTable parses the upload into a header row plus data rows. Spreadsheet
// workbooks are read from the first sheet only; additional sheets are
// ignored.
func readTable(filename string, r io.Reader) (headers []string, rows [][]string, err error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return readCSV(r)
	}
	return readWorkbook(r)
}

func readWorkbook(r io.Reader) ([]string, [][]string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	all, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, errors.New("workbook has no rows")
	}

	return all[0], all[1:], nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	buf := bufio.NewReader(r)

	// Skip UTF-8 BOM if present.
	if bom, err := buf.Peek(3); err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	reader := csv.NewReader(buf)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, errors.New("csv file has no rows")
	}

	return all[0], all[1:], nil
}

// tabulateRow keys a data row by its header text. Cells beyond the header
// width are dropped; short rows leave the remaining headers unset.
func tabulateRow(headers []string, row []string) map[string]string {
	out := make(map[string]string, len(headers))
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			continue
		}
		if i < len(row) {
			out[h] = row[i]
		}
	}
	return out
}
