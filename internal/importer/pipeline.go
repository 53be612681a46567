package importer

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
	"github.com/aedwards3305-source/fans-dashboard/internal/parser"
	"github.com/aedwards3305-source/fans-dashboard/internal/store"
)

// State import pipeline state
type State string

const (
	StateUpload  State = "upload"
	StatePreview State = "preview"
	StateResult  State = "result"
)

// PreviewRowCap hard cap on previewed (and therefore committed) rows.
// Protects the UI from unbounded render; rows beyond the cap are not
// imported.
const PreviewRowCap = 100

// ErrBusy returned when an upload arrives while a previous one is still
// being parsed. No cancellation is supported.
var ErrBusy = errors.New("an import is already in progress")

// ErrNotInPreview returned for confirm/back outside the preview state
var ErrNotInPreview = errors.New("no import preview to act on")

// Pipeline the spreadsheet ingestion state machine:
// upload → preview → result, with reset reachable from any state.
// The curated base dataset is never touched; confirmed batches only ever
// append to the session store.
type Pipeline struct {
	mu         sync.Mutex
	processing bool
	state      State
	preview    *model.ImportPreview
	result     *model.ImportResult
	store      *store.SessionStore
	log        *zap.Logger
}

// NewPipeline creates an idle pipeline bound to the session store
func NewPipeline(st *store.SessionStore, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		state: StateUpload,
		store: st,
		log:   log,
	}
}

// State current pipeline state
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Preview current preview, nil outside the preview state
func (p *Pipeline) Preview() *model.ImportPreview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preview
}

// Result terminal result, nil outside the result state
func (p *Pipeline) Result() *model.ImportResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Upload parses the uploaded file and transitions to preview, or straight
// to result on a fatal parse error. A second concurrent upload is rejected
// with ErrBusy until the current one resolves.
func (p *Pipeline) Upload(filename string, r io.Reader) error {
	p.mu.Lock()
	if p.processing {
		p.mu.Unlock()
		return ErrBusy
	}
	p.processing = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.processing = false
		p.mu.Unlock()
	}()

	headers, rows, err := readTable(filename, r)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.log.Warn("import upload failed", zap.String("file", filename), zap.Error(err))
		p.toResultLocked(&model.ImportResult{
			Success: false,
			Message: fmt.Sprintf("Could not read %s: %v", filename, err),
		})
		return nil
	}
	if len(rows) == 0 {
		p.log.Warn("import upload had no data rows", zap.String("file", filename))
		p.toResultLocked(&model.ImportResult{
			Success: false,
			Message: "The file contains no data rows",
		})
		return nil
	}

	mapping, warnings := parser.BuildMapping(headers)

	limit := len(rows)
	truncated := false
	if limit > PreviewRowCap {
		limit = PreviewRowCap
		truncated = true
		warnings = append(warnings, fmt.Sprintf("Preview limited to the first %d rows; remaining rows will not be imported", PreviewRowCap))
	}

	previewRows := make([]model.ImportedRow, 0, limit)
	for _, row := range rows[:limit] {
		previewRows = append(previewRows, parser.NormalizeRow(tabulateRow(headers, row), mapping))
	}

	p.preview = &model.ImportPreview{
		Rows:      previewRows,
		Mapping:   mapping,
		Warnings:  warnings,
		TotalRows: len(rows),
		Truncated: truncated,
	}
	p.result = nil
	p.state = StatePreview

	p.log.Info("import preview ready",
		zap.String("file", filename),
		zap.Int("rows", len(previewRows)),
		zap.Int("totalRows", len(rows)),
		zap.Int("warnings", len(warnings)))
	return nil
}

// Confirm promotes every previewed row into a benchmark record and appends
// the batch to the session store in one atomic step. Peer fields stay nil:
// imported records are never peer-benchmarked.
func (p *Pipeline) Confirm() (*model.ImportResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePreview || p.preview == nil {
		return nil, ErrNotInPreview
	}

	batchID := uuid.New().String()
	batch := make([]*model.BenchmarkRecord, 0, len(p.preview.Rows))
	for _, row := range p.preview.Rows {
		batch = append(batch, promoteRow(row))
	}

	p.store.AppendImported(batch)

	result := &model.ImportResult{
		Success:  true,
		Message:  fmt.Sprintf("Imported %d facility records", len(batch)),
		Imported: len(batch),
		BatchID:  batchID,
		Warnings: p.preview.Warnings,
	}
	p.toResultLocked(result)

	p.log.Info("import committed", zap.String("batchId", batchID), zap.Int("records", len(batch)))
	return result, nil
}

// Back discards the preview and returns to the upload state
func (p *Pipeline) Back() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePreview {
		return ErrNotInPreview
	}
	p.preview = nil
	p.state = StateUpload
	return nil
}

// Reset returns to the idle upload state from anywhere, discarding any
// preview, mapping, and result
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.preview = nil
	p.result = nil
	p.state = StateUpload
}

func (p *Pipeline) toResultLocked(result *model.ImportResult) {
	p.preview = nil
	p.result = result
	p.state = StateResult
}

// promoteRow builds a full benchmark record from a normalized import row.
// Peer bands require a census-cohort classification that is not computed at
// import time, so all peer fields are left nil.
func promoteRow(row model.ImportedRow) *model.BenchmarkRecord {
	return &model.BenchmarkRecord{
		ID:             uuid.New().String(),
		FacilityName:   row.FacilityName,
		DisplayName:    row.FacilityName,
		HealthSystem:   row.HealthSystem,
		Period:         row.Period,
		DailyCensus:    row.DailyCensus,
		AOE:            model.Metric{Actual: row.AOEPPD},
		Labor:          model.Metric{Actual: row.LaborPPD},
		COGS:           model.Metric{Actual: row.COGSPPD},
		Revenue:        model.Metric{Actual: row.RevenuePPD},
		ProductiveFTEs: row.ProductiveFTEs,
		Imported:       true,
	}
}
