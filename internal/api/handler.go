package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aedwards3305-source/fans-dashboard/internal/engine"
	"github.com/aedwards3305-source/fans-dashboard/internal/importer"
	"github.com/aedwards3305-source/fans-dashboard/internal/model"
	"github.com/aedwards3305-source/fans-dashboard/internal/store"
)

// Handler dashboard API handler
type Handler struct {
	store    *store.SessionStore
	pipeline *importer.Pipeline
	log      *zap.Logger
}

// NewHandler creates the API handler bound to the session store
func NewHandler(st *store.SessionStore, pipeline *importer.Pipeline, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:    st,
		pipeline: pipeline,
		log:      log,
	}
}

// RegisterRoutes registers all dashboard routes on the group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/overview", h.GetOverview)
	rg.GET("/facilities", h.ListFacilities)
	rg.GET("/comparison", h.GetComparison)
	rg.GET("/systems", h.GetSystems)
	rg.GET("/rankings", h.GetRankings)
	rg.GET("/summary", h.GetSummary)

	imp := rg.Group("/import")
	{
		imp.GET("/state", h.GetImportState)
		imp.POST("/upload", h.UploadImport)
		imp.POST("/confirm", h.ConfirmImport)
		imp.POST("/back", h.BackImport)
		imp.POST("/reset", h.ResetImport)
	}

	rg.GET("/export/:view", h.Export)
}

// Response envelope shared by every endpoint
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// filtered applies the shared filter query params to the session records.
// Views are always recomputed from the store; nothing is memoized between
// requests.
func (h *Handler) filtered(c *gin.Context) []*model.BenchmarkRecord {
	system := c.DefaultQuery("system", engine.FilterAll)
	period := c.DefaultQuery("period", engine.FilterAll)

	censusMin := 0.0
	if v := c.Query("censusMin"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			censusMin = parsed
		}
	}
	censusMax := math.MaxFloat64
	if v := c.Query("censusMax"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			censusMax = parsed
		}
	}

	return engine.Filter(h.store.Records(), system, period, censusMin, censusMax)
}

// GetOverview portfolio averages and peer-comparison rollup for the
// filtered set
func (h *Handler) GetOverview(c *gin.Context) {
	records := h.filtered(c)
	withVariance := engine.ComputeVariances(records)

	success(c, gin.H{
		"averages":  engine.ComputeAverages(records),
		"portfolio": engine.ComputePortfolioMetrics(withVariance),
	})
}

// ListFacilities filtered facility listing
func (h *Handler) ListFacilities(c *gin.Context) {
	records := h.filtered(c)
	success(c, gin.H{
		"total":      len(records),
		"facilities": records,
	})
}

// GetComparison filtered facilities with per-metric peer variance.
// Records without a defined AOE variance are excluded.
func (h *Handler) GetComparison(c *gin.Context) {
	withVariance := engine.ComputeVariances(h.filtered(c))
	success(c, gin.H{
		"total":      len(withVariance),
		"facilities": withVariance,
	})
}

// GetSystems per-health-system rollups, best performing system first
func (h *Handler) GetSystems(c *gin.Context) {
	withVariance := engine.ComputeVariances(h.filtered(c))
	success(c, gin.H{
		"systems": engine.ComputeSystemRollups(withVariance),
	})
}

// GetRankings sorted peer-comparison listing
func (h *Handler) GetRankings(c *gin.Context) {
	field := engine.ParseSortField(c.DefaultQuery("sortBy", string(engine.DefaultSortField)))
	dir := parseDirection(c.DefaultQuery("sortDir", string(engine.DefaultDirection)))

	withVariance := engine.ComputeVariances(h.filtered(c))
	ranked := engine.Rank(withVariance, field, dir)

	success(c, gin.H{
		"sortBy":     string(field),
		"sortDir":    string(dir),
		"facilities": ranked,
	})
}

func parseDirection(s string) engine.Direction {
	if strings.ToLower(strings.TrimSpace(s)) == string(engine.Ascending) {
		return engine.Ascending
	}
	return engine.Descending
}

// GetSummary dataset summary: counts, distinct filter values, peer bands
func (h *Handler) GetSummary(c *gin.Context) {
	success(c, gin.H{
		"summary":       h.store.Summary(),
		"healthSystems": h.store.HealthSystems(),
		"periods":       h.store.Periods(),
		"baseCount":     h.store.BaseCount(),
		"importedCount": h.store.ImportedCount(),
	})
}

// GetImportState current pipeline state plus preview/result payloads
func (h *Handler) GetImportState(c *gin.Context) {
	success(c, gin.H{
		"state":   h.pipeline.State(),
		"preview": h.pipeline.Preview(),
		"result":  h.pipeline.Result(),
	})
}

// UploadImport receives a spreadsheet and builds the import preview.
// Files with an unsupported extension are ignored without an error so a
// stray drag-and-drop never disturbs the pipeline state.
func (h *Handler) UploadImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "No file uploaded")
		return
	}
	defer file.Close()

	if !importer.AllowedFile(header.Filename) {
		h.log.Debug("ignored upload with unsupported extension", zap.String("file", header.Filename))
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.pipeline.Upload(header.Filename, file); err != nil {
		errorResponse(c, 1002, err.Error())
		return
	}

	success(c, gin.H{
		"state":   h.pipeline.State(),
		"preview": h.pipeline.Preview(),
		"result":  h.pipeline.Result(),
	})
}

// ConfirmImport commits the previewed rows to the session store
func (h *Handler) ConfirmImport(c *gin.Context) {
	result, err := h.pipeline.Confirm()
	if err != nil {
		errorResponse(c, 1003, err.Error())
		return
	}
	success(c, gin.H{
		"state":  h.pipeline.State(),
		"result": result,
	})
}

// BackImport discards the preview and returns to the upload state
func (h *Handler) BackImport(c *gin.Context) {
	if err := h.pipeline.Back(); err != nil {
		errorResponse(c, 1003, err.Error())
		return
	}
	success(c, gin.H{"state": h.pipeline.State()})
}

// ResetImport returns the pipeline to idle from any state
func (h *Handler) ResetImport(c *gin.Context) {
	h.pipeline.Reset()
	success(c, gin.H{"state": h.pipeline.State()})
}
