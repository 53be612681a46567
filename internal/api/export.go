package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aedwards3305-source/fans-dashboard/internal/engine"
	"github.com/aedwards3305-source/fans-dashboard/internal/export"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Export streams the requested view as a download. Views: facilities,
// comparison. Format defaults to csv; format=xlsx switches to a workbook
// (facilities view only).
func (h *Handler) Export(c *gin.Context) {
	view := strings.ToLower(strings.TrimSpace(c.Param("view")))
	format := strings.ToLower(c.DefaultQuery("format", "csv"))

	records := h.filtered(c)

	if format == "xlsx" {
		if view != "facilities" {
			errorResponse(c, 2002, "Workbook export is only available for the facilities view")
			return
		}
		wb, err := export.Workbook(records)
		if err != nil {
			h.log.Error("workbook export failed", zap.Error(err))
			errorResponse(c, 2003, "Export failed")
			return
		}
		defer wb.Close()

		var buf bytes.Buffer
		if err := wb.Write(&buf); err != nil {
			h.log.Error("workbook export failed", zap.Error(err))
			errorResponse(c, 2003, "Export failed")
			return
		}

		filename := strings.TrimSuffix(export.Filename(view, time.Now()), ".csv") + ".xlsx"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
		return
	}

	var body string
	switch view {
	case "facilities":
		body = export.FacilityCSV(records)
	case "comparison":
		body = export.ComparisonCSV(engine.ComputeVariances(records))
	default:
		errorResponse(c, 2001, "Unknown export view: "+view)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(view, time.Now())))
	c.Data(http.StatusOK, csvContentType, []byte(body))
}
