package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/export"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/warranty"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the user's invoices as an xlsx workbook
type ExportHandler struct {
	invoices port.InvoiceRepository
	writer   *export.ExcelWriter
	logger   *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(invoices port.InvoiceRepository, writer *export.ExcelWriter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{invoices: invoices, writer: writer, logger: logger}
}

// Export writes the filtered invoice list as an attachment. The same filter
// query parameters as the list endpoint apply.
func (h *ExportHandler) Export(c *gin.Context) {
	records, err := h.invoices.List(c.Request.Context(), auth.Principal(c), port.ListOptions{})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := statusTime()
	annotated := warranty.Filter(warranty.Annotate(records, now), criteriaFromQuery(c), now)

	filename := fmt.Sprintf("invoices-%s.xlsx", now.Format("2006-01-02"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.writer.Write(c.Writer, annotated); err != nil {
		h.logger.Error("Export failed", zap.Error(err))
	}
}
