package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/warranty"
)

// DashboardHandler serves aggregate warranty statistics
type DashboardHandler struct {
	invoices port.InvoiceRepository
	logger   *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(invoices port.InvoiceRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{invoices: invoices, logger: logger}
}

// Stats returns status counts over the user's invoices, honoring the same
// filter query parameters as the list endpoint.
func (h *DashboardHandler) Stats(c *gin.Context) {
	records, err := h.invoices.List(c.Request.Context(), auth.Principal(c), port.ListOptions{})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := statusTime()
	annotated := warranty.Filter(warranty.Annotate(records, now), criteriaFromQuery(c), now)
	c.JSON(http.StatusOK, warranty.Summarize(annotated))
}
