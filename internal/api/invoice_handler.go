package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/warranty"
	"github.com/hrithikqw/Invoice-Tracker-App/pkg/utils"
)

// InvoiceHandler serves invoice CRUD and the filtered dashboard listing
type InvoiceHandler struct {
	invoices port.InvoiceRepository
	logger   *zap.Logger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices port.InvoiceRepository, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, logger: logger}
}

// invoiceRequest carries invoice fields over the wire. Dates are YYYY-MM-DD
// strings; pointers distinguish absent fields for partial updates.
type invoiceRequest struct {
	VendorName           *string  `json:"vendor_name"`
	ProductName          *string  `json:"product_name"`
	InvoiceNumber        *string  `json:"invoice_number"`
	SerialNumber         *string  `json:"serial_number"`
	ProductCategory      *string  `json:"product_category"`
	PurchaseDate         *string  `json:"purchase_date"`
	Amount               *float64 `json:"amount"`
	Currency             *string  `json:"currency"`
	WarrantyPeriodMonths *int     `json:"warranty_period_months"`
	WarrantyStartDate    *string  `json:"warranty_start_date"`
	WarrantyEndDate      *string  `json:"warranty_end_date"`
	Notes                *string  `json:"notes"`
	FileURL              *string  `json:"file_url"`
}

// createInvoiceRequest additionally accepts document-extraction output used
// as field defaults. Explicit fields always win over extracted ones.
type createInvoiceRequest struct {
	invoiceRequest
	ExtractedData *entity.ExtractedData `json:"extracted_data"`
}

// applyExtracted seeds invoice fields from extraction output. It runs before
// the explicit request fields, so anything the user typed takes precedence.
func applyExtracted(inv *entity.Invoice, ed *entity.ExtractedData) error {
	if ed == nil {
		return nil
	}
	if ed.VendorName != "" {
		inv.VendorName = utils.SanitizeString(ed.VendorName)
	}
	if ed.ProductName != "" {
		inv.ProductName = utils.SanitizeString(ed.ProductName)
	}
	if ed.InvoiceNumber != "" {
		inv.InvoiceNumber = utils.SanitizeString(ed.InvoiceNumber)
	}
	if ed.SerialNumber != "" {
		inv.SerialNumber = utils.SanitizeString(ed.SerialNumber)
	}
	if ed.ProductCategory != "" {
		inv.ProductCategory = ed.ProductCategory
	}
	if ed.PurchaseDate != "" {
		d, err := utils.ParseDate(ed.PurchaseDate)
		if err != nil {
			return validationError("%v", err)
		}
		inv.PurchaseDate = d
	}
	if ed.Amount != 0 {
		inv.Amount = ed.Amount
	}
	if ed.Currency != "" {
		inv.Currency = ed.Currency
	}
	if ed.WarrantyPeriodMonths != nil {
		months := *ed.WarrantyPeriodMonths
		inv.WarrantyPeriodMonths = &months
	}
	return nil
}

// apply copies the provided fields onto the invoice, parsing dates
func (r *invoiceRequest) apply(inv *entity.Invoice) error {
	if r.VendorName != nil {
		inv.VendorName = utils.SanitizeString(*r.VendorName)
	}
	if r.ProductName != nil {
		inv.ProductName = utils.SanitizeString(*r.ProductName)
	}
	if r.InvoiceNumber != nil {
		inv.InvoiceNumber = utils.SanitizeString(*r.InvoiceNumber)
	}
	if r.SerialNumber != nil {
		inv.SerialNumber = utils.SanitizeString(*r.SerialNumber)
	}
	if r.ProductCategory != nil {
		inv.ProductCategory = *r.ProductCategory
	}
	if r.PurchaseDate != nil {
		d, err := utils.ParseDate(*r.PurchaseDate)
		if err != nil {
			return validationError("%v", err)
		}
		inv.PurchaseDate = d
	}
	if r.Amount != nil {
		inv.Amount = *r.Amount
	}
	if r.Currency != nil {
		inv.Currency = *r.Currency
	}
	if r.WarrantyPeriodMonths != nil {
		months := *r.WarrantyPeriodMonths
		inv.WarrantyPeriodMonths = &months
	}
	if r.WarrantyStartDate != nil {
		d, err := utils.ParseDate(*r.WarrantyStartDate)
		if err != nil {
			return validationError("%v", err)
		}
		inv.WarrantyStartDate = &d
	}
	if r.WarrantyEndDate != nil {
		d, err := utils.ParseDate(*r.WarrantyEndDate)
		if err != nil {
			return validationError("%v", err)
		}
		inv.WarrantyEndDate = &d
	}
	if r.Notes != nil {
		inv.Notes = utils.SanitizeString(*r.Notes)
	}
	if r.FileURL != nil {
		inv.FileURL = *r.FileURL
	}
	return nil
}

// validate checks the invariants of a fully assembled invoice
func validateInvoice(inv *entity.Invoice) error {
	if inv.VendorName == "" {
		return validationError("vendor_name is required")
	}
	if inv.ProductName == "" {
		return validationError("product_name is required")
	}
	if !entity.IsValidCategory(inv.ProductCategory) {
		return validationError("invalid product_category %q", inv.ProductCategory)
	}
	if inv.PurchaseDate.IsZero() {
		return validationError("purchase_date is required")
	}
	if !entity.IsValidCurrency(inv.Currency) {
		return validationError("invalid currency %q", inv.Currency)
	}
	if err := utils.ValidateAmount(inv.Amount); err != nil {
		return validationError("%v", err)
	}
	if inv.WarrantyPeriodMonths != nil {
		if err := utils.ValidateWarrantyPeriod(*inv.WarrantyPeriodMonths); err != nil {
			return validationError("%v", err)
		}
	}
	return nil
}

// Create stores a new invoice for the authenticated user
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, validationError("invalid request body"))
		return
	}

	inv := &entity.Invoice{}
	if err := applyExtracted(inv, req.ExtractedData); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := req.apply(inv); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := validateInvoice(inv); err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Default the end date from start + period when not supplied explicitly
	warranty.ApplyEndDateDefault(inv)

	if err := h.invoices.Create(c.Request.Context(), auth.Principal(c), inv); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Invoice created",
		zap.String("invoice_id", inv.ID),
		zap.String("owner", inv.Owner))
	c.JSON(http.StatusCreated, annotateOne(inv))
}

// List returns the user's invoices, annotated and filtered
func (h *InvoiceHandler) List(c *gin.Context) {
	opts := port.ListOptions{OrderBy: c.Query("order_by")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(c, h.logger, validationError("invalid limit %q", raw))
			return
		}
		opts.Limit = limit
	}

	records, err := h.invoices.List(c.Request.Context(), auth.Principal(c), opts)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := statusTime()
	annotated := warranty.Filter(warranty.Annotate(records, now), criteriaFromQuery(c), now)
	c.JSON(http.StatusOK, gin.H{"invoices": annotated, "count": len(annotated)})
}

// Get returns a single invoice with its derived warranty status
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"), auth.Principal(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, annotateOne(inv))
}

// Update applies a partial update to an existing invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, validationError("invalid request body"))
		return
	}

	owner := auth.Principal(c)
	inv, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := req.apply(inv); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := validateInvoice(inv); err != nil {
		respondError(c, h.logger, err)
		return
	}
	warranty.ApplyEndDateDefault(inv)

	if err := h.invoices.Update(c.Request.Context(), inv.ID, owner, inv); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, annotateOne(inv))
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoices.Delete(c.Request.Context(), c.Param("id"), auth.Principal(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// criteriaFromQuery reads the shared filter query parameters
func criteriaFromQuery(c *gin.Context) warranty.Criteria {
	return warranty.Criteria{
		Category:  c.Query("category"),
		Status:    warranty.Status(c.Query("status")),
		DateRange: c.Query("date_range"),
		Search:    c.Query("search"),
	}
}

func annotateOne(inv *entity.Invoice) warranty.AnnotatedInvoice {
	return warranty.Annotate([]*entity.Invoice{inv}, statusTime())[0]
}

// statusTime is the reference time for warranty derivation. End dates are
// stored at day granularity, so the clock is truncated the same way: an
// invoice whose warranty ends today reads as expiring with 0 days left, not
// expired, until the day is over.
func statusTime() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
