package entity

import "time"

// Invoice represents a purchase invoice tracked for warranty coverage.
// WarrantyEndDate, when present, was either entered by the user or defaulted
// from WarrantyStartDate + WarrantyPeriodMonths at write time. Warranty status
// is never stored; it is recomputed against the current time on every read.
type Invoice struct {
	ID                   string     `json:"id"`
	Owner                string     `json:"owner"`
	VendorName           string     `json:"vendor_name"`
	ProductName          string     `json:"product_name"`
	InvoiceNumber        string     `json:"invoice_number"`
	SerialNumber         string     `json:"serial_number"`
	ProductCategory      string     `json:"product_category"`
	PurchaseDate         time.Time  `json:"purchase_date"`
	Amount               float64    `json:"amount"`
	Currency             string     `json:"currency"`
	WarrantyPeriodMonths *int       `json:"warranty_period_months,omitempty"`
	WarrantyStartDate    *time.Time `json:"warranty_start_date,omitempty"`
	WarrantyEndDate      *time.Time `json:"warranty_end_date,omitempty"`
	Notes                string     `json:"notes"`
	FileURL              string     `json:"file_url"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ExtractedData is a pre-filled set of invoice fields produced by an external
// document-analysis process. The service only consumes it as create defaults.
type ExtractedData struct {
	VendorName           string  `json:"vendor_name"`
	ProductName          string  `json:"product_name"`
	InvoiceNumber        string  `json:"invoice_number"`
	SerialNumber         string  `json:"serial_number"`
	ProductCategory      string  `json:"product_category"`
	PurchaseDate         string  `json:"purchase_date"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	WarrantyPeriodMonths *int    `json:"warranty_period_months"`
}
