package warranty

import (
	"time"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
)

// AnnotatedInvoice is a read-time view of an invoice decorated with its
// derived warranty status. The underlying record is not modified.
type AnnotatedInvoice struct {
	*entity.Invoice
	WarrantyStatus Status `json:"warranty_status"`
	DaysRemaining  *int   `json:"days_remaining,omitempty"`
}

// Summary holds dashboard counts partitioned by warranty status.
// Total always equals the sum of the four status counts.
type Summary struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	NoWarranty   int `json:"no_warranty"`
}

// Annotate derives the warranty status of each invoice at the given reference
// time. Calling it twice with the same now produces identical output.
func Annotate(invoices []*entity.Invoice, now time.Time) []AnnotatedInvoice {
	annotated := make([]AnnotatedInvoice, 0, len(invoices))
	for _, inv := range invoices {
		end := EffectiveEndDate(inv)
		a := AnnotatedInvoice{
			Invoice:        inv,
			WarrantyStatus: ComputeStatus(end, now),
		}
		if end != nil {
			days := DaysRemaining(*end, now)
			a.DaysRemaining = &days
		}
		annotated = append(annotated, a)
	}
	return annotated
}

// Summarize counts invoices by warranty status. An empty input yields
// all-zero counts.
func Summarize(annotated []AnnotatedInvoice) Summary {
	s := Summary{Total: len(annotated)}
	for _, a := range annotated {
		switch a.WarrantyStatus {
		case StatusActive:
			s.Active++
		case StatusExpiringSoon:
			s.ExpiringSoon++
		case StatusExpired:
			s.Expired++
		case StatusNoWarranty:
			s.NoWarranty++
		}
	}
	return s
}
