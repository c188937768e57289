package warranty

import (
	"strings"
	"time"
)

// Date range filter values, measured against purchase_date relative to now.
const (
	DateRangeAll      = "all"
	DateRangeLast30   = "last_30"
	DateRangeLast90   = "last_90"
	DateRangeLastYear = "last_year"
)

// Criteria describes dashboard filter dimensions. Dimensions combine with
// logical AND; a zero-value or "all" dimension imposes no constraint.
type Criteria struct {
	Category  string
	Status    Status
	DateRange string
	Search    string
}

// Filter returns the annotated invoices matching every criteria dimension.
func Filter(annotated []AnnotatedInvoice, c Criteria, now time.Time) []AnnotatedInvoice {
	matched := make([]AnnotatedInvoice, 0, len(annotated))
	for _, a := range annotated {
		if c.Matches(a, now) {
			matched = append(matched, a)
		}
	}
	return matched
}

// Matches reports whether a single annotated invoice satisfies the criteria.
func (c Criteria) Matches(a AnnotatedInvoice, now time.Time) bool {
	if c.Category != "" && c.Category != "all" && a.ProductCategory != c.Category {
		return false
	}
	if c.Status != "" && c.Status != "all" && a.WarrantyStatus != c.Status {
		return false
	}
	if !c.matchesDateRange(a, now) {
		return false
	}
	return c.matchesSearch(a)
}

func (c Criteria) matchesDateRange(a AnnotatedInvoice, now time.Time) bool {
	var days int
	switch c.DateRange {
	case "", DateRangeAll:
		return true
	case DateRangeLast30:
		days = 30
	case DateRangeLast90:
		days = 90
	case DateRangeLastYear:
		days = 365
	default:
		return true
	}
	cutoff := now.AddDate(0, 0, -days)
	return !a.PurchaseDate.Before(cutoff)
}

// matchesSearch matches case-insensitively against product and vendor name
// substrings.
func (c Criteria) matchesSearch(a AnnotatedInvoice) bool {
	query := strings.ToLower(strings.TrimSpace(c.Search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.ProductName), query) ||
		strings.Contains(strings.ToLower(a.VendorName), query)
}
