package warranty

import (
	"math"
	"time"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
)

// ExpiringSoonWindowDays is the number of days before expiry during which a
// warranty counts as expiring soon. The window is fixed, not configurable.
const ExpiringSoonWindowDays = 30

// ComputeEndDate returns start + months using calendar-month arithmetic.
// It returns nil when either input is absent or months is not a positive
// integer. The day of month is preserved where valid; overflow into a shorter
// month clamps to that month's last day (Jan 31 + 1 month = Feb 28/29).
func ComputeEndDate(start *time.Time, months *int) *time.Time {
	if start == nil || months == nil || *months <= 0 {
		return nil
	}
	end := addMonthsClamped(*start, *months)
	return &end
}

// DaysRemaining returns floor((end - now) in whole days). Negative once the
// end date has passed.
func DaysRemaining(end, now time.Time) int {
	return int(math.Floor(end.Sub(now).Hours() / 24))
}

// ComputeStatus classifies warranty coverage at the given reference time.
// The 0 and 30 day boundaries are inclusive on the expiring_soon side.
func ComputeStatus(end *time.Time, now time.Time) Status {
	if end == nil {
		return StatusNoWarranty
	}
	days := DaysRemaining(*end, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringSoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}

// EffectiveEndDate resolves the end date used for status derivation. An
// explicit stored end date always wins; otherwise the end date is computed
// from the warranty start date and period, with the start date falling back
// to the purchase date when absent.
func EffectiveEndDate(inv *entity.Invoice) *time.Time {
	if inv.WarrantyEndDate != nil {
		return inv.WarrantyEndDate
	}
	start := inv.WarrantyStartDate
	if start == nil {
		start = &inv.PurchaseDate
	}
	return ComputeEndDate(start, inv.WarrantyPeriodMonths)
}

// ApplyEndDateDefault fills in a computed warranty end date when the field is
// empty and a start date plus period are available. An end date already set,
// whether user-entered or previously defaulted, is never overwritten.
func ApplyEndDateDefault(inv *entity.Invoice) {
	if inv.WarrantyEndDate != nil {
		return
	}
	start := inv.WarrantyStartDate
	if start == nil {
		start = &inv.PurchaseDate
	}
	inv.WarrantyEndDate = ComputeEndDate(start, inv.WarrantyPeriodMonths)
}

// addMonthsClamped adds months keeping the day of month, clamping to the last
// day of the target month. time.Time.AddDate normalizes overflow forward
// (Jan 31 + 1 month = Mar 3), which is not the calendar semantics wanted here.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
