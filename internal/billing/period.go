// Package billing computes credit card statements and dashboard views
// from slices of expenses and incomes. All functions are pure.
package billing

import (
	"github.com/controle-financeiro/backend/internal/types"
)

// DefaultDueDay is used when no valid due day is configured.
var DefaultDueDay = 10

// ValidDueDay reports if d can be used as a due day.
func ValidDueDay(d int) bool {
	return d >= 1 && d <= 31
}

// DueDayOr returns d if it is a valid due day, otherwise DefaultDueDay.
func DueDayOr(d int) int {
	if ValidDueDay(d) {
		return d
	}
	return DefaultDueDay
}

// Period is the interval of dates billed on the statement of a month.
type Period struct {
	Month  types.Month `json:"month" example:"2024-03"`
	DueDay int         `json:"dueDay" example:"10"`
	From   types.Date  `json:"from" example:"2024-02-11"`
	Until  types.Date  `json:"until" example:"2024-03-10"`
}

// NewPeriod returns the billing period of the statement due in month.
//
// The period starts the day after the due day of the previous month and
// ends on the due day of month, both inclusive. For months shorter than
// the due day, the last day of the month is used.
func NewPeriod(month types.Month, dueDay int) Period {
	dueDay = DueDayOr(dueDay)
	prev := month.AddDate(0, -1)

	return Period{
		Month:  month,
		DueDay: dueDay,
		From:   types.NewDate(prev.Year(), prev.Month(), min(dueDay, prev.Days())+1),
		Until:  types.NewDate(month.Year(), month.Month(), min(dueDay, month.Days())),
	}
}

// Contains reports if d lies within the period.
func (p Period) Contains(d types.Date) bool {
	if d.IsZero() {
		return false
	}

	return !d.Before(p.From) && !d.After(p.Until)
}
