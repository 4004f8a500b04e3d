package billing

import (
	"strings"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ScheduleLength is the number of statements listed by default.
const ScheduleLength = 12

// Statement is the credit card statement for one billing period.
type Statement struct {
	Period
	Current        bool             `json:"current" example:"true"`      // The period contains today
	Purchases      decimal.Decimal  `json:"purchases" example:"100"`     // Sum of all expenses that are not reimbursements
	Reimbursements decimal.Decimal  `json:"reimbursements" example:"30"` // Sum of all reimbursements
	Total          decimal.Decimal  `json:"total" example:"70"`          // Purchases minus reimbursements
	Count          int              `json:"count" example:"2"`           // Number of expenses in the period
	Items          []models.Expense `json:"items,omitempty"`             // Expenses in the period
}

// IsCredit reports if the expense was paid by credit card.
//
// Rows without a payment method are classified by their payment type label.
func IsCredit(e models.Expense) bool {
	if e.PaymentMethod != "" {
		return e.PaymentMethod == types.PaymentCredit
	}

	return types.ClassifyPayment(e.PaymentType) == types.PaymentCredit
}

// Summarize computes the statement due in month for the given due day.
func Summarize(expenses []models.Expense, dueDay int, month types.Month) Statement {
	s := Statement{
		Period:         NewPeriod(month, dueDay),
		Purchases:      decimal.Zero,
		Reimbursements: decimal.Zero,
		Items:          []models.Expense{},
	}

	for _, e := range expenses {
		if !IsCredit(e) || !s.Contains(e.Date) {
			continue
		}

		if e.IsReimbursement() {
			s.Reimbursements = s.Reimbursements.Add(e.Value)
		} else {
			s.Purchases = s.Purchases.Add(e.Value)
		}

		s.Items = append(s.Items, e)
	}

	slices.SortStableFunc(s.Items, func(a, b models.Expense) int {
		if a.Date.Before(b.Date) {
			return -1
		}
		if a.Date.After(b.Date) {
			return 1
		}
		return strings.Compare(a.Description, b.Description)
	})

	s.Count = len(s.Items)
	s.Total = s.Purchases.Sub(s.Reimbursements)

	return s
}

// Schedule returns n consecutive statements.
//
// The first statement is the one due in the month of today if today is on
// or after the due day, otherwise the one due in the previous month. The
// statement whose period contains today is marked as current.
func Schedule(expenses []models.Expense, dueDay int, today types.Date, n int) []Statement {
	dueDay = DueDayOr(dueDay)

	start := types.NewMonth(today.Year(), today.Month())
	if today.Day() < dueDay {
		start = start.AddDate(0, -1)
	}

	statements := make([]Statement, 0, n)
	for i := 0; i < n; i++ {
		s := Summarize(expenses, dueDay, start.AddDate(0, i))
		s.Current = s.Contains(today)
		statements = append(statements, s)
	}

	return statements
}

// CurrentStatement returns the statement of the schedule that contains
// today. If no statement contains today, the first one is returned.
func CurrentStatement(statements []Statement) (Statement, bool) {
	if len(statements) == 0 {
		return Statement{}, false
	}

	for _, s := range statements {
		if s.Current {
			return s, true
		}
	}

	return statements[0], true
}
