package billing

import (
	"strings"
	"time"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// DefaultRecentDays is the window for recent activity.
	DefaultRecentDays = 15

	// TopStores is the number of stores listed by total.
	TopStores = 10

	// GroupOther is used for expenses without a category, payment type or store.
	GroupOther = "Outros"

	// placeholderStore is used by imports for rows without a store.
	placeholderStore = "-"
)

// Activity kinds.
const (
	KindExpense = "saida"
	KindIncome  = "entrada"
)

// Filter restricts the data a dashboard is computed from. Zero values
// do not restrict.
type Filter struct {
	From        types.Month `form:"from" example:"2024-01"`
	Until       types.Month `form:"until" example:"2024-12"`
	Category    string      `form:"categoria" example:"Alimentação"`
	PaymentType string      `form:"tipo_pagamento" example:"Crédito"`
	RecentDays  int         `form:"-"`
}

func (f Filter) month(d types.Date) bool {
	if d.IsZero() {
		return f.From.IsZero() && f.Until.IsZero()
	}

	m := types.NewMonth(d.Year(), d.Month())
	if !f.From.IsZero() && m.Before(f.From) {
		return false
	}

	if !f.Until.IsZero() && m.After(f.Until) {
		return false
	}

	return true
}

func (f Filter) expense(e models.Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}

	if f.PaymentType != "" && e.PaymentType != f.PaymentType {
		return false
	}

	return f.month(e.Date)
}

// MonthTotal contains the totals of one month.
type MonthTotal struct {
	Month      types.Month     `json:"month" example:"2024-03"`
	Income     decimal.Decimal `json:"income" example:"5000"`
	Expense    decimal.Decimal `json:"expense" example:"3200.50"`
	Balance    decimal.Decimal `json:"balance" example:"1799.50"`
	Cumulative decimal.Decimal `json:"cumulative" example:"4500"` // Balance of this and all earlier months
}

// GroupTotal is the sum of the expenses of one group.
type GroupTotal struct {
	Name  string          `json:"name" example:"Alimentação"`
	Total decimal.Decimal `json:"total" example:"812.40"`
	Count int             `json:"count" example:"14"`
}

// Activity is an expense or income in the recent activity list.
type Activity struct {
	Kind         string          `json:"tipo" example:"saida"`
	ID           uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description  string          `json:"descricao" example:"Amazon - Fone de ouvido"`
	Category     string          `json:"categoria" example:"Eletrônicos"`
	Value        decimal.Decimal `json:"valor" example:"199.90"`
	Date         types.Date      `json:"data" example:"2024-03-04"`
	InputDate    time.Time       `json:"data_input" example:"2024-03-04T18:21:00Z"`
	Installments int             `json:"parcelas,omitempty" example:"3"`
	Installment  int             `json:"parcela_atual,omitempty" example:"1"`
}

// View is the aggregated data shown on the dashboard.
type View struct {
	Income       decimal.Decimal `json:"totalEntradas" example:"5000"`
	Expense      decimal.Decimal `json:"totalSaidas" example:"3200.50"`
	Balance      decimal.Decimal `json:"saldo" example:"1799.50"`
	Months       []MonthTotal    `json:"meses"`
	Categories   []GroupTotal    `json:"saidasPorCategoria"`
	Incomes      []GroupTotal    `json:"entradasPorCategoria"`
	PaymentTypes []GroupTotal    `json:"saidasPorTipoPagamento"`
	Stores       []GroupTotal    `json:"topLojas"`
	Recent       []Activity      `json:"recentes"`
}

// Dashboard computes the dashboard view for the expenses and incomes
// matching the filter.
func Dashboard(expenses []models.Expense, incomes []models.Income, f Filter, now time.Time) View {
	v := View{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	months := map[types.Month]*MonthTotal{}
	monthTotal := func(d types.Date) *MonthTotal {
		m := types.NewMonth(d.Year(), d.Month())
		if _, ok := months[m]; !ok {
			months[m] = &MonthTotal{Month: m, Income: decimal.Zero, Expense: decimal.Zero}
		}
		return months[m]
	}

	categories := groups{}
	incomeCategories := groups{}
	paymentTypes := groups{}
	stores := groups{}

	days := f.RecentDays
	if days <= 0 {
		days = DefaultRecentDays
	}
	recentSince := now.AddDate(0, 0, -days)

	for _, e := range expenses {
		if !f.expense(e) {
			continue
		}

		v.Expense = v.Expense.Add(e.Value)
		if !e.Date.IsZero() {
			t := monthTotal(e.Date)
			t.Expense = t.Expense.Add(e.Value)
		}

		categories.add(e.Category, e.Value)
		paymentTypes.add(e.PaymentType, e.Value)

		if store := strings.TrimSpace(e.Store); store != "" && store != placeholderStore {
			stores.add(store, e.Value)
		}

		if !e.InputDate.Before(recentSince) {
			description := e.Description
			if e.Store != "" {
				description = e.Store + " - " + e.Description
			}

			v.Recent = append(v.Recent, Activity{
				Kind:         KindExpense,
				ID:           e.ID,
				Description:  description,
				Category:     e.Category,
				Value:        e.Value,
				Date:         e.Date,
				InputDate:    e.InputDate,
				Installments: e.Installments,
				Installment:  e.Installment,
			})
		}
	}

	for _, i := range incomes {
		if !f.month(i.Date) {
			continue
		}

		v.Income = v.Income.Add(i.Value)
		if !i.Date.IsZero() {
			t := monthTotal(i.Date)
			t.Income = t.Income.Add(i.Value)
		}

		incomeCategories.add(i.Category, i.Value)

		if !i.InputDate.Before(recentSince) {
			description := i.Description
			if description == "" {
				description = i.Category
			}

			v.Recent = append(v.Recent, Activity{
				Kind:        KindIncome,
				ID:          i.ID,
				Description: description,
				Category:    i.Category,
				Value:       i.Value,
				Date:        i.Date,
				InputDate:   i.InputDate,
			})
		}
	}

	v.Balance = v.Income.Sub(v.Expense)

	keys := maps.Keys(months)
	slices.SortFunc(keys, func(a, b types.Month) int {
		return strings.Compare(a.String(), b.String())
	})

	cumulative := decimal.Zero
	v.Months = make([]MonthTotal, 0, len(keys))
	for _, k := range keys {
		t := months[k]
		t.Balance = t.Income.Sub(t.Expense)
		cumulative = cumulative.Add(t.Balance)
		t.Cumulative = cumulative
		v.Months = append(v.Months, *t)
	}

	v.Categories = categories.sorted(0)
	v.Incomes = incomeCategories.sorted(0)
	v.PaymentTypes = paymentTypes.sorted(0)
	v.Stores = stores.sorted(TopStores)

	slices.SortStableFunc(v.Recent, func(a, b Activity) int {
		return b.InputDate.Compare(a.InputDate)
	})
	if v.Recent == nil {
		v.Recent = []Activity{}
	}

	return v
}

type groups map[string]*GroupTotal

func (g groups) add(name string, value decimal.Decimal) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = GroupOther
	}

	t, ok := g[name]
	if !ok {
		t = &GroupTotal{Name: name, Total: decimal.Zero}
		g[name] = t
	}

	t.Total = t.Total.Add(value)
	t.Count++
}

// sorted returns the groups by descending total. With limit > 0, only the
// first limit groups are returned.
func (g groups) sorted(limit int) []GroupTotal {
	totals := make([]GroupTotal, 0, len(g))
	for _, t := range g {
		totals = append(totals, *t)
	}

	slices.SortFunc(totals, func(a, b GroupTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}

	return totals
}
