package v1

import (
	"fmt"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type ExpenseEditable struct {
	Store        string          `json:"loja" example:"Amazon"`                                     // Name of the store
	Category     string          `json:"categoria" example:"Eletrônicos"`                           // Name of the category
	Description  string          `json:"descricao" example:"Notebook"`                              // Description
	PaymentType  string          `json:"tipo_pagamento" example:"Crédito"`                          // Payment type label
	Value        decimal.Decimal `json:"valor" example:"3000"`                                      // On creation, the total of all installments. Otherwise the value of this row
	Date         types.Date      `json:"data" example:"2024-01-31"`                                 // Date of the purchase
	Installments int             `json:"parcelas" binding:"gte=0,lte=420" example:"10"`             // Number of installments
	Installment  int             `json:"parcela_atual" binding:"gte=0" example:"1"`                 // Position in the installment group. Only used on updates, created rows are numbered from 1
	GroupID      string          `json:"parcela_id" example:"7c7f2d6e-8b1e-4a5b-9d3f-5d0f0a4f1c2b"` // Installment group. Generated if not set
}

// model returns the database resource for the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Store:        editable.Store,
		Category:     editable.Category,
		Description:  editable.Description,
		PaymentType:  editable.PaymentType,
		Value:        editable.Value,
		Date:         editable.Date,
		Installments: editable.Installments,
		Installment:  editable.Installment,
		GroupID:      editable.GroupID,
	}
}

// apply sets the fields of the expense that are contained in fields.
func (editable ExpenseEditable) apply(e *models.Expense, fields []string) {
	update := editable.model()

	for field, set := range map[string]func(){
		"Store":        func() { e.Store = update.Store },
		"Category":     func() { e.Category = update.Category },
		"Description":  func() { e.Description = update.Description },
		"PaymentType":  func() { e.PaymentType = update.PaymentType },
		"Value":        func() { e.Value = update.Value },
		"Date":         func() { e.Date = update.Date },
		"Installments": func() { e.Installments = update.Installments },
		"Installment":  func() { e.Installment = update.Installment },
		"GroupID":      func() { e.GroupID = update.GroupID },
	} {
		if slices.Contains(fields, field) {
			set()
		}
	}
}

type ExpenseLinks struct {
	Self  string `json:"self" example:"https://example.com/api/tables/saidas/d430d7c3-d14c-4712-9336-ee56965a6673"`             // The expense itself
	Group string `json:"group" example:"https://example.com/api/tables/saidas?parcela_id=7c7f2d6e-8b1e-4a5b-9d3f-5d0f0a4f1c2b"` // All installments of the group
}

// Expense is the API representation of an expense.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self:  fmt.Sprintf("%s/tables/saidas/%s", url, model.ID),
			Group: fmt.Sprintf("%s/tables/saidas?parcela_id=%s", url, model.GroupID),
		},
	}
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                    // Data for the expense
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                      // List of expenses
	Error      *string     `json:"error" example:"the specified metodo_pagamento is invalid"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                // Pagination information
}

type ExpenseCreateResponse struct {
	ID      google_uuid.UUID `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`                   // ID of the first created row
	GroupID string           `json:"parcela_id,omitempty" example:"7c7f2d6e-8b1e-4a5b-9d3f-5d0f0a4f1c2b"` // Installment group, only set when installments were created
	Message string           `json:"message,omitempty" example:"10 parcelas criadas com sucesso"`         // Summary, only set when installments were created
}

type ExpenseQueryFilter struct {
	Month         types.Month         `form:"month" filterField:"false" example:"2024-03"`        // Expenses in this month
	FromDate      types.Date          `form:"fromDate" filterField:"false" example:"2024-03-01"`  // Expenses at and after this date
	UntilDate     types.Date          `form:"untilDate" filterField:"false" example:"2024-03-31"` // Expenses before and at this date
	Category      string              `form:"categoria" example:"Alimentação"`                    // Exact category
	Store         string              `form:"loja" example:"Amazon"`                              // Exact store
	PaymentType   string              `form:"tipo_pagamento" example:"Crédito"`                   // Exact payment type label
	PaymentMethod types.PaymentMethod `form:"metodo_pagamento" example:"CREDIT"`                  // Payment method
	GroupID       string              `form:"parcela_id"`                                         // Installment group
	Search        string              `form:"search" filterField:"false" example:"notebook"`      // Description contains this string
	Offset        uint                `form:"offset" filterField:"false"`                         // The offset of the first expense returned
	Limit         int                 `form:"limit" filterField:"false"`                          // Maximum number of expenses to return
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category:      f.Category,
		Store:         f.Store,
		PaymentType:   f.PaymentType,
		PaymentMethod: f.PaymentMethod,
		GroupID:       f.GroupID,
	}
}

type ExpenseDeleteQuery struct {
	All bool `form:"excluir_todas"` // Delete all installments of the group
}
