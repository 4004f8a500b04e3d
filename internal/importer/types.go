package importer

import (
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Placeholder is used for text columns that are missing or empty.
const Placeholder = "-"

// ExpenseRow is an expense read from a workbook.
type ExpenseRow struct {
	Row          int             `json:"linha,omitempty" example:"2"` // Row number in the sheet
	Store        string          `json:"loja" example:"Amazon"`
	Description  string          `json:"descricao" example:"Fone de ouvido"`
	Category     string          `json:"categoria" example:"Eletrônicos"`
	Date         types.Date      `json:"data" example:"2024-03-04"`
	PaymentType  string          `json:"tipo_pagamento" example:"Crédito"`
	Value        decimal.Decimal `json:"valor" example:"199.90"`
	Installments int             `json:"parcelas,omitempty" example:"1"`
	Hash         string          `json:"hash,omitempty" example:"a1b2c3"`                   // Import hash of the row
	Duplicate    bool            `json:"duplicate" example:"false"`                         // An expense with the same hash exists
	Error        string          `json:"error,omitempty" example:"the value is not valid"` // Problem with the row, if any
}

// Model returns the expense for the row.
func (r ExpenseRow) Model() models.Expense {
	return models.Expense{
		Store:        r.Store,
		Description:  r.Description,
		Category:     r.Category,
		Date:         r.Date,
		PaymentType:  r.PaymentType,
		Value:        r.Value,
		Installments: r.Installments,
	}
}

// IncomeRow is an income read from a workbook.
type IncomeRow struct {
	Row         int             `json:"linha,omitempty" example:"2"` // Row number in the sheet
	Description string          `json:"descricao" example:"Salário março"`
	Category    string          `json:"categoria" example:"Salário"`
	Date        types.Date      `json:"data" example:"2024-03-05"`
	Value       decimal.Decimal `json:"valor" example:"5000"`
	Hash        string          `json:"hash,omitempty" example:"a1b2c3"`                   // Import hash of the row
	Duplicate   bool            `json:"duplicate" example:"false"`                         // An income with the same hash exists
	Error       string          `json:"error,omitempty" example:"the value is not valid"` // Problem with the row, if any
}

// Model returns the income for the row.
func (r IncomeRow) Model() models.Income {
	return models.Income{
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Value:       r.Value,
	}
}

// Preview is the content of one sheet of a workbook.
type Preview[R ExpenseRow | IncomeRow] struct {
	Sheets []string `json:"sheets" example:"Saídas,Entradas"` // All sheets in the workbook
	Sheet  string   `json:"sheet" example:"Saídas"`           // The sheet the rows were read from
	Rows   []R      `json:"rows"`                             // The rows of the sheet
}
