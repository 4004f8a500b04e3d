package importer

import (
	"github.com/controle-financeiro/backend/internal/importer/helpers"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
)

// ExpenseHash identifies an expense by date, value, description and store.
// Text is compared case and diacritic insensitively.
func ExpenseHash(e models.Expense) string {
	return helpers.ImportHash(e.Date.String(), e.Value.StringFixed(2), types.Fold(e.Description), types.Fold(e.Store))
}

// IncomeHash identifies an income by date, value, description and category.
func IncomeHash(i models.Income) string {
	return helpers.ImportHash(i.Date.String(), i.Value.StringFixed(2), types.Fold(i.Description), types.Fold(i.Category))
}

// MarkExpenseDuplicates sets the hash of every row and flags rows
// whose hash matches one of the existing expenses. Rows with installments
// are hashed by their first installment, which is what an import stores.
func MarkExpenseDuplicates(rows []ExpenseRow, existing []models.Expense) {
	hashes := make(map[string]bool, len(existing))
	for _, e := range existing {
		hashes[ExpenseHash(e)] = true
	}

	for i := range rows {
		rows[i].Hash = ExpenseHash(rows[i].Model().Split(rows[i].Installments)[0])
		rows[i].Duplicate = hashes[rows[i].Hash]
	}
}

// MarkIncomeDuplicates sets the hash of every row and flags rows
// whose hash matches one of the existing incomes.
func MarkIncomeDuplicates(rows []IncomeRow, existing []models.Income) {
	hashes := make(map[string]bool, len(existing))
	for _, i := range existing {
		hashes[IncomeHash(i)] = true
	}

	for i := range rows {
		rows[i].Hash = IncomeHash(rows[i].Model())
		rows[i].Duplicate = hashes[rows[i].Hash]
	}
}
