package models

import (
	"gorm.io/gorm"
)

// DefaultLookups are the rows a freshly cleared database starts with.
var DefaultLookups = map[LookupTable][]string{
	TableIncomeCategories:  {"Salário", "Bônus", "Pagamento externo"},
	TableExpenseCategories: {"Vestuário", "Eletrônicos", "Beleza", "Alimentação", "Transporte", CategoryReimbursement},
	TableStores:            {"Amazon", "Zara", "Renner", "C&A"},
	TablePaymentTypes:      {"PIX", "Débito", "Crédito", "Recarga", "Saque"},
}

// Seed creates the default rows of all reference tables. Names that
// already exist are skipped.
func Seed(db *gorm.DB) error {
	for _, table := range LookupTables {
		for _, name := range DefaultLookups[table] {
			if _, err := table.FirstOrCreate(db, name); err != nil {
				return err
			}
		}
	}

	return nil
}
