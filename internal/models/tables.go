package models

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	ErrTableUnknown  = errors.New("the table does not exist or cannot be browsed")
	ErrColumnUnknown = errors.New("the column does not exist")
)

// Tables maps the names of all tables that can be browsed
// to their models.
var Tables = map[string]any{
	"saidas":                       &Expense{},
	"entradas":                     &Income{},
	"cartao_fatura":                &CreditCard{},
	string(TableExpenseCategories): &ExpenseCategory{},
	string(TableIncomeCategories):  &IncomeCategory{},
	string(TablePaymentTypes):      &PaymentType{},
	string(TableStores):            &Store{},
}

// TableNames returns the names of all tables that can be browsed, sorted.
func TableNames() []string {
	names := maps.Keys(Tables)
	slices.Sort(names)
	return names
}

// Columns returns the column names of the table.
func Columns(db *gorm.DB, table string) ([]string, error) {
	model, ok := Tables[table]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrTableUnknown, table)
	}

	columnTypes, err := db.Migrator().ColumnTypes(model)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(columnTypes))
	for _, c := range columnTypes {
		columns = append(columns, c.Name())
	}

	return columns, nil
}

// CheckColumn verifies that the column exists in the table.
func CheckColumn(db *gorm.DB, table, column string) error {
	columns, err := Columns(db, table)
	if err != nil {
		return err
	}

	if !slices.Contains(columns, column) {
		return fmt.Errorf("%w: '%s' in table '%s'", ErrColumnUnknown, column, table)
	}

	return nil
}
