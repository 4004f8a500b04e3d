package importer

import (
	"fmt"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lookup resolves a name in a reference table, creating the row when it
// does not exist yet. Placeholders are not resolved.
func lookup(tx *gorm.DB, table models.LookupTable, name string) (*uuid.UUID, error) {
	if name == Placeholder {
		return nil, nil
	}

	return table.FirstOrCreate(tx, name)
}

// ImportExpenses creates the expenses of all rows in a single transaction.
// Rows with an error are skipped. A row with installments is expanded the
// same way a created expense is, its value being the total of the purchase.
//
// It returns the number of created expenses.
func ImportExpenses(db *gorm.DB, rows []ExpenseRow) (int, error) {
	imported := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.Error != "" {
				continue
			}

			if row.Installments > models.MaxInstallments {
				return fmt.Errorf("row %d: %w", row.Row, models.ErrInstallmentsTooLarge)
			}

			e := row.Model()

			var err error
			if e.StoreID, err = lookup(tx, models.TableStores, e.Store); err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			if e.CategoryID, err = lookup(tx, models.TableExpenseCategories, e.Category); err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			if e.PaymentTypeID, err = lookup(tx, models.TablePaymentTypes, e.PaymentType); err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			parts := e.Split(row.Installments)
			if err = tx.Create(&parts).Error; err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			imported += len(parts)
		}

		if imported == 0 {
			return ErrNoRows
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return imported, nil
}

// ImportIncomes creates one income per row in a single transaction.
// Rows with an error are skipped.
func ImportIncomes(db *gorm.DB, rows []IncomeRow) (int, error) {
	imported := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.Error != "" {
				continue
			}

			i := row.Model()

			var err error
			if i.CategoryID, err = lookup(tx, models.TableIncomeCategories, i.Category); err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			if err = tx.Create(&i).Error; err != nil {
				return fmt.Errorf("row %d: %w", row.Row, err)
			}

			imported++
		}

		if imported == 0 {
			return ErrNoRows
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return imported, nil
}
