package importer

import (
	"io"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetExpenses = "Saídas"
	SheetIncomes  = "Entradas"
)

var (
	expenseHeaders = []any{"Loja", "Descrição", "Categoria", "Data da compra", "Tipo pagamento", "Valor"}
	incomeHeaders  = []any{"Nome", "Categoria", "Data da entrada", "Valor"}
)

// WriteWorkbook writes an xlsx workbook with one sheet for expenses and
// one for incomes. The workbook can be read again with Open.
func WriteWorkbook(w io.Writer, expenses []models.Expense, incomes []models.Income) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []string{SheetExpenses, SheetIncomes} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	rows := make([][]any, 0, len(expenses)+1)
	rows = append(rows, expenseHeaders)
	for _, e := range expenses {
		rows = append(rows, []any{e.Store, e.Description, e.Category, e.Date.String(), e.PaymentType, e.Value.InexactFloat64()})
	}

	if err := setRows(f, SheetExpenses, rows); err != nil {
		return err
	}

	rows = make([][]any, 0, len(incomes)+1)
	rows = append(rows, incomeHeaders)
	for _, i := range incomes {
		rows = append(rows, []any{i.Description, i.Category, i.Date.String(), i.Value.InexactFloat64()})
	}

	if err := setRows(f, SheetIncomes, rows); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	return f.Write(w)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
