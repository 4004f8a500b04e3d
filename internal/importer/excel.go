package importer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

// Days between 1899-12-30, day zero of Excel serial dates, and 1970-01-01
const excelEpochOffset = 25569

// Column headers, compared after folding
var (
	expenseColumns = map[string][]string{
		"store":        {"loja"},
		"description":  {"descricao"},
		"category":     {"categoria"},
		"date":         {"data da compra", "data"},
		"payment":      {"tipo pagamento", "tipo de pagamento", "forma de pagamento"},
		"value":        {"valor"},
		"installments": {"parcelas"},
	}

	incomeColumns = map[string][]string{
		"description": {"nome", "descricao"},
		"category":    {"categoria"},
		"date":        {"data da entrada", "data"},
		"value":       {"valor"},
	}

	requiredColumns = []string{"date", "value"}
)

// Workbook is an xlsx file opened for import.
type Workbook struct {
	file *excelize.File
}

// Open reads the workbook from r. The content is kept in memory.
func Open(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkbookInvalid, err)
	}

	return &Workbook{file: f}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheets returns the names of all sheets in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Expenses parses the expenses in the sheet. An empty sheet name
// selects the first sheet.
func (w *Workbook) Expenses(sheet string) (Preview[ExpenseRow], error) {
	sheet, table, err := w.table(sheet, expenseColumns)
	if err != nil {
		return Preview[ExpenseRow]{}, err
	}

	rows := make([]ExpenseRow, 0, len(table.rows))
	for i, cells := range table.rows {
		row := ExpenseRow{
			Row:          table.lines[i],
			Store:        table.text(cells, "store"),
			Description:  table.text(cells, "description"),
			Category:     table.text(cells, "category"),
			PaymentType:  table.text(cells, "payment"),
			Installments: 1,
		}

		var errs []string
		if row.Date, err = parseDate(table.cell(cells, "date")); err != nil {
			errs = append(errs, err.Error())
		}

		if row.Value, err = parseValue(table.cell(cells, "value")); err != nil {
			errs = append(errs, err.Error())
		}

		if n, err := strconv.Atoi(table.cell(cells, "installments")); err == nil && n > 0 {
			row.Installments = n
			if n > models.MaxInstallments {
				errs = append(errs, models.ErrInstallmentsTooLarge.Error())
			}
		}

		row.Error = strings.Join(errs, "; ")
		rows = append(rows, row)
	}

	return Preview[ExpenseRow]{Sheets: w.Sheets(), Sheet: sheet, Rows: rows}, nil
}

// Incomes parses the incomes in the sheet. An empty sheet name
// selects the first sheet.
func (w *Workbook) Incomes(sheet string) (Preview[IncomeRow], error) {
	sheet, table, err := w.table(sheet, incomeColumns)
	if err != nil {
		return Preview[IncomeRow]{}, err
	}

	rows := make([]IncomeRow, 0, len(table.rows))
	for i, cells := range table.rows {
		row := IncomeRow{
			Row:         table.lines[i],
			Description: table.text(cells, "description"),
			Category:    table.text(cells, "category"),
		}

		var errs []string
		if row.Date, err = parseDate(table.cell(cells, "date")); err != nil {
			errs = append(errs, err.Error())
		}

		if row.Value, err = parseValue(table.cell(cells, "value")); err != nil {
			errs = append(errs, err.Error())
		}

		row.Error = strings.Join(errs, "; ")
		rows = append(rows, row)
	}

	return Preview[IncomeRow]{Sheets: w.Sheets(), Sheet: sheet, Rows: rows}, nil
}

// table is the content of a sheet with the position of each known column.
type table struct {
	columns map[string]int
	rows    [][]string
	lines   []int // Sheet row number of each row
}

func (w *Workbook) table(sheet string, known map[string][]string) (string, table, error) {
	sheets := w.Sheets()
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}

	if !slices.Contains(sheets, sheet) {
		return "", table{}, fmt.Errorf("%w '%s'", ErrSheetNotFound, sheet)
	}

	// Raw values keep dates as serial numbers and amounts unformatted
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", table{}, fmt.Errorf("%w: %w", ErrWorkbookInvalid, err)
	}

	if len(rows) == 0 {
		return "", table{}, fmt.Errorf("%w '%s'", ErrSheetEmpty, sheet)
	}

	t := table{columns: map[string]int{}}
	for i, header := range rows[0] {
		header = types.Fold(header)
		for column, names := range known {
			if _, ok := t.columns[column]; !ok && slices.Contains(names, header) {
				t.columns[column] = i
			}
		}
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := t.columns[column]; !ok {
			missing = append(missing, known[column][0])
		}
	}

	if len(missing) > 0 {
		return "", table{}, fmt.Errorf("%w: %s", ErrColumnMissing, strings.Join(missing, ", "))
	}

	for i, row := range rows[1:] {
		if !blank(row) {
			t.rows = append(t.rows, row)
			t.lines = append(t.lines, i+2)
		}
	}

	return sheet, t, nil
}

// cell returns the trimmed content of the column or an empty string if
// the sheet does not have it.
func (t table) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// text returns the content of a text column or the placeholder if it is empty.
func (t table) text(row []string, column string) string {
	if s := t.cell(row, column); s != "" {
		return s
	}
	return Placeholder
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDate parses Excel serial dates, ISO dates and DD/MM/YYYY dates.
// An empty cell is the zero date.
func parseDate(s string) (types.Date, error) {
	if s == "" {
		return types.Date{}, nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		days := int(math.Floor(serial)) - excelEpochOffset
		return types.NewDate(1970, time.January, 1).AddDate(0, 0, days), nil
	}

	if d, err := types.ParseDate(s); err == nil {
		return d, nil
	}

	t, err := time.Parse("2/1/2006", s)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: '%s'", types.ErrDateInvalid, s)
	}

	return types.DateOf(t), nil
}

// parseValue parses amounts as written in Brazilian spreadsheets, e.g.
// "R$ 1.234,56", as well as raw cell values like "1234.56".
func parseValue(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	v = strings.ReplaceAll(v, " ", "")

	if v == "" {
		return decimal.Zero, fmt.Errorf("%w: the value is empty", ErrValueInvalid)
	}

	comma := strings.LastIndex(v, ",")
	dot := strings.LastIndex(v, ".")

	switch {
	// Comma is the decimal separator, dots group thousands
	case comma > dot:
		v = strings.ReplaceAll(v, ".", "")
		v = strings.Replace(v, ",", ".", 1)

	// Dot is the decimal separator, commas group thousands
	case comma >= 0:
		v = strings.ReplaceAll(v, ",", "")

	// Several dots only group thousands
	case strings.Count(v, ".") > 1:
		v = strings.ReplaceAll(v, ".", "")
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrValueInvalid, s)
	}

	return d, nil
}
