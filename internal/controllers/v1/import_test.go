package v1_test

import (
	"bytes"
	"net/http"
	"time"

	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/importer"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/test"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// testWorkbook returns an xlsx file with an expense and an income sheet.
func (suite *TestSuiteStandard) testWorkbook() []byte {
	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]any{
		"Gastos": {
			{"Loja", "Descrição", "Categoria", "Data da compra", "Tipo pagamento", "Valor"},
			{"Amazon", "Fone de ouvido", "Eletrônicos", "2024-03-04", "Crédito", 199.9},
			{"", "Almoço", "Alimentação", "05/03/2024", "PIX", "R$ 35,50"},
		},
		"Receitas": {
			{"Nome", "Categoria", "Data da entrada", "Valor"},
			{"Salário março", "Salário", "2024-03-05", 5000},
		},
	}

	for _, name := range []string{"Gastos", "Receitas"} {
		_, err := f.NewSheet(name)
		suite.Require().Nil(err)

		for i, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			suite.Require().Nil(err)
			suite.Require().Nil(f.SetSheetRow(name, cell, &row))
		}
	}
	suite.Require().Nil(f.DeleteSheet("Sheet1"))

	buf := new(bytes.Buffer)
	suite.Require().Nil(f.Write(buf))
	return buf.Bytes()
}

func (suite *TestSuiteStandard) previewExpenses(content []byte, fields map[string]string) v1.ExpensePreviewResponse {
	body, headers := test.MultipartFile(suite.T(), "planilha.xlsx", content, fields)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/preview/saidas", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpensePreviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestImportOptions() {
	for _, path := range []string{"/preview/saidas", "/preview/entradas", "/saidas", "/entradas"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/import"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestImportExpenses() {
	preview := suite.previewExpenses(suite.testWorkbook(), nil).Data
	suite.Require().NotNil(preview)

	suite.Assert().Equal([]string{"Gastos", "Receitas"}, preview.Sheets)
	suite.Assert().Equal("Gastos", preview.Sheet)
	suite.Require().Len(preview.Rows, 2)

	suite.Assert().Equal(importer.Placeholder, preview.Rows[1].Store)
	suite.Assert().Equal("2024-03-05", preview.Rows[1].Date.String())
	suite.Assert().True(decimal.RequireFromString("35.5").Equal(preview.Rows[1].Value))

	for _, row := range preview.Rows {
		suite.Assert().False(row.Duplicate)
		suite.Assert().Empty(row.Error)
		suite.Assert().NotEmpty(row.Hash)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/saidas", preview.Rows)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var imported v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &imported)
	suite.Assert().Equal(2, imported.Imported)

	list := suite.listExpenses("?loja=Amazon")
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(types.PaymentCredit, list.Data[0].PaymentMethod)
	suite.Assert().NotNil(list.Data[0].StoreID, "Missing stores must be created")

	// A second preview marks everything as duplicate
	preview = suite.previewExpenses(suite.testWorkbook(), nil).Data
	for _, row := range preview.Rows {
		suite.Assert().True(row.Duplicate, "Row %d must be marked as duplicate", row.Row)
	}
}

func (suite *TestSuiteStandard) TestImportIncomes() {
	body, headers := test.MultipartFile(suite.T(), "planilha.xlsx", suite.testWorkbook(), map[string]string{"sheet": "Receitas"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/preview/entradas", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var preview v1.IncomePreviewResponse
	test.DecodeResponse(suite.T(), &r, &preview)
	suite.Assert().Equal("Receitas", preview.Data.Sheet)
	suite.Require().Len(preview.Data.Rows, 1)
	suite.Assert().Equal("Salário março", preview.Data.Rows[0].Description)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/import/entradas", preview.Data.Rows)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var incomes []models.Income
	suite.Require().Nil(models.DB.Find(&incomes).Error)
	suite.Require().Len(incomes, 1)
	suite.Assert().Equal("2024-03-05", incomes[0].Date.String())
	suite.Assert().NotNil(incomes[0].CategoryID)
}

func (suite *TestSuiteStandard) TestImportPreviewErrors() {
	tests := []struct {
		name     string
		fileName string
		content  []byte
		fields   map[string]string
		err      string
	}{
		{"Wrong suffix", "planilha.csv", suite.testWorkbook(), nil, "this endpoint only supports .xlsx files"},
		{"Not a workbook", "planilha.xlsx", []byte("Loja,Valor"), nil, ""},
		{"Unknown sheet", "planilha.xlsx", suite.testWorkbook(), map[string]string{"sheet": "Despesas"}, ""},
		{"Missing columns", "planilha.xlsx", suite.testWorkbook(), map[string]string{"sheet": "Receitas"}, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body, headers := test.MultipartFile(suite.T(), tt.fileName, tt.content, tt.fields)

			r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/preview/saidas", body, headers)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			if tt.err != "" {
				suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/preview/saidas", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("you must send a file to this endpoint", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestImportNoRows() {
	rows := []importer.ExpenseRow{{Row: 2, Value: decimal.NewFromInt(1), Date: types.NewDate(2024, time.March, 1), Error: "the value is not valid"}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/import/saidas", rows)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/import/saidas", `{"loja": "not a list"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
