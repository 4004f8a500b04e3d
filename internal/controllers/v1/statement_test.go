package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/controle-financeiro/backend/internal/billing"
	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getStatements(query string) v1.StatementListResponse {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/faturas"+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatementListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) getStatement(path string) billing.Statement {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/faturas/"+path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatementResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) TestStatementOptions() {
	for _, path := range []string{"", "/current", "/2024-03"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/faturas"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestStatementsDueDay() {
	// Without any credit card, the default is used
	response := suite.getStatements("")
	suite.Assert().Equal(billing.DefaultDueDay, response.DueDay)
	suite.Assert().Len(response.Data, billing.ScheduleLength)

	suite.createTestCreditCard(v1.CreditCardEditable{Name: "Nubank", DueDay: 5})
	second := suite.createTestCreditCard(v1.CreditCardEditable{Name: "Inter", DueDay: 25})

	tests := []struct {
		name   string
		query  string
		dueDay int
	}{
		{"First card", "", 5},
		{"Query", "?dia_vencimento=20", 20},
		{"Query takes precedence over card", fmt.Sprintf("?dia_vencimento=20&cartao=%s", second.ID), 20},
		{"Card", fmt.Sprintf("?cartao=%s", second.ID), 25},
		{"Invalid due day", "?dia_vencimento=40", 5},
		{"Due day not a number", "?dia_vencimento=ten", 5},
		{"Invalid card", "?cartao=nope", 5},
		{"Unknown card", "?cartao=0f6d0a6b-27a4-4c6e-9bbf-1c53f9b1f4d2", 5},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			response := suite.getStatements(tt.query)
			suite.Assert().Equal(tt.dueDay, response.DueDay)

			for _, s := range response.Data {
				suite.Assert().Equal(tt.dueDay, s.DueDay)
				suite.Assert().Nil(s.Items, "Statement lists must not contain items")
			}
		})
	}
}

func (suite *TestSuiteStandard) TestStatementsOneCurrent() {
	response := suite.getStatements("?dia_vencimento=10")

	var current int
	for i, s := range response.Data {
		if s.Current {
			current++
		}

		if i > 0 {
			suite.Assert().Equal(response.Data[i-1].Month.AddDate(0, 1), s.Month, "Statements must be consecutive")
		}
	}
	suite.Assert().Equal(1, current)
}

func (suite *TestSuiteStandard) TestStatementCurrent() {
	today := types.DateOf(time.Now())

	created := suite.createTestExpense(v1.ExpenseEditable{
		Description: "Mercado",
		PaymentType: "Crédito",
		Value:       decimal.NewFromInt(150),
		Date:        today,
	})
	suite.createTestExpense(v1.ExpenseEditable{
		Description: "Padaria",
		PaymentType: "PIX",
		Value:       decimal.NewFromInt(20),
		Date:        today,
	})

	statement := suite.getStatement("current")
	suite.Assert().True(statement.Current)
	suite.Assert().True(statement.Contains(today))
	suite.Require().Len(statement.Items, 1, "Only credit card expenses belong on statements")
	suite.Assert().Equal(created.ID, statement.Items[0].ID)
	suite.Assert().True(decimal.NewFromInt(150).Equal(statement.Total))
}

func (suite *TestSuiteStandard) TestStatementMonth() {
	expenses := []v1.ExpenseEditable{
		{Description: "Before", PaymentType: "Crédito", Value: decimal.NewFromInt(1000), Date: types.NewDate(2024, time.February, 10)},
		{Description: "First day", PaymentType: "Crédito", Value: decimal.NewFromInt(100), Date: types.NewDate(2024, time.February, 11)},
		{Description: "Refund", Category: models.CategoryReimbursement, PaymentType: "Crédito", Value: decimal.NewFromInt(30), Date: types.NewDate(2024, time.March, 1)},
		{Description: "Debit", PaymentType: "Débito", Value: decimal.NewFromInt(500), Date: types.NewDate(2024, time.March, 1)},
		{Description: "Due day", PaymentType: "cartao", Value: decimal.NewFromInt(50), Date: types.NewDate(2024, time.March, 10)},
		{Description: "After", PaymentType: "Crédito", Value: decimal.NewFromInt(1000), Date: types.NewDate(2024, time.March, 11)},
	}

	for _, e := range expenses {
		suite.createTestExpense(e)
	}

	statement := suite.getStatement("2024-03?dia_vencimento=10")
	suite.Assert().Equal("2024-02-11", statement.From.String())
	suite.Assert().Equal("2024-03-10", statement.Until.String())
	suite.Assert().Equal(3, statement.Count)
	suite.Assert().True(decimal.NewFromInt(150).Equal(statement.Purchases), statement.Purchases.String())
	suite.Assert().True(decimal.NewFromInt(30).Equal(statement.Reimbursements), statement.Reimbursements.String())
	suite.Assert().True(decimal.NewFromInt(120).Equal(statement.Total), statement.Total.String())
	suite.Assert().False(statement.Current)

	suite.Require().Len(statement.Items, 3)
	suite.Assert().Equal("First day", statement.Items[0].Description)
	suite.Assert().Equal("Due day", statement.Items[2].Description)
}

func (suite *TestSuiteStandard) TestStatementMonthInvalid() {
	for _, month := range []string{"2024-13", "march", "2024-3-1"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/faturas/"+month, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestStatementSkipsMalformedDate() {
	suite.createTestExpense(v1.ExpenseEditable{
		Description: "Valid",
		PaymentType: "Crédito",
		Value:       decimal.NewFromInt(40),
		Date:        types.NewDate(2024, time.March, 1),
	})

	err := models.DB.Exec(`INSERT INTO saidas (id, loja, descricao, tipo_pagamento, metodo_pagamento, valor, data, data_input, parcelas, parcela_atual, parcela_id, created_at, updated_at)
		VALUES ('7a0c4a3e-54a4-4bd6-9df3-5f2f3d1b8e11', '', 'Legacy', 'Crédito', 'CREDIT', 99, '31/01/2024', CURRENT_TIMESTAMP, 1, 1, '', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error
	suite.Require().Nil(err)

	statement := suite.getStatement("2024-03?dia_vencimento=10")
	suite.Assert().Equal(1, statement.Count)
	suite.Require().Len(statement.Items, 1)
	suite.Assert().Equal("Valid", statement.Items[0].Description)
	suite.Assert().True(decimal.NewFromInt(40).Equal(statement.Total), statement.Total.String())

	suite.getStatements("")
	suite.getStatement("current")

	for _, path := range []string{"/dashboard", "/tables/saidas"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}
