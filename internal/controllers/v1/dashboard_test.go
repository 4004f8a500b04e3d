package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getDashboard(query string) v1.DashboardResponse {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard"+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.createTestIncome(v1.IncomeEditable{Description: "Salário", Category: "Salário", Value: decimal.NewFromInt(5000), Date: types.NewDate(2024, time.March, 5)})
	suite.createTestIncome(v1.IncomeEditable{Description: "Salário", Category: "Salário", Value: decimal.NewFromInt(5000), Date: types.NewDate(2024, time.April, 5)})

	suite.createTestExpense(v1.ExpenseEditable{Store: "Amazon", Category: "Eletrônicos", PaymentType: "Crédito", Value: decimal.NewFromInt(300), Date: types.NewDate(2024, time.March, 10)})
	suite.createTestExpense(v1.ExpenseEditable{Store: "Padaria", Category: "Alimentação", PaymentType: "PIX", Value: decimal.NewFromInt(100), Date: types.NewDate(2024, time.March, 12)})
	suite.createTestExpense(v1.ExpenseEditable{Store: "-", Category: "Alimentação", PaymentType: "PIX", Value: decimal.NewFromInt(50), Date: types.NewDate(2024, time.April, 2)})

	view := suite.getDashboard("").Data
	suite.Require().NotNil(view)
	suite.Assert().True(decimal.NewFromInt(10000).Equal(view.Income), view.Income.String())
	suite.Assert().True(decimal.NewFromInt(450).Equal(view.Expense), view.Expense.String())
	suite.Assert().True(decimal.NewFromInt(9550).Equal(view.Balance), view.Balance.String())

	suite.Require().Len(view.Months, 2)
	suite.Assert().Equal("2024-03", view.Months[0].Month.String())
	suite.Assert().True(decimal.NewFromInt(4600).Equal(view.Months[0].Balance))
	suite.Assert().True(decimal.NewFromInt(9550).Equal(view.Months[1].Cumulative))

	suite.Require().Len(view.Categories, 2)
	suite.Assert().Equal("Eletrônicos", view.Categories[0].Name)

	for _, store := range view.Stores {
		suite.Assert().NotEqual("-", store.Name, "The placeholder store must not be ranked")
	}

	// Everything was just entered
	suite.Assert().Len(view.Recent, 5)
}

func (suite *TestSuiteStandard) TestDashboardFilter() {
	suite.createTestIncome(v1.IncomeEditable{Category: "Salário", Value: decimal.NewFromInt(5000), Date: types.NewDate(2024, time.March, 5)})
	suite.createTestExpense(v1.ExpenseEditable{Category: "Eletrônicos", PaymentType: "Crédito", Value: decimal.NewFromInt(300), Date: types.NewDate(2024, time.March, 10)})
	suite.createTestExpense(v1.ExpenseEditable{Category: "Alimentação", PaymentType: "PIX", Value: decimal.NewFromInt(100), Date: types.NewDate(2024, time.April, 12)})

	view := suite.getDashboard("?from=2024-04&until=2024-04").Data
	suite.Assert().True(decimal.NewFromInt(100).Equal(view.Expense), view.Expense.String())
	suite.Assert().True(view.Income.IsZero(), view.Income.String())

	view = suite.getDashboard("?tipo_pagamento=Cr%C3%A9dito").Data
	suite.Assert().True(decimal.NewFromInt(300).Equal(view.Expense), view.Expense.String())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard?from=2024-15", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
