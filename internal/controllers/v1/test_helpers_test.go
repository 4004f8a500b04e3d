package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/test"
)

func (suite *TestSuiteStandard) createTestExpense(e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseCreateResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/tables/saidas", e)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &response)
	}

	return response
}

func (suite *TestSuiteStandard) getExpense(id fmt.Stringer) v1.Expense {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/tables/saidas/%s", id), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) listExpenses(query string) v1.ExpenseListResponse {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/tables/saidas"+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) createTestIncome(i v1.IncomeEditable, expectedStatus ...int) v1.Income {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/tables/entradas", i)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if response.Data == nil {
		return v1.Income{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) createTestCreditCard(c v1.CreditCardEditable, expectedStatus ...int) v1.CreditCard {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/cartao", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if response.Data == nil {
		return v1.CreditCard{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) createTestLookup(path, name string, expectedStatus ...int) v1.Lookup {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com"+path, v1.LookupEditable{Name: name})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.LookupResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if response.Data == nil {
		return v1.Lookup{}
	}
	return *response.Data
}
