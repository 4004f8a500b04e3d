package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCreditCardFirst() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/cartao/first", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no credit card", test.DecodeError(suite.T(), r.Body.Bytes()))

	first := suite.createTestCreditCard(v1.CreditCardEditable{Name: "Nubank", DueDay: 5})
	suite.createTestCreditCard(v1.CreditCardEditable{Name: "Inter", DueDay: 20})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/cartao/first", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(first.ID, response.Data.ID)
	suite.Assert().Equal(5, response.Data.DueDay)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/faturas?cartao=%s", first.ID), response.Data.Links.Statements)
}

func (suite *TestSuiteStandard) TestCreditCardCreateInvalid() {
	tests := []struct {
		name string
		card v1.CreditCardEditable
		err  string
	}{
		{"Due day too large", v1.CreditCardEditable{Name: "Nubank", DueDay: 32}, ""},
		{"Due day missing", v1.CreditCardEditable{Name: "Nubank"}, models.ErrDueDayInvalid.Error()},
		{"Name missing", v1.CreditCardEditable{DueDay: 10}, models.ErrCardNameEmpty.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/cartao", tt.card)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			if tt.err != "" {
				suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreditCardList() {
	suite.createTestCreditCard(v1.CreditCardEditable{Name: "Nubank", DueDay: 5})
	suite.createTestCreditCard(v1.CreditCardEditable{Name: "Inter", DueDay: 20})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/cartao", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Nubank", response.Data[0].Name)
	suite.Assert().Equal("Inter", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCreditCardUpdate() {
	card := suite.createTestCreditCard(v1.CreditCardEditable{Name: "Nubank", DueDay: 5})

	r := test.Request(suite.T(), http.MethodPatch, card.Links.Self, `{"dia_vencimento": 15}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Nubank", response.Data.Name)
	suite.Assert().Equal(15, response.Data.DueDay)

	r = test.Request(suite.T(), http.MethodPut, card.Links.Self, `{"nome_cartao": " "}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/cartao/%s", uuid.New()), `{"dia_vencimento": 15}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreditCardDelete() {
	card := suite.createTestCreditCard(v1.CreditCardEditable{Name: "Nubank", DueDay: 5})

	r := test.Request(suite.T(), http.MethodDelete, card.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, card.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no credit card matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}
