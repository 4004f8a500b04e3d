package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/test"
	"github.com/google/uuid"
)

var lookupPaths = []string{"/categorias/saidas", "/categorias/entradas", "/tipos-pagamento", "/lojas"}

func (suite *TestSuiteStandard) listLookups(path, query string) []v1.Lookup {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com"+path+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestLookupOptions() {
	for _, path := range lookupPaths {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"), path)

		row := suite.createTestLookup(path, "Row")
		r = test.Request(suite.T(), http.MethodOptions, row.Links.Self, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestLookupCreate() {
	for _, path := range lookupPaths {
		suite.Run(path, func() {
			first := suite.createTestLookup(path, " Alimentação ")
			second := suite.createTestLookup(path, "Beleza")

			suite.Assert().Equal("Alimentação", first.Name)
			suite.Assert().True(first.Active)
			suite.Assert().Greater(second.Order, first.Order, "New rows must be sorted last")
			suite.Assert().Equal(fmt.Sprintf("http://example.com%s/%s", path, first.ID), first.Links.Self)

			suite.createTestLookup(path, "Alimentação", http.StatusBadRequest)
			suite.createTestLookup(path, "   ", http.StatusBadRequest)

			r := test.Request(suite.T(), http.MethodGet, first.Links.Self, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
		})
	}
}

func (suite *TestSuiteStandard) TestLookupDuplicateMessage() {
	suite.createTestLookup("/lojas", "Amazon")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/lojas", v1.LookupEditable{Name: "Amazon"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrNameNotUnique.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLookupListOrder() {
	suite.createTestLookup("/lojas", "Zara")
	suite.createTestLookup("/lojas", "Amazon")
	suite.createTestLookup("/tipos-pagamento", "PIX")
	suite.createTestLookup("/tipos-pagamento", "Débito")

	// Stores are sorted by name
	stores := suite.listLookups("/lojas", "")
	suite.Require().Len(stores, 2)
	suite.Assert().Equal("Amazon", stores[0].Name)

	// Everything else by the order they were created in
	types := suite.listLookups("/tipos-pagamento", "")
	suite.Require().Len(types, 2)
	suite.Assert().Equal("PIX", types[0].Name)
}

func (suite *TestSuiteStandard) TestLookupDeactivate() {
	row := suite.createTestLookup("/categorias/saidas", "Transporte")
	suite.createTestLookup("/categorias/saidas", "Beleza")

	r := test.Request(suite.T(), http.MethodDelete, row.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Len(suite.listLookups("/categorias/saidas", ""), 1, "Inactive rows must not be listed")
	suite.Assert().Len(suite.listLookups("/categorias/saidas", "?all=true"), 2, "Inactive rows must be listed with all")

	// The row still exists
	r = test.Request(suite.T(), http.MethodGet, row.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Creating it again activates it
	again := suite.createTestLookup("/categorias/saidas", "Transporte")
	suite.Assert().Equal(row.ID, again.ID)
	suite.Assert().True(again.Active)
	suite.Assert().Len(suite.listLookups("/categorias/saidas", ""), 2)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/categorias/saidas/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no expense category matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLookupUpdate() {
	row := suite.createTestLookup("/lojas", "Renner")
	suite.createTestLookup("/lojas", "C&A")

	r := test.Request(suite.T(), http.MethodPatch, row.Links.Self, `{"nome": "Lojas Renner", "ordem": 7}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Lojas Renner", response.Data.Name)
	suite.Assert().Equal(7, response.Data.Order)
	suite.Assert().True(response.Data.Active, "Fields not in the body must not change")

	r = test.Request(suite.T(), http.MethodPatch, row.Links.Self, `{"nome": "C&A"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(fmt.Sprintf("%s: store", models.ErrNameNotUnique), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodPatch, row.Links.Self, `{"nome": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
