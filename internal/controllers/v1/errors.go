package v1

import (
	"errors"
	"net/http"

	"github.com/controle-financeiro/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errPaymentMethodInvalid = errors.New("the specified metodo_pagamento is invalid")
	errCleanupConfirmation  = errors.New("the confirmation for the cleanup API call was incorrect")
	errNoCreditCard         = errors.New("there is no credit card")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports .xlsx files")
)

// Table browser errors
var (
	errOrderInvalid = errors.New("order must be ASC or DESC")
	errSearchField  = errors.New("searchField must be set when searching")
)
