package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Expense errors
var (
	ErrInstallmentsCreate   = errors.New("failed to create installments")
	ErrInstallmentsInvalid  = errors.New("parcelas must be at least 1")
	ErrInstallmentPosition  = errors.New("parcela_atual must be between 1 and parcelas")
	ErrInstallmentsTooLarge = errors.New("parcelas must not be larger than 420")
)

// Credit card errors
var (
	ErrCardNameEmpty = errors.New("nome_cartao must not be empty")
	ErrDueDayInvalid = errors.New("dia_vencimento must be between 1 and 31")
)

// Lookup errors
var (
	ErrLookupNameEmpty = errors.New("nome must not be empty")
	ErrNameNotUnique   = errors.New("the name must be unique, there already is a resource with this name")
)
