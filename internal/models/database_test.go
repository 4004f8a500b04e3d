package models_test

import (
	"path/filepath"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestConnectFail() {
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "directory", "finance.db"))
	suite.Assert().NotNil(err)
	suite.Assert().Contains(err.Error(), "failed to connect to database")
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	tests := []struct {
		model    any
		resource string
	}{
		{&models.Expense{}, "expense"},
		{&models.Income{}, "income"},
		{&models.CreditCard{}, "credit card"},
		{&models.ExpenseCategory{}, "expense category"},
		{&models.Store{}, "store"},
	}

	for _, tt := range tests {
		err := models.DB.First(tt.model, uuid.New()).Error
		suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
		suite.Assert().Equal("there is no "+tt.resource+" matching your query", err.Error())
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Find(&[]models.Expense{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.DB.Create(&models.Income{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestMigrateClassifiesLegacyExpenses() {
	suite.CloseDB()

	path := test.TmpFile(suite.T())
	suite.Require().Nil(models.Connect(path))

	expense := suite.createTestExpense(models.Expense{PaymentType: "Cartão de crédito"})

	// Simulate a row written before the payment method column existed
	err := models.DB.Exec("UPDATE saidas SET metodo_pagamento = '' WHERE id = ?", expense.ID).Error
	suite.Require().Nil(err)

	suite.CloseDB()
	suite.Require().Nil(models.Connect(path))

	var stored models.Expense
	suite.Require().Nil(models.DB.First(&stored, expense.ID).Error)
	suite.Assert().Equal(types.PaymentCredit, stored.PaymentMethod)
}
