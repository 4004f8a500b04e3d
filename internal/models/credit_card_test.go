package models_test

import (
	"testing"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreditCardValidation() {
	tests := []struct {
		name string
		card models.CreditCard
		err  error
	}{
		{"Empty name", models.CreditCard{Name: "  ", DueDay: 10}, models.ErrCardNameEmpty},
		{"Due day zero", models.CreditCard{Name: "Nubank", DueDay: 0}, models.ErrDueDayInvalid},
		{"Due day too large", models.CreditCard{Name: "Nubank", DueDay: 32}, models.ErrDueDayInvalid},
		{"Negative due day", models.CreditCard{Name: "Nubank", DueDay: -3}, models.ErrDueDayInvalid},
		{"First day", models.CreditCard{Name: "Inter", DueDay: 1}, nil},
		{"Last day", models.CreditCard{Name: "Itaú", DueDay: 31}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.card).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCreditCardTrimsName() {
	card := suite.createTestCreditCard(models.CreditCard{Name: " Nubank ", DueDay: 5})
	suite.Assert().Equal("Nubank", card.Name)
}

func (suite *TestSuiteStandard) TestFirstCreditCard() {
	_, ok, err := models.FirstCreditCard(models.DB)
	suite.Require().Nil(err)
	suite.Assert().False(ok, "there must not be a credit card in an empty database")

	first := suite.createTestCreditCard(models.CreditCard{Name: "Nubank", DueDay: 7})
	_ = suite.createTestCreditCard(models.CreditCard{Name: "Inter", DueDay: 20})

	card, ok, err := models.FirstCreditCard(models.DB)
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().Equal(first.ID, card.ID)
	suite.Assert().Equal(7, card.DueDay)
}

func (suite *TestSuiteStandard) TestFirstCreditCardDBFail() {
	suite.CloseDB()

	_, _, err := models.FirstCreditCard(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
