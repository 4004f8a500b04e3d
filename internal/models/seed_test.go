package models_test

import (
	"github.com/controle-financeiro/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSeed() {
	// Running it twice must not create duplicates
	suite.Require().Nil(models.Seed(models.DB))
	suite.Require().Nil(models.Seed(models.DB))

	for _, table := range models.LookupTables {
		rows, err := table.List(models.DB, true)
		suite.Require().Nil(err)
		suite.Assert().Len(rows, len(models.DefaultLookups[table]), "table %s", table)
	}

	id, err := models.TableExpenseCategories.ResolveID(models.DB, models.CategoryReimbursement)
	suite.Require().Nil(err)
	suite.Assert().NotNil(id)
}
