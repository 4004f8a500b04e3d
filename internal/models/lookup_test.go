package models_test

import (
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestLookupCreate() {
	table := models.TableExpenseCategories

	first, err := table.Create(models.DB, " Viagem ")
	suite.Require().Nil(err)
	suite.Assert().Equal("Viagem", first.Name)
	suite.Assert().True(first.Active)
	suite.Assert().Equal(1, first.Order)

	second, err := table.Create(models.DB, "Academia")
	suite.Require().Nil(err)
	suite.Assert().Equal(2, second.Order)

	rows, err := table.List(models.DB, false)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("Viagem", rows[0].Name)
	suite.Assert().Equal("Academia", rows[1].Name)
}

func (suite *TestSuiteStandard) TestLookupCreateEmpty() {
	_, err := models.TableStores.Create(models.DB, "   ")
	suite.Assert().ErrorIs(err, models.ErrLookupNameEmpty)
}

func (suite *TestSuiteStandard) TestLookupCreateDuplicate() {
	_, err := models.TableStores.Create(models.DB, "Zara")
	suite.Require().Nil(err)

	_, err = models.TableStores.Create(models.DB, "Zara")
	suite.Assert().ErrorIs(err, models.ErrNameNotUnique)
}

func (suite *TestSuiteStandard) TestLookupSaveDuplicate() {
	_, err := models.TablePaymentTypes.Create(models.DB, "PIX")
	suite.Require().Nil(err)

	row, err := models.TablePaymentTypes.Create(models.DB, "Débito")
	suite.Require().Nil(err)

	row.Name = "PIX"
	err = models.TablePaymentTypes.Save(models.DB, &row)
	suite.Assert().ErrorIs(err, models.ErrNameNotUnique)
	suite.Assert().Contains(err.Error(), "payment type")
}

func (suite *TestSuiteStandard) TestLookupDeactivateAndReactivate() {
	table := models.TableIncomeCategories

	row, err := table.Create(models.DB, "Salário")
	suite.Require().Nil(err)

	err = table.Deactivate(models.DB, row.ID)
	suite.Require().Nil(err)

	active, err := table.List(models.DB, false)
	suite.Require().Nil(err)
	suite.Assert().Len(active, 0)

	all, err := table.List(models.DB, true)
	suite.Require().Nil(err)
	suite.Require().Len(all, 1)
	suite.Assert().False(all[0].Active)

	// Inactive rows still resolve names
	id, err := table.ResolveID(models.DB, "Salário")
	suite.Require().Nil(err)
	suite.Require().NotNil(id)
	suite.Assert().Equal(row.ID, *id)

	again, err := table.Create(models.DB, "Salário")
	suite.Require().Nil(err)
	suite.Assert().Equal(row.ID, again.ID)
	suite.Assert().True(again.Active)

	active, err = table.List(models.DB, false)
	suite.Require().Nil(err)
	suite.Assert().Len(active, 1)
}

func (suite *TestSuiteStandard) TestLookupDeactivateNotFound() {
	err := models.TableStores.Deactivate(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "store")
}

func (suite *TestSuiteStandard) TestLookupResolveID() {
	id, err := models.TableStores.ResolveID(models.DB, "")
	suite.Require().Nil(err)
	suite.Assert().Nil(id)

	id, err = models.TableStores.ResolveID(models.DB, "Renner")
	suite.Require().Nil(err)
	suite.Assert().Nil(id)

	created, err := models.TableStores.FirstOrCreate(models.DB, "Renner")
	suite.Require().Nil(err)
	suite.Require().NotNil(created)

	again, err := models.TableStores.FirstOrCreate(models.DB, " Renner ")
	suite.Require().Nil(err)
	suite.Require().NotNil(again)
	suite.Assert().Equal(*created, *again)

	rows, err := models.TableStores.List(models.DB, true)
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 1)
}

func (suite *TestSuiteStandard) TestLookupStoresOrderedByName() {
	for _, name := range []string{"Zara", "Amazon", "Renner"} {
		_, err := models.TableStores.Create(models.DB, name)
		suite.Require().Nil(err)
	}

	rows, err := models.TableStores.List(models.DB, false)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)
	suite.Assert().Equal("Amazon", rows[0].Name)
	suite.Assert().Equal("Renner", rows[1].Name)
	suite.Assert().Equal("Zara", rows[2].Name)
}

func (suite *TestSuiteStandard) TestLookupGet() {
	row, err := models.TableExpenseCategories.Create(models.DB, "Beleza")
	suite.Require().Nil(err)

	got, err := models.TableExpenseCategories.Get(models.DB, row.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Beleza", got.Name)

	// Rows of other tables are not found
	_, err = models.TableIncomeCategories.Get(models.DB, row.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
