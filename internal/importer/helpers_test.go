package importer_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/test"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// testDB returns a test database and a function to close it.
func testDB(t *testing.T) (*gorm.DB, func() error) {
	err := models.Connect(test.TmpFile(t))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}

	sqlDB, _ := models.DB.DB()
	return models.DB, sqlDB.Close
}

// workbook returns an xlsx file with the rows in each sheet. Sheets are
// created in the order of names.
func workbook(t *testing.T, names []string, sheets map[string][][]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	for _, name := range names {
		_, err := f.NewSheet(name)
		require.Nil(t, err)

		for i, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.Nil(t, err)
			require.Nil(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.Nil(t, f.DeleteSheet("Sheet1"))

	buf := new(bytes.Buffer)
	require.Nil(t, f.Write(buf))
	return buf
}
