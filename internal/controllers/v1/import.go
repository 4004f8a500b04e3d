package v1

import (
	"net/http"
	"strings"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/importer"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ExpensePreviewResponse struct {
	Error *string                                `json:"error" example:"the workbook does not contain the sheet 'Gastos'"` // The error, if any occurred
	Data  *importer.Preview[importer.ExpenseRow] `json:"data"`                                                             // The parsed rows
}

type IncomePreviewResponse struct {
	Error *string                               `json:"error" example:"the sheet is missing required columns: valor"` // The error, if any occurred
	Data  *importer.Preview[importer.IncomeRow] `json:"data"`                                                         // The parsed rows
}

type ImportResponse struct {
	Imported int `json:"imported" example:"42"` // Number of created resources
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/preview/saidas", OptionsImport)
	r.POST("/preview/saidas", PreviewExpenses)
	r.OPTIONS("/preview/entradas", OptionsImport)
	r.POST("/preview/entradas", PreviewIncomes)

	r.OPTIONS("/saidas", OptionsImport)
	r.POST("/saidas", ImportExpenses)
	r.OPTIONS("/entradas", OptionsImport)
	r.POST("/entradas", ImportIncomes)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/import/preview/saidas [options]
// @Router			/import/preview/entradas [options]
// @Router			/import/saidas [options]
// @Router			/import/entradas [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview expense import
// @Description	Parses the expenses in a sheet of an xlsx workbook. Rows that match an existing expense are marked as duplicate. Nothing is saved.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ExpensePreviewResponse
// @Failure		400		{object}	ExpensePreviewResponse
// @Failure		500		{object}	ExpensePreviewResponse
// @Param			file	formData	file	true	"File to import"
// @Param			sheet	formData	string	false	"Name of the sheet. Defaults to the first sheet"
// @Router			/import/preview/saidas [post]
func PreviewExpenses(c *gin.Context) {
	wb, err := openWorkbook(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}
	defer wb.Close()

	preview, err := wb.Expenses(c.PostForm("sheet"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}

	var existing []models.Expense
	err = models.DB.Find(&existing).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}

	importer.MarkExpenseDuplicates(preview.Rows, existing)
	c.JSON(http.StatusOK, ExpensePreviewResponse{Data: &preview})
}

// @Summary		Preview income import
// @Description	Parses the incomes in a sheet of an xlsx workbook. Rows that match an existing income are marked as duplicate. Nothing is saved.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	IncomePreviewResponse
// @Failure		400		{object}	IncomePreviewResponse
// @Failure		500		{object}	IncomePreviewResponse
// @Param			file	formData	file	true	"File to import"
// @Param			sheet	formData	string	false	"Name of the sheet. Defaults to the first sheet"
// @Router			/import/preview/entradas [post]
func PreviewIncomes(c *gin.Context) {
	wb, err := openWorkbook(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomePreviewResponse{
			Error: &e,
		})
		return
	}
	defer wb.Close()

	preview, err := wb.Incomes(c.PostForm("sheet"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomePreviewResponse{
			Error: &e,
		})
		return
	}

	var existing []models.Income
	err = models.DB.Find(&existing).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomePreviewResponse{
			Error: &e,
		})
		return
	}

	importer.MarkIncomeDuplicates(preview.Rows, existing)
	c.JSON(http.StatusOK, IncomePreviewResponse{Data: &preview})
}

// @Summary		Import expenses
// @Description	Creates one expense per row in a single transaction. Missing stores, categories and payment types are created. Rows with an error are skipped.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rows	body		[]importer.ExpenseRow	true	"Rows to import"
// @Router			/import/saidas [post]
func ImportExpenses(c *gin.Context) {
	var rows []importer.ExpenseRow
	err := httputil.BindData(c, &rows)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	n, err := importer.ImportExpenses(models.DB, rows)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Imported: n})
}

// @Summary		Import incomes
// @Description	Creates one income per row in a single transaction. Missing categories are created. Rows with an error are skipped.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rows	body		[]importer.IncomeRow	true	"Rows to import"
// @Router			/import/entradas [post]
func ImportIncomes(c *gin.Context) {
	var rows []importer.IncomeRow
	err := httputil.BindData(c, &rows)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	n, err := importer.ImportIncomes(models.DB, rows)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Imported: n})
}

// openWorkbook opens the xlsx workbook posted as form file "file".
func openWorkbook(c *gin.Context) (*importer.Workbook, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), ".xlsx") {
		return nil, errWrongFileSuffix
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return importer.Open(f)
}
