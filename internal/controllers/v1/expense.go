package v1

import (
	"fmt"
	"net/http"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/tables/saidas [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/tables/saidas/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/tables/saidas/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200					{object}	ExpenseListResponse
// @Failure		400					{object}	ExpenseListResponse
// @Failure		500					{object}	ExpenseListResponse
// @Router			/tables/saidas [get]
// @Param			month				query	string	false	"Expenses in this month, YYYY-MM"
// @Param			fromDate			query	string	false	"Expenses at and after this date, YYYY-MM-DD"
// @Param			untilDate			query	string	false	"Expenses before and at this date, YYYY-MM-DD"
// @Param			categoria			query	string	false	"Filter by category"
// @Param			loja				query	string	false	"Filter by store"
// @Param			tipo_pagamento		query	string	false	"Filter by payment type label"
// @Param			metodo_pagamento	query	string	false	"Filter by payment method"
// @Param			parcela_id			query	string	false	"Filter by installment group"
// @Param			search				query	string	false	"Description contains this string"
// @Param			offset				query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of expenses to return. Defaults to 50, -1 returns all."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if filter.PaymentMethod != "" && !filter.PaymentMethod.Valid() {
		s := errPaymentMethodInvalid.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	model := filter.model()
	q := models.DB.Order("data DESC, parcela_id, parcela_atual").Where(&model, queryFields...)

	if !filter.Month.IsZero() {
		q = q.Where("data >= ? AND data <= ?", filter.Month.First(), filter.Month.Last())
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("data >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("data <= ?", filter.UntilDate)
	}

	if filter.Search != "" {
		q = q.Where("descricao LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create expense
// @Description	Creates an expense. With parcelas larger than 1, valor is the total of the purchase and one expense is created per installment, one month apart. Either all installments are created or none.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/tables/saidas [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	expense := editable.model()
	err = resolveExpenseLookups(models.DB, &expense)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	rows, err := models.CreateExpense(models.DB, expense, editable.Installments)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	r := ExpenseCreateResponse{ID: rows[0].ID}
	if len(rows) > 1 {
		r.GroupID = rows[0].GroupID
		r.Message = fmt.Sprintf("%d parcelas criadas com sucesso", len(rows))
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified. Other installments of the group are not changed.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/tables/saidas/{id} [patch]
// @Router			/tables/saidas/{id} [put]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var update ExpenseEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	update.apply(&expense, updateFields)

	err = resolveExpenseLookups(models.DB, &expense)
	if err == nil {
		err = models.DB.Save(&expense).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense. With excluir_todas, all installments of its group are deleted.
// @Tags			Expenses
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			excluir_todas	query		bool	false	"Delete all installments of the group"
// @Router			/tables/saidas/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var query ExpenseDeleteQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.DeleteExpense(models.DB, uri.ID.UUID, query.All)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveExpenseLookups sets the IDs of the reference rows matching
// the names of the expense. Unknown names leave the IDs empty.
func resolveExpenseLookups(db *gorm.DB, e *models.Expense) (err error) {
	if e.StoreID, err = models.TableStores.ResolveID(db, e.Store); err != nil {
		return err
	}

	if e.CategoryID, err = models.TableExpenseCategories.ResolveID(db, e.Category); err != nil {
		return err
	}

	e.PaymentTypeID, err = models.TablePaymentTypes.ResolveID(db, e.PaymentType)
	return err
}
