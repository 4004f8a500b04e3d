package v1

import (
	"fmt"
	"net/http"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.PUT("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/tables/entradas [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/tables/entradas/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	_, ok := getIncome(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/tables/entradas/{id} [get]
func GetIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200			{object}	IncomeListResponse
// @Failure		400			{object}	IncomeListResponse
// @Failure		500			{object}	IncomeListResponse
// @Router			/tables/entradas [get]
// @Param			month		query	string	false	"Incomes in this month, YYYY-MM"
// @Param			fromDate	query	string	false	"Incomes at and after this date, YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Incomes before and at this date, YYYY-MM-DD"
// @Param			categoria	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Description contains this string"
// @Param			offset		query	uint	false	"The offset of the first income returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of incomes to return. Defaults to 50, -1 returns all."
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("data DESC, data_input DESC").Where(&models.Income{Category: filter.Category}, queryFields...)

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

	q = q.Offset(int(filter.Offset))

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create income
// @Description	Creates an income
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/tables/entradas [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income := editable.model()
	income.CategoryID, err = models.TableIncomeCategories.ResolveID(models.DB, income.Category)
	if err == nil {
		err = models.DB.Create(&income).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/tables/entradas/{id} [patch]
// @Router			/tables/entradas/{id} [put]
func UpdateIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	var update IncomeEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	update.apply(&income, updateFields)

	income.CategoryID, err = models.TableIncomeCategories.ResolveID(models.DB, income.Category)
	if err == nil {
		err = models.DB.Save(&income).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/tables/entradas/{id} [delete]
func DeleteIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// getIncome returns the income with the ID from the URI. If it cannot be
// retrieved, the error response is written and ok is false.
func getIncome(c *gin.Context) (income models.Income, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = models.DB.First(&income, uri.ID).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Income{}, false
	}

	return income, true
}
