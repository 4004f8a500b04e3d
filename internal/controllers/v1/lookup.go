package v1

import (
	"fmt"
	"net/http"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// lookupController serves one reference table.
type lookupController struct {
	table models.LookupTable
	path  string
}

// RegisterLookupRoutes registers the routes for the reference table with
// the RouterGroup that is passed.
func RegisterLookupRoutes(r *gin.RouterGroup, table models.LookupTable) {
	co := lookupController{table: table, path: r.BasePath()}

	// Root group
	{
		r.OPTIONS("", co.OptionsList)
		r.GET("", co.List)
		r.POST("", co.Create)
	}

	// Row with ID
	{
		r.OPTIONS("/:id", co.OptionsDetail)
		r.GET("/:id", co.Get)
		r.PATCH("/:id", co.Update)
		r.DELETE("/:id", co.Delete)
	}
}

func (co lookupController) newLookup(c *gin.Context, row models.Lookup) Lookup {
	url := c.GetString(string(models.DBContextURL))

	return Lookup{
		Lookup: row,
		Links: LookupLinks{
			Self: fmt.Sprintf("%s%s/%s", url, co.path, row.ID),
		},
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Lookups
// @Success		204
// @Router			/categorias/saidas [options]
// @Router			/categorias/entradas [options]
// @Router			/tipos-pagamento [options]
// @Router			/lojas [options]
func (co lookupController) OptionsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Lookups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categorias/saidas/{id} [options]
// @Router			/categorias/entradas/{id} [options]
// @Router			/tipos-pagamento/{id} [options]
// @Router			/lojas/{id} [options]
func (co lookupController) OptionsDetail(c *gin.Context) {
	_, ok := co.get(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List rows
// @Description	Returns the active rows of the reference table ordered by ordem and nome. Stores are ordered by nome.
// @Tags			Lookups
// @Produce		json
// @Success		200	{object}	LookupListResponse
// @Failure		400	{object}	LookupListResponse
// @Failure		500	{object}	LookupListResponse
// @Param			all	query		bool	false	"Include inactive rows"
// @Router			/categorias/saidas [get]
// @Router			/categorias/entradas [get]
// @Router			/tipos-pagamento [get]
// @Router			/lojas [get]
func (co lookupController) List(c *gin.Context) {
	var filter LookupQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LookupListResponse{
			Error: &s,
		})
		return
	}

	rows, err := co.table.List(models.DB, filter.All)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Lookup, 0, len(rows))
	for _, row := range rows {
		data = append(data, co.newLookup(c, row))
	}

	c.JSON(http.StatusOK, LookupListResponse{Data: data})
}

// @Summary		Create row
// @Description	Creates a row at the end of the sort order. If an inactive row with the name exists, it is activated again.
// @Tags			Lookups
// @Accept			json
// @Produce		json
// @Success		201		{object}	LookupResponse
// @Failure		400		{object}	LookupResponse
// @Failure		500		{object}	LookupResponse
// @Param			lookup	body		LookupEditable	true	"Row, only nome is used"
// @Router			/categorias/saidas [post]
// @Router			/categorias/entradas [post]
// @Router			/tipos-pagamento [post]
// @Router			/lojas [post]
func (co lookupController) Create(c *gin.Context) {
	var editable LookupEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	row, err := co.table.Create(models.DB, editable.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	data := co.newLookup(c, row)
	c.JSON(http.StatusCreated, LookupResponse{Data: &data})
}

// @Summary		Get row
// @Description	Returns a specific row of the reference table
// @Tags			Lookups
// @Produce		json
// @Success		200	{object}	LookupResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categorias/saidas/{id} [get]
// @Router			/categorias/entradas/{id} [get]
// @Router			/tipos-pagamento/{id} [get]
// @Router			/lojas/{id} [get]
func (co lookupController) Get(c *gin.Context) {
	row, ok := co.get(c)
	if !ok {
		return
	}

	data := co.newLookup(c, row)
	c.JSON(http.StatusOK, LookupResponse{Data: &data})
}

// @Summary		Update row
// @Description	Updates a row of the reference table. Only values to be updated need to be specified.
// @Tags			Lookups
// @Accept			json
// @Produce		json
// @Success		200		{object}	LookupResponse
// @Failure		400		{object}	LookupResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	LookupResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lookup	body		LookupEditable	true	"Row"
// @Router			/categorias/saidas/{id} [patch]
// @Router			/categorias/entradas/{id} [patch]
// @Router			/tipos-pagamento/{id} [patch]
// @Router			/lojas/{id} [patch]
func (co lookupController) Update(c *gin.Context) {
	row, ok := co.get(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LookupEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	var update LookupEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	update.apply(&row, updateFields)

	err = co.table.Save(models.DB, &row)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	data := co.newLookup(c, row)
	c.JSON(http.StatusOK, LookupResponse{Data: &data})
}

// @Summary		Deactivate row
// @Description	Deactivates a row of the reference table. Expenses and incomes referencing it are not changed.
// @Tags			Lookups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categorias/saidas/{id} [delete]
// @Router			/categorias/entradas/{id} [delete]
// @Router			/tipos-pagamento/{id} [delete]
// @Router			/lojas/{id} [delete]
func (co lookupController) Delete(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = co.table.Deactivate(models.DB, uri.ID.UUID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// get returns the row with the ID from the URI. If it cannot be retrieved,
// the error response is written and ok is false.
func (co lookupController) get(c *gin.Context) (models.Lookup, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Lookup{}, false
	}

	row, err := co.table.Get(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Lookup{}, false
	}

	return row, true
}
