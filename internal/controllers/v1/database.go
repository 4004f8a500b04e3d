package v1

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cleanupConfirmation = "yes-please-delete-everything"

type TableNamesResponse struct {
	Data []string `json:"data" example:"saidas,entradas"` // Names of the tables that can be browsed
}

type TableRowsResponse struct {
	Data       []map[string]any `json:"data"`                                             // Rows of the table
	Error      *string          `json:"error" example:"the column does not exist: 'foo'"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                       // Pagination information
}

type TableCount struct {
	Count int64 `json:"count" example:"42"` // Number of rows
}

type TableCountResponse struct {
	Data  *TableCount `json:"data"`                                                                 // Row count
	Error *string     `json:"error" example:"the table does not exist or cannot be browsed: 'foo'"` // The error, if any occurred
}

type URITable struct {
	Table string `uri:"table" binding:"required"` // Name of the table
}

type URITableID struct {
	URITable
	URIID
}

type TableQueryFilter struct {
	OrderBy     string `form:"orderBy" example:"data"`     // Column to sort by
	Order       string `form:"order" example:"DESC"`       // ASC or DESC
	Search      string `form:"search" example:"amazon"`    // Only rows where searchField contains this string
	SearchField string `form:"searchField" example:"loja"` // Column to search in
	Offset      uint   `form:"offset"`                     // The offset of the first row returned
	Limit       int    `form:"limit"`                      // Maximum number of rows to return
}

// RegisterDatabaseRoutes registers the routes for the database browser and
// cleanup with the RouterGroup that is passed.
func RegisterDatabaseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/clear", OptionsCleanup)
	r.DELETE("/clear", Cleanup)

	r.OPTIONS("/tables", OptionsTables)
	r.GET("/tables", GetTables)
	r.OPTIONS("/tables/:table", OptionsTables)
	r.GET("/tables/:table", GetTableRows)
	r.OPTIONS("/tables/:table/count", OptionsTables)
	r.GET("/tables/:table/count", GetTableCount)
	r.OPTIONS("/tables/:table/:id", OptionsTableRow)
	r.DELETE("/tables/:table/:id", DeleteTableRow)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Database
// @Success		204
// @Router			/database/clear [options]
func OptionsCleanup(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources. The reference tables are filled with their default rows afterwards.
// @Tags			Database
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/database/clear [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != cleanupConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Use a transaction so that we can roll back if errors happen
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range models.TableNames() {
			if err := tx.Where("true").Delete(models.Tables[table]).Error; err != nil {
				return err
			}
		}

		return models.Seed(tx)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Database
// @Success		204
// @Router			/database/tables [options]
// @Router			/database/tables/{table} [options]
// @Router			/database/tables/{table}/count [options]
func OptionsTables(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Database
// @Success		204
// @Router			/database/tables/{table}/{id} [options]
func OptionsTableRow(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		List tables
// @Description	Returns the names of all tables that can be browsed
// @Tags			Database
// @Produce		json
// @Success		200	{object}	TableNamesResponse
// @Router			/database/tables [get]
func GetTables(c *gin.Context) {
	c.JSON(http.StatusOK, TableNamesResponse{Data: models.TableNames()})
}

// @Summary		Get table rows
// @Description	Returns the rows of a table
// @Tags			Database
// @Produce		json
// @Success		200			{object}	TableRowsResponse
// @Failure		400			{object}	TableRowsResponse
// @Failure		500			{object}	TableRowsResponse
// @Param			table		path		string	true	"Name of the table"
// @Param			orderBy		query		string	false	"Column to sort by"
// @Param			order		query		string	false	"ASC or DESC. Defaults to ASC"
// @Param			search		query		string	false	"Only rows where searchField contains this string"
// @Param			searchField	query		string	false	"Column to search in"
// @Param			offset		query		uint	false	"The offset of the first row returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of rows to return. Defaults to 50, -1 returns all."
// @Router			/database/tables/{table} [get]
func GetTableRows(c *gin.Context) {
	var uri URITable
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableRowsResponse{
			Error: &e,
		})
		return
	}

	var filter TableQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TableRowsResponse{
			Error: &s,
		})
		return
	}
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q, err := tableQuery(uri.Table, filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableRowsResponse{
			Error: &e,
		})
		return
	}

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	rows := make([]map[string]any, 0)
	err = q.Offset(int(filter.Offset)).Limit(limit).Find(&rows).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableRowsResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableRowsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TableRowsResponse{
		Data: rows,
		Pagination: &Pagination{
			Count:  len(rows),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Count table rows
// @Description	Returns the number of rows of a table
// @Tags			Database
// @Produce		json
// @Success		200		{object}	TableCountResponse
// @Failure		400		{object}	TableCountResponse
// @Failure		500		{object}	TableCountResponse
// @Param			table	path		string	true	"Name of the table"
// @Router			/database/tables/{table}/count [get]
func GetTableCount(c *gin.Context) {
	var uri URITable
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableCountResponse{
			Error: &e,
		})
		return
	}

	q, err := tableQuery(uri.Table, TableQueryFilter{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableCountResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TableCountResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TableCountResponse{Data: &TableCount{Count: count}})
}

// @Summary		Delete table row
// @Description	Permanently deletes a row of a table. Rows of reference tables are deleted, not deactivated.
// @Tags			Database
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			table	path		string	true	"Name of the table"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/database/tables/{table}/{id} [delete]
func DeleteTableRow(c *gin.Context) {
	var uri URITableID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	model, ok := models.Tables[uri.Table]
	if !ok {
		c.JSON(http.StatusBadRequest, httpError{
			Error: fmt.Errorf("%w: '%s'", models.ErrTableUnknown, uri.Table).Error(),
		})
		return
	}

	// A new instance of the model so that the table's resource name
	// is used in errors
	row := reflect.New(reflect.TypeOf(model).Elem()).Interface()
	err = models.DB.First(row, "id = ?", uri.ID.UUID).Error
	if err == nil {
		err = models.DB.Delete(row).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// tableQuery returns the query for the rows of the table. Columns used
// for ordering and searching are verified to exist in the table.
func tableQuery(table string, filter TableQueryFilter) (*gorm.DB, error) {
	if _, ok := models.Tables[table]; !ok {
		return nil, fmt.Errorf("%w: '%s'", models.ErrTableUnknown, table)
	}

	q := models.DB.Table(table)

	if filter.OrderBy != "" {
		if err := models.CheckColumn(models.DB, table, filter.OrderBy); err != nil {
			return nil, err
		}

		order := strings.ToUpper(filter.Order)
		if order != "" && order != "ASC" && order != "DESC" {
			return nil, errOrderInvalid
		}

		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: filter.OrderBy}, Desc: order == "DESC"})
	}

	if filter.Search != "" {
		if filter.SearchField == "" {
			return nil, errSearchField
		}

		if err := models.CheckColumn(models.DB, table, filter.SearchField); err != nil {
			return nil, err
		}

		q = q.Where(clause.Like{Column: clause.Column{Name: filter.SearchField}, Value: "%" + filter.Search + "%"})
	}

	// Rows and count are read with separate statements
	return q.Session(&gorm.Session{}), nil
}
