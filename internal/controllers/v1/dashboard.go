package v1

import (
	"net/http"
	"time"

	"github.com/controle-financeiro/backend/internal/billing"
	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RecentDays is the window for the recent activity of the dashboard.
var RecentDays = billing.DefaultRecentDays

type DashboardResponse struct {
	Error *string       `json:"error" example:"the month is invalid"` // The error, if any occurred
	Data  *billing.View `json:"data"`                                 // The dashboard data
}

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns totals per month, category, payment type and store as well as the recent activity
// @Tags			Dashboard
// @Produce		json
// @Success		200				{object}	DashboardResponse
// @Failure		400				{object}	DashboardResponse
// @Failure		500				{object}	DashboardResponse
// @Param			from			query		string	false	"First month, YYYY-MM"
// @Param			until			query		string	false	"Last month, YYYY-MM"
// @Param			categoria		query		string	false	"Only expenses of this category"
// @Param			tipo_pagamento	query		string	false	"Only expenses with this payment type"
// @Router			/dashboard [get]
func GetDashboard(c *gin.Context) {
	var filter billing.Filter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}
	filter.RecentDays = RecentDays

	var expenses []models.Expense
	err := models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	var incomes []models.Income
	err = models.DB.Find(&incomes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	view := billing.Dashboard(expenses, incomes, filter, time.Now())
	c.JSON(http.StatusOK, DashboardResponse{Data: &view})
}
