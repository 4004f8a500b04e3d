package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/controle-financeiro/backend/internal/billing"
	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type StatementListResponse struct {
	Error  *string             `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data   []billing.Statement `json:"data"`                                                                // The statements, without items
	DueDay int                 `json:"dueDay" example:"10"`                                                 // The due day the statements were computed for
}

type StatementResponse struct {
	Error *string            `json:"error" example:"the month is invalid"` // The error, if any occurred
	Data  *billing.Statement `json:"data"`                                 // The statement with its items
}

// RegisterStatementRoutes registers the routes for credit card statements
// with the RouterGroup that is passed.
func RegisterStatementRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatements)
	r.GET("", GetStatements)
	r.OPTIONS("/current", OptionsStatements)
	r.GET("/current", GetCurrentStatement)
	r.OPTIONS("/:month", OptionsStatements)
	r.GET("/:month", GetStatement)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statements
// @Success		204
// @Router			/faturas [options]
// @Router			/faturas/current [options]
// @Router			/faturas/{month} [options]
func OptionsStatements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statements
// @Description	Returns the credit card statements starting with the oldest statement that is not yet due.
// @Description	The due day is taken from dia_vencimento, the credit card in cartao or the first credit card, in that order.
// @Tags			Statements
// @Produce		json
// @Success		200				{object}	StatementListResponse
// @Failure		500				{object}	StatementListResponse
// @Param			dia_vencimento	query		int		false	"Due day, 1 to 31"
// @Param			cartao			query		string	false	"ID of the credit card"
// @Router			/faturas [get]
func GetStatements(c *gin.Context) {
	statements, dueDay, err := schedule(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatementListResponse{
			Error: &e,
		})
		return
	}

	for i := range statements {
		statements[i].Items = nil
	}

	c.JSON(http.StatusOK, StatementListResponse{
		Data:   statements,
		DueDay: dueDay,
	})
}

// @Summary		Get current statement
// @Description	Returns the statement whose billing period contains today, including its expenses
// @Tags			Statements
// @Produce		json
// @Success		200				{object}	StatementResponse
// @Failure		500				{object}	StatementResponse
// @Param			dia_vencimento	query		int		false	"Due day, 1 to 31"
// @Param			cartao			query		string	false	"ID of the credit card"
// @Router			/faturas/current [get]
func GetCurrentStatement(c *gin.Context) {
	statements, _, err := schedule(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatementResponse{
			Error: &e,
		})
		return
	}

	statement, _ := billing.CurrentStatement(statements)
	c.JSON(http.StatusOK, StatementResponse{Data: &statement})
}

// @Summary		Get statement
// @Description	Returns the statement due in a month, including its expenses
// @Tags			Statements
// @Produce		json
// @Success		200				{object}	StatementResponse
// @Failure		400				{object}	StatementResponse
// @Failure		500				{object}	StatementResponse
// @Param			month			path		string	true	"Month the statement is due in, YYYY-MM"
// @Param			dia_vencimento	query		int		false	"Due day, 1 to 31"
// @Param			cartao			query		string	false	"ID of the credit card"
// @Router			/faturas/{month} [get]
func GetStatement(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err == nil && uri.Month.IsZero() {
		err = types.ErrMonthInvalid
	}

	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StatementResponse{
			Error: &e,
		})
		return
	}

	dueDay, err := resolveDueDay(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatementResponse{
			Error: &e,
		})
		return
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatementResponse{
			Error: &e,
		})
		return
	}

	statement := billing.Summarize(expenses, dueDay, uri.Month)
	statement.Current = statement.Contains(types.DateOf(time.Now()))
	c.JSON(http.StatusOK, StatementResponse{Data: &statement})
}

// schedule returns the statements starting today for the due day of the
// request.
func schedule(c *gin.Context) ([]billing.Statement, int, error) {
	dueDay, err := resolveDueDay(c)
	if err != nil {
		return nil, 0, err
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	return billing.Schedule(expenses, dueDay, types.DateOf(time.Now()), billing.ScheduleLength), dueDay, nil
}

// resolveDueDay returns the due day for the request.
//
// A valid dia_vencimento query parameter takes precedence over the due day
// of the credit card in the cartao query parameter, which takes precedence
// over the first credit card. Invalid values are ignored. Without any of
// them, billing.DefaultDueDay is used.
func resolveDueDay(c *gin.Context) (int, error) {
	if d, err := strconv.Atoi(c.Query("dia_vencimento")); err == nil && billing.ValidDueDay(d) {
		return d, nil
	}

	if id, err := uuid.Parse(c.Query("cartao")); err == nil {
		var cards []models.CreditCard
		err = models.DB.Where("id = ?", id.UUID).Limit(1).Find(&cards).Error
		if err != nil {
			return 0, err
		}

		if len(cards) > 0 {
			return billing.DueDayOr(cards[0].DueDay), nil
		}
	}

	card, ok, err := models.FirstCreditCard(models.DB)
	if err != nil {
		return 0, err
	}

	if ok {
		return billing.DueDayOr(card.DueDay), nil
	}

	return billing.DefaultDueDay, nil
}
