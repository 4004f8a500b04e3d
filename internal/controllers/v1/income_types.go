package v1

import (
	"fmt"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type IncomeEditable struct {
	Category    string          `json:"categoria" example:"Salário"`
	Description string          `json:"descricao" example:"Salário março"`
	Value       decimal.Decimal `json:"valor" example:"5000"`
	Date        types.Date      `json:"data" example:"2024-03-05"`
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Category:    editable.Category,
		Description: editable.Description,
		Value:       editable.Value,
		Date:        editable.Date,
	}
}

// apply sets the fields of the income that are contained in fields.
func (editable IncomeEditable) apply(i *models.Income, fields []string) {
	if slices.Contains(fields, "Category") {
		i.Category = editable.Category
	}

	if slices.Contains(fields, "Description") {
		i.Description = editable.Description
	}

	if slices.Contains(fields, "Value") {
		i.Value = editable.Value
	}

	if slices.Contains(fields, "Date") {
		i.Date = editable.Date
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/tables/entradas/d430d7c3-d14c-4712-9336-ee56965a6673"` // The income itself
}

// Income is the API representation of an income.
type Income struct {
	models.Income
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		Income: model,
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/tables/entradas/%s", url, model.ID),
		},
	}
}

type IncomeResponse struct {
	Error *string `json:"error" example:"there is no income matching your query"` // The error, if any occurred
	Data  *Income `json:"data"`                                                   // Data for the income
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                            // List of incomes
	Error      *string     `json:"error" example:"the month is invalid: '2024-13'"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                      // Pagination information
}

type IncomeQueryFilter struct {
	Month     types.Month `form:"month" filterField:"false" example:"2024-03"`        // Incomes in this month
	FromDate  types.Date  `form:"fromDate" filterField:"false" example:"2024-03-01"`  // Incomes at and after this date
	UntilDate types.Date  `form:"untilDate" filterField:"false" example:"2024-03-31"` // Incomes before and at this date
	Category  string      `form:"categoria" example:"Salário"`                        // Exact category
	Search    string      `form:"search" filterField:"false" example:"março"`         // Description contains this string
	Offset    uint        `form:"offset" filterField:"false"`                         // The offset of the first income returned
	Limit     int         `form:"limit" filterField:"false"`                          // Maximum number of incomes to return
}
