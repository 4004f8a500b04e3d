package v1

import (
	"fmt"

	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type CreditCardEditable struct {
	Name   string `json:"nome_cartao" example:"Nubank"`                       // Name of the card
	DueDay int    `json:"dia_vencimento" binding:"gte=0,lte=31" example:"10"` // Day of the month the statement is due
}

func (editable CreditCardEditable) model() models.CreditCard {
	return models.CreditCard{
		Name:   editable.Name,
		DueDay: editable.DueDay,
	}
}

func (editable CreditCardEditable) apply(card *models.CreditCard, fields []string) {
	if slices.Contains(fields, "Name") {
		card.Name = editable.Name
	}

	if slices.Contains(fields, "DueDay") {
		card.DueDay = editable.DueDay
	}
}

type CreditCardLinks struct {
	Self       string `json:"self" example:"https://example.com/api/cartao/d430d7c3-d14c-4712-9336-ee56965a6673"`               // The credit card itself
	Statements string `json:"statements" example:"https://example.com/api/faturas?cartao=d430d7c3-d14c-4712-9336-ee56965a6673"` // Statements of the credit card
}

// CreditCard is the API representation of a credit card.
type CreditCard struct {
	models.CreditCard
	Links CreditCardLinks `json:"links"`
}

func newCreditCard(c *gin.Context, model models.CreditCard) CreditCard {
	url := c.GetString(string(models.DBContextURL))

	return CreditCard{
		CreditCard: model,
		Links: CreditCardLinks{
			Self:       fmt.Sprintf("%s/cartao/%s", url, model.ID),
			Statements: fmt.Sprintf("%s/faturas?cartao=%s", url, model.ID),
		},
	}
}

type CreditCardResponse struct {
	Error *string     `json:"error" example:"dia_vencimento must be between 1 and 31"` // The error, if any occurred
	Data  *CreditCard `json:"data"`                                                    // Data for the credit card
}

type CreditCardListResponse struct {
	Error *string      `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []CreditCard `json:"data"`                                                                // List of credit cards
}
