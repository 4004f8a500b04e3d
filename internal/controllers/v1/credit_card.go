package v1

import (
	"net/http"

	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCreditCardRoutes registers the routes for credit cards with
// the RouterGroup that is passed.
func RegisterCreditCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditCards)
		r.GET("", GetCreditCards)
		r.POST("", CreateCreditCard)
	}

	// The first credit card
	{
		r.OPTIONS("/first", OptionsCreditCardFirst)
		r.GET("/first", GetCreditCardFirst)
	}

	// Credit card with ID
	{
		r.OPTIONS("/:id", OptionsCreditCardDetail)
		r.GET("/:id", GetCreditCard)
		r.PATCH("/:id", UpdateCreditCard)
		r.PUT("/:id", UpdateCreditCard)
		r.DELETE("/:id", DeleteCreditCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit cards
// @Success		204
// @Router			/cartao [options]
func OptionsCreditCards(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit cards
// @Success		204
// @Router			/cartao/first [options]
func OptionsCreditCardFirst(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/cartao/{id} [options]
func OptionsCreditCardDetail(c *gin.Context) {
	_, ok := getCreditCard(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Get credit cards
// @Description	Returns all credit cards in creation order
// @Tags			Credit cards
// @Produce		json
// @Success		200	{object}	CreditCardListResponse
// @Failure		500	{object}	CreditCardListResponse
// @Router			/cartao [get]
func GetCreditCards(c *gin.Context) {
	var cards []models.CreditCard
	err := models.DB.Order("created_at, id").Find(&cards).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CreditCard, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCreditCard(c, card))
	}

	c.JSON(http.StatusOK, CreditCardListResponse{Data: data})
}

// @Summary		Get first credit card
// @Description	Returns the credit card that was created first. Its due day is used for statements when no card is specified.
// @Tags			Credit cards
// @Produce		json
// @Success		200	{object}	CreditCardResponse
// @Failure		404	{object}	CreditCardResponse
// @Failure		500	{object}	CreditCardResponse
// @Router			/cartao/first [get]
func GetCreditCardFirst(c *gin.Context) {
	card, ok, err := models.FirstCreditCard(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	if !ok {
		e := errNoCreditCard.Error()
		c.JSON(http.StatusNotFound, CreditCardResponse{
			Error: &e,
		})
		return
	}

	data := newCreditCard(c, card)
	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Get credit card
// @Description	Returns a specific credit card
// @Tags			Credit cards
// @Produce		json
// @Success		200	{object}	CreditCardResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/cartao/{id} [get]
func GetCreditCard(c *gin.Context) {
	card, ok := getCreditCard(c)
	if !ok {
		return
	}

	data := newCreditCard(c, card)
	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Create credit card
// @Description	Creates a credit card
// @Tags			Credit cards
// @Accept			json
// @Produce		json
// @Success		201		{object}	CreditCardResponse
// @Failure		400		{object}	CreditCardResponse
// @Failure		500		{object}	CreditCardResponse
// @Param			card	body		CreditCardEditable	true	"Credit card"
// @Router			/cartao [post]
func CreateCreditCard(c *gin.Context) {
	var editable CreditCardEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	card := editable.model()
	err = models.DB.Create(&card).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	data := newCreditCard(c, card)
	c.JSON(http.StatusCreated, CreditCardResponse{Data: &data})
}

// @Summary		Update credit card
// @Description	Updates an existing credit card. Only values to be updated need to be specified.
// @Tags			Credit cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditCardResponse
// @Failure		400		{object}	CreditCardResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	CreditCardResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CreditCardEditable	true	"Credit card"
// @Router			/cartao/{id} [patch]
// @Router			/cartao/{id} [put]
func UpdateCreditCard(c *gin.Context) {
	card, ok := getCreditCard(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CreditCardEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	var update CreditCardEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	update.apply(&card, updateFields)

	err = models.DB.Save(&card).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	data := newCreditCard(c, card)
	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Delete credit card
// @Description	Deletes a credit card
// @Tags			Credit cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/cartao/{id} [delete]
func DeleteCreditCard(c *gin.Context) {
	card, ok := getCreditCard(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&card).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// getCreditCard returns the credit card with the ID from the URI. If it
// cannot be retrieved, the error response is written and ok is false.
func getCreditCard(c *gin.Context) (card models.CreditCard, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = models.DB.First(&card, uri.ID).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.CreditCard{}, false
	}

	return card, true
}
