// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/controle-financeiro/backend/internal/httperror"
	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Timeout is the time the database has to answer the ping.
var Timeout = 2 * time.Second

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Pings the SQLite database. Returns 204 if it answers, otherwise an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if err := ping(c.Request.Context()); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("health check failed")
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	c.Status(http.StatusNoContent)
}

func ping(ctx context.Context) error {
	if models.DB == nil {
		return models.ErrGeneral
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}
