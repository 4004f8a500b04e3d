package router

import (
	"errors"
	"net/http"
	"net/url"

	docs "github.com/controle-financeiro/backend/api"
	"github.com/controle-financeiro/backend/internal/controllers/healthz"
	v1 "github.com/controle-financeiro/backend/internal/controllers/v1"
	"github.com/controle-financeiro/backend/internal/httperror"
	"github.com/controle-financeiro/backend/internal/httputil"
	"github.com/controle-financeiro/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Settings are the parts of the configuration that change
// the router's behaviour.
type Settings struct {
	CORSOrigins []string
	EnablePprof bool
}

// Config sets up the router with all middlewares.
//
// The returned function unregisters the Prometheus metrics and must be
// called when the router is not used anymore.
func Config(url *url.URL, settings Settings) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.New(errMethodNotAllowed))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperror.New(errNoRoute))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(settings.CORSOrigins) > 0 {
		log.Debug().Strs("allowOrigins", settings.CORSOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     settings.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if settings.EnablePprof {
		pprof.Register(r, "/debug/pprof")
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", v1.Version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Controle Financeiro"
	docs.SwaggerInfo.Version = v1.Version
	docs.SwaggerInfo.Description = "The backend for Controle Financeiro, tracking expenses, incomes and credit card statements."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))

	v1.RegisterExpenseRoutes(group.Group("/tables/saidas"))
	v1.RegisterIncomeRoutes(group.Group("/tables/entradas"))
	v1.RegisterCreditCardRoutes(group.Group("/cartao"))
	v1.RegisterStatementRoutes(group.Group("/faturas"))
	v1.RegisterDashboardRoutes(group.Group("/dashboard"))
	v1.RegisterImportRoutes(group.Group("/import"))
	v1.RegisterExportRoutes(group.Group("/export"))
	v1.RegisterDatabaseRoutes(group.Group("/database"))

	v1.RegisterLookupRoutes(group.Group("/categorias/saidas"), models.TableExpenseCategories)
	v1.RegisterLookupRoutes(group.Group("/categorias/entradas"), models.TableIncomeCategories)
	v1.RegisterLookupRoutes(group.Group("/tipos-pagamento"), models.TablePaymentTypes)
	v1.RegisterLookupRoutes(group.Group("/lojas"), models.TableStores)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs              string `json:"docs" example:"https://example.com/api/docs/index.html"`                   // Swagger API documentation
	Version           string `json:"version" example:"https://example.com/api/version"`                        // Endpoint returning the version of the backend
	Healthz           string `json:"healthz" example:"https://example.com/api/healthz"`                        // Health check
	Metrics           string `json:"metrics" example:"https://example.com/api/metrics"`                        // Prometheus metrics
	Expenses          string `json:"saidas" example:"https://example.com/api/tables/saidas"`                   // Expenses
	Incomes           string `json:"entradas" example:"https://example.com/api/tables/entradas"`               // Incomes
	CreditCards       string `json:"cartao" example:"https://example.com/api/cartao"`                          // Credit cards
	Statements        string `json:"faturas" example:"https://example.com/api/faturas"`                        // Credit card statements
	Dashboard         string `json:"dashboard" example:"https://example.com/api/dashboard"`                    // Dashboard
	ExpenseCategories string `json:"categoriasSaidas" example:"https://example.com/api/categorias/saidas"`     // Expense categories
	IncomeCategories  string `json:"categoriasEntradas" example:"https://example.com/api/categorias/entradas"` // Income categories
	PaymentTypes      string `json:"tiposPagamento" example:"https://example.com/api/tipos-pagamento"`         // Payment types
	Stores            string `json:"lojas" example:"https://example.com/api/lojas"`                            // Stores
	Import            string `json:"import" example:"https://example.com/api/import"`                          // Excel import
	Export            string `json:"export" example:"https://example.com/api/export"`                          // Export of all data
	Database          string `json:"database" example:"https://example.com/api/database/tables"`               // Database browser
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:              url + "/docs/index.html",
			Version:           url + "/version",
			Healthz:           url + "/healthz",
			Metrics:           url + "/metrics",
			Expenses:          url + "/tables/saidas",
			Incomes:           url + "/tables/entradas",
			CreditCards:       url + "/cartao",
			Statements:        url + "/faturas",
			Dashboard:         url + "/dashboard",
			ExpenseCategories: url + "/categorias/saidas",
			IncomeCategories:  url + "/categorias/entradas",
			PaymentTypes:      url + "/tipos-pagamento",
			Stores:            url + "/lojas",
			Import:            url + "/import",
			Export:            url + "/export",
			Database:          url + "/database/tables",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: v1.Version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

var (
	errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
	errNoRoute          = errors.New("there is no endpoint at this path")
)
