package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Options returns a handler that answers OPTIONS requests with the
// allowed methods in the "allow" header.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet               = Options(http.MethodGet)
	OptionsPost              = Options(http.MethodPost)
	OptionsGetPost           = Options(http.MethodGet, http.MethodPost)
	OptionsDelete            = Options(http.MethodDelete)
	OptionsGetPatchDelete    = Options(http.MethodGet, http.MethodPatch, http.MethodDelete)
	OptionsGetPatchPutDelete = Options(http.MethodGet, http.MethodPatch, http.MethodPut, http.MethodDelete)
)
