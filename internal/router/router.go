// Package router sets up the gin engine and its middlewares.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/finsmart/backend/internal/controllers"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Profiling is only available when explicitly enabled
	if _, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof.Register(r)
	}

	return r, nil
}

// AttachRoutes attaches the API routes to the group that is passed.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.GET("/version", GetVersion)
	group.GET("/healthz", GetHealth)

	co.RegisterRoutes(group.Group("/v1"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/version"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// GetRoot returns the links to the available API versions.
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version: "/version",
			V1:      "/v1",
		},
	})
}

type VersionResponse struct {
	Version string `json:"version" example:"1.2.3"`
}

// GetVersion returns the backend version.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Version: version})
}

// GetHealth returns an empty response with HTTP 204 when the backend is
// able to serve requests.
func GetHealth(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
