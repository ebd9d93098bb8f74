package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Tom0603/SoftwareEngineering-Lecture/config"
	_ "github.com/Tom0603/SoftwareEngineering-Lecture/docs"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/api/handler"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/api/middleware"
)

const serviceName = "listings-service"

func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))
	r := gin.New()

	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(corsMiddleware(cfg.Server.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/listings", h.ListListings)
	r.GET("/listings/:uuid", h.GetListing)
	r.POST("/listings", h.CreateListing)
	r.DELETE("/listings/:uuid", middleware.RequireToken(cfg.Auth.JWTSecret), h.DeleteListing)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsMiddleware restricts origins to the configured frontend endpoints.
func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
