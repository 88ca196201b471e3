package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homeprice/internal/ratelimit"
)

// registerRoutes sets up the form page and all API endpoints
func (app *App) registerRoutes() {
	limited := ratelimit.Middleware(app.limiter)

	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Form page
	app.router.GET("/", app.handleIndex)
	app.router.POST("/estimate", limited, app.handleEstimateForm)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/locations", app.handleGetLocations)
	api.POST("/estimate", limited, app.handleEstimate)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
