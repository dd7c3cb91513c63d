package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hmandava/career-compass/pkg/logger"
)

// RouterConfig carries the handlers and logger the router wires up.
type RouterConfig struct {
	PlanHandler *PlanHandler
	Logger      *logger.Logger
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(cfg.Logger))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5000",
			"http://127.0.0.1:5000",
		},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/generate", cfg.PlanHandler.Generate)
	router.POST("/download_pdf", cfg.PlanHandler.DownloadPDF)

	return router
}
