package http

import (
	"github.com/gin-gonic/gin"

	"github.com/bitplain/ethdash/internal/handler"
)

func loadRoutes(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")
	{
		api.GET("/transactions", h.TransactionHandler.GetTransactions)
		api.POST("/sync", h.TransactionHandler.Sync)
	}

	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// dashboard
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/app.js", "./web/app.js")
	r.StaticFile("/styles.css", "./web/styles.css")
}
