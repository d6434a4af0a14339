package routes

import (
	"github.com/gin-gonic/gin"

	"call-summary/internal/api/v1/handlers"
)

// RegisterRoutes registers the summary routes on the /api group. Both the
// bare and trailing-slash paths are served without a redirect.
func RegisterRoutes(router *gin.RouterGroup, container *HandlerContainer) {
	summaries := container.Summary
	router.POST("/generate-summary", summaries.Generate)
	router.POST("/generate-summary/", summaries.Generate)
}

// HandlerContainer holds all handlers served under /api
type HandlerContainer struct {
	Summary *handlers.SummaryHandler
}
