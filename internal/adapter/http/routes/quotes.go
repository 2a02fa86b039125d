package routes

import (
	"cotizador_taller/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth   = "/auth"
	PathQuotes = "/quotes"
	PathLines  = "/lines"
	PathIssues = "/issues"
)

func addQuoteRoutes(rg *gin.RouterGroup, vehicles *handlers.VehicleHandler, quotes *handlers.QuoteHandler, ws *handlers.WSHandler) {
	rg.GET("/brands", vehicles.ListBrands)
	rg.GET(PathLines, vehicles.ListLines)
	rg.GET(PathLines+"/:line_id/milestones", quotes.AvailableMilestones)
	rg.GET("/milestones", quotes.ListMilestones)
	rg.GET("/cross-sell", quotes.ListCrossSell)

	q := rg.Group(PathQuotes)
	{
		q.POST("", quotes.CreateQuote)
		q.POST("/pdf", quotes.QuotePDF)
		q.POST("/suggestions", quotes.Suggestions)
		q.GET("/ws", ws.QuoteSocket)
	}
}
