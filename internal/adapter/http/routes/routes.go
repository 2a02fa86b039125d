package routes

import (
	"net/http"

	_ "cotizador_taller/docs"
	"cotizador_taller/internal/adapter/http/handlers"
	"cotizador_taller/internal/adapter/http/middleware"
	"cotizador_taller/internal/infrastructure/metrics"
	"cotizador_taller/internal/infrastructure/realtime"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and infrastructure the HTTP surface serves.
type Dependencies struct {
	Vehicles usecase.IVehicleUseCase
	Parts    usecase.IPartUseCase
	Services usecase.IServiceCatalogUseCase
	Recipes  usecase.IRecipeUseCase
	Quotes   usecase.IQuoteUseCase
	Issues   usecase.IIssueUseCase
	Auth     usecase.IAuthUseCase

	Hub      *realtime.Hub
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Metrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)
	partHandler := handlers.NewPartHandler(deps.Parts, deps.Vehicles)
	serviceHandler := handlers.NewServiceCatalogHandler(deps.Services)
	recipeHandler := handlers.NewRecipeHandler(deps.Recipes)
	quoteHandler := handlers.NewQuoteHandler(deps.Quotes)
	issueHandler := handlers.NewIssueHandler(deps.Issues)
	authHandler := handlers.NewAuthHandler(deps.Auth)
	wsHandler := handlers.NewWSHandler(deps.Hub, deps.Quotes)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, vehicleHandler, quoteHandler, wsHandler)
	v1.POST(PathAuth+"/login", authHandler.Login)
	v1.POST(PathIssues, issueHandler.ReportIssue)

	admin := v1.Group(PathAdmin, middleware.AdminAuth(deps.Auth))
	addCatalogRoutes(admin, vehicleHandler, partHandler, serviceHandler)
	addRecipeRoutes(admin, recipeHandler)
	addIssueRoutes(admin, issueHandler)

	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
