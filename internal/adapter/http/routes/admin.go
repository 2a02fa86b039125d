package routes

import (
	"cotizador_taller/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addCatalogRoutes(rg *gin.RouterGroup, vehicles *handlers.VehicleHandler, parts *handlers.PartHandler, services *handlers.ServiceCatalogHandler) {
	brands := rg.Group("/brands")
	{
		brands.POST("", vehicles.CreateBrand)
		brands.PUT("/:brand_id", vehicles.UpdateBrand)
	}

	lines := rg.Group(PathLines)
	{
		lines.POST("", vehicles.CreateLine)
		lines.PUT("/:line_id", vehicles.UpdateLine)
		// Cascades to the line's parts.
		lines.DELETE("/:line_id", vehicles.DeleteLine)
	}

	p := rg.Group("/parts")
	{
		p.GET("", parts.ListParts)
		p.GET("/export", parts.ExportParts)
		p.POST("", parts.CreatePart)
		p.PUT("/:part_id", parts.UpdatePart)
		p.DELETE("/:part_id", parts.DeletePart)
	}

	refs := rg.Group("/part-references")
	{
		refs.GET("", parts.ListByReference)
		refs.PUT("/:reference", parts.UpdateByReference)
	}

	labor := rg.Group("/labor")
	{
		labor.GET("", services.ListLabor)
		labor.POST("", services.CreateLabor)
		labor.PUT("/:labor_id", services.UpdateLabor)
		labor.DELETE("/:labor_id", services.DeleteLabor)
	}

	supplies := rg.Group("/supplies")
	{
		supplies.GET("", services.ListSupplies)
		supplies.PUT("/:supply_id", services.UpdateSupply)
	}

	crossSell := rg.Group("/cross-sell")
	{
		crossSell.POST("", services.CreateCrossSell)
		crossSell.PUT("/:item_id", services.UpdateCrossSell)
		crossSell.DELETE("/:item_id", services.DeleteCrossSell)
	}

	rg.GET("/labor-rate", services.GetLaborRate)
	rg.PUT("/labor-rate", services.SetLaborRate)
}

func addRecipeRoutes(rg *gin.RouterGroup, recipes *handlers.RecipeHandler) {
	rg.GET("/recipes/:line_id/:milestone_id", recipes.GetRecipe)
	rg.PUT("/recipes/:line_id/:milestone_id", recipes.SaveRecipe)
}

func addIssueRoutes(rg *gin.RouterGroup, issues *handlers.IssueHandler) {
	g := rg.Group(PathIssues)
	{
		g.GET("", issues.ListIssues)
		g.PATCH("/:issue_id/resolve", issues.ResolveIssue)
		g.DELETE("/:issue_id", issues.DeleteIssue)
	}
}
