package routes

import (
	"diamond_exteriors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, auth *handlers.AuthHandler, admin *handlers.AdminContentHandler, guard gin.HandlerFunc) {
	// Login sits outside the guard; everything else requires a Bearer token.
	rg.POST(PathAdmin+"/login", auth.Login)

	g := rg.Group(PathAdmin, guard)
	{
		g.GET("/quotes", admin.GetQuotes)

		g.POST("/hero", admin.AddHeroImage)
		g.PATCH("/hero/:id", admin.UpdateHeroImageAlt)
		g.DELETE("/hero/:id", admin.DeleteHeroImage)

		g.POST("/gallery", admin.AddGalleryImage)
		g.PUT("/gallery/:id", admin.UpdateGalleryImage)
		g.DELETE("/gallery/:id", admin.DeleteGalleryImage)

		g.PATCH("/project-types/:id", admin.UpdateProjectTypeName)
		g.POST("/project-types/:id/materials", admin.AddMaterial)
		g.PUT("/project-types/:id/materials/:material_id", admin.UpdateMaterial)
		g.DELETE("/project-types/:id/materials/:material_id", admin.RemoveMaterial)

		g.PATCH("/services/:section/title", admin.UpdateSectionTitle)
		g.PUT("/services/:section/items", admin.UpdateService)

		g.POST("/case-studies", admin.CreateCaseStudy)
		g.PUT("/case-studies/:id", admin.UpdateCaseStudy)
		g.DELETE("/case-studies/:id", admin.DeleteCaseStudy)

		g.POST("/videos", admin.AddVideo)
		g.PATCH("/videos/:id", admin.UpdateVideoTitle)
		g.DELETE("/videos/:id", admin.DeleteVideo)
	}
}
