package routes

import (
	"diamond_exteriors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathContent = "/content"

func addContentRoutes(rg *gin.RouterGroup, h *handlers.ContentHandler) {
	content := rg.Group(PathContent)
	{
		content.GET("/hero", h.GetHero)
		content.GET("/project-types", h.GetProjectTypes)
		content.GET("/gallery", h.GetGallery)
		content.GET("/services", h.GetServices)
		content.GET("/case-studies", h.GetCaseStudies)
		content.GET("/case-studies/:id", h.GetCaseStudy)
		content.GET("/testimonials", h.GetTestimonials)
		content.GET("/videos", h.GetVideos)
		content.GET("/videos/feed", h.GetVideoFeed)
		content.GET("/language", h.GetLanguage)
		content.PUT("/language", h.SetLanguage)
	}
}
