package routes

import (
	"diamond_exteriors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimatorSessions = "/estimator/sessions"

func addEstimatorRoutes(rg *gin.RouterGroup, h *handlers.EstimatorHandler) {
	sessions := rg.Group(PathEstimatorSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/contact", h.SubmitContact)
		sessions.POST("/:id/project-type", h.SelectProjectType)
		sessions.POST("/:id/dimensions", h.SetDimensions)
		sessions.POST("/:id/next", h.AdvanceToMaterials)
		sessions.POST("/:id/back", h.StepBack)
		sessions.POST("/:id/material", h.SelectMaterial)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.GET("/:id/summary", h.GetSummary)
	}
}
