package handlers

import (
	"errors"
	"net/http"

	request "diamond_exteriors/internal/adapter/http/dto/request"
	response "diamond_exteriors/internal/adapter/http/dto/response"
	"diamond_exteriors/internal/usecase"
	"diamond_exteriors/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatorPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATOR_INPUT", "Invalid estimator payload", http.StatusBadRequest)

// EstimatorHandler exposes the quote wizard over HTTP. Every mutation
// returns the full session state so the client renders without a follow-up
// read.
type EstimatorHandler struct {
	usecase usecase.IEstimatorUseCase
}

func NewEstimatorHandler(uc usecase.IEstimatorUseCase) *EstimatorHandler {
	return &EstimatorHandler{usecase: uc}
}

func (h *EstimatorHandler) CreateSession(c *gin.Context) {
	session := h.usecase.CreateSession()
	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *EstimatorHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Param("id"))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatorPayload.HTTPStatus, errInvalidEstimatorPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SubmitContact(c.Param("id"), payload.ToContactInfo())
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) SelectProjectType(c *gin.Context) {
	var payload request.ProjectTypeSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatorPayload.HTTPStatus, errInvalidEstimatorPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SelectProjectType(c.Param("id"), payload.ProjectTypeID)
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) SetDimensions(c *gin.Context) {
	var payload request.DimensionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatorPayload.HTTPStatus, errInvalidEstimatorPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetDimensions(c.Param("id"), payload.Width, payload.Length)
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) AdvanceToMaterials(c *gin.Context) {
	session, err := h.usecase.AdvanceToMaterials(c.Param("id"))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) StepBack(c *gin.Context) {
	session, err := h.usecase.StepBack(c.Param("id"))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) SelectMaterial(c *gin.Context) {
	var payload request.MaterialSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatorPayload.HTTPStatus, errInvalidEstimatorPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SelectMaterial(c.Param("id"), payload.MaterialID)
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) ResetSession(c *gin.Context) {
	session, err := h.usecase.ResetSession(c.Param("id"))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *EstimatorHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Param("id"), c.Query("lang"))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mapEstimatorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Estimator session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactRequired):
		return pkg.NewDomainErrorSimple("CONTACT_REQUIRED", "Name, city and phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProjectType):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROJECT_TYPE", "Unknown project type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownMaterial):
		return pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL", "Material does not belong to the selected project type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed at the current step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
