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

var errInvalidContentPayload = pkg.NewDomainErrorSimple("INVALID_CONTENT_INPUT", "Invalid content payload", http.StatusBadRequest)

// ContentHandler serves the public read surface. Everything here is
// unauthenticated; mutations live on AdminContentHandler.
type ContentHandler struct {
	usecase usecase.IContentUseCase
	rotator *usecase.HeroRotator
	feed    *usecase.VideoFeedUseCase
}

func NewContentHandler(uc usecase.IContentUseCase, rotator *usecase.HeroRotator, feed *usecase.VideoFeedUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc, rotator: rotator, feed: feed}
}

// GetHero returns the carousel images plus the current rotation position.
// The rotator tracks the collection size from here, so a changed set gets a
// fresh cycle.
func (h *ContentHandler) GetHero(c *gin.Context) {
	images := h.usecase.HeroImages()
	h.rotator.SetCount(len(images))
	c.JSON(http.StatusOK, response.HeroContentResponse{
		Images:        images,
		RotationIndex: h.rotator.Index(),
	})
}

func (h *ContentHandler) GetProjectTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ProjectTypes())
}

func (h *ContentHandler) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GalleryImages(c.Query("category")))
}

func (h *ContentHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ServicesData())
}

func (h *ContentHandler) GetCaseStudies(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.CaseStudies())
}

func (h *ContentHandler) GetCaseStudy(c *gin.Context) {
	cs, err := h.usecase.CaseStudyByID(c.Param("id"))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Testimonials())
}

func (h *ContentHandler) GetVideos(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Videos())
}

// GetVideoFeed reports the optional external feed; the curated list stays
// the authoritative fallback for clients.
func (h *ContentHandler) GetVideoFeed(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Feed())
}

func (h *ContentHandler) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, response.LanguageResponse{Language: h.usecase.Language()})
}

func (h *ContentHandler) SetLanguage(c *gin.Context) {
	var payload request.LanguageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetLanguage(payload.Language); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LanguageResponse{Language: h.usecase.Language()})
}

func mapContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHeroImageNotFound),
		errors.Is(err, usecase.ErrGalleryImageNotFound),
		errors.Is(err, usecase.ErrProjectTypeNotFound),
		errors.Is(err, usecase.ErrMaterialNotFound),
		errors.Is(err, usecase.ErrCaseStudyNotFound),
		errors.Is(err, usecase.ErrVideoNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageSrcRequired),
		errors.Is(err, usecase.ErrNameRequired),
		errors.Is(err, usecase.ErrUnknownSection),
		errors.Is(err, usecase.ErrIndexOutOfRange),
		errors.Is(err, usecase.ErrUnknownIcon),
		errors.Is(err, usecase.ErrInvalidVideoURL),
		errors.Is(err, usecase.ErrUnknownLanguage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
