package handlers

import (
	"net/http"

	request "diamond_exteriors/internal/adapter/http/dto/request"
	response "diamond_exteriors/internal/adapter/http/dto/response"
	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminContentHandler is the mutation surface behind the admin JWT
// middleware. Deletes are unconditional; emptying a collection is allowed.
type AdminContentHandler struct {
	usecase usecase.IContentUseCase
	rotator *usecase.HeroRotator
}

func NewAdminContentHandler(uc usecase.IContentUseCase, rotator *usecase.HeroRotator) *AdminContentHandler {
	return &AdminContentHandler{usecase: uc, rotator: rotator}
}

func (h *AdminContentHandler) GetQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuotes(h.usecase.Quotes()))
}

func (h *AdminContentHandler) AddHeroImage(c *gin.Context) {
	var payload request.HeroImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.AddHeroImage(payload.Src, payload.Alt)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.rotator.SetCount(len(h.usecase.HeroImages()))
	c.JSON(http.StatusCreated, img)
}

func (h *AdminContentHandler) UpdateHeroImageAlt(c *gin.Context) {
	var payload request.HeroImageAltRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.UpdateHeroImageAlt(c.Param("id"), payload.Alt)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *AdminContentHandler) DeleteHeroImage(c *gin.Context) {
	if err := h.usecase.DeleteHeroImage(c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.rotator.SetCount(len(h.usecase.HeroImages()))
	c.Status(http.StatusNoContent)
}

func (h *AdminContentHandler) AddGalleryImage(c *gin.Context) {
	var payload request.GalleryImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.AddGalleryImage(payload.Src, payload.Alt, entities.ProjectTypeID(payload.Category))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *AdminContentHandler) UpdateGalleryImage(c *gin.Context) {
	var payload request.GalleryImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.UpdateGalleryImage(c.Param("id"), payload.Src, payload.Alt, entities.ProjectTypeID(payload.Category))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *AdminContentHandler) DeleteGalleryImage(c *gin.Context) {
	if err := h.usecase.DeleteGalleryImage(c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminContentHandler) UpdateProjectTypeName(c *gin.Context) {
	var payload request.ProjectTypeNameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	pt, err := h.usecase.UpdateProjectTypeName(c.Param("id"), payload.Name)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pt)
}

func (h *AdminContentHandler) AddMaterial(c *gin.Context) {
	material, err := h.usecase.AddMaterial(c.Param("id"))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *AdminContentHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.UpdateMaterial(c.Param("id"), payload.ToMaterial(c.Param("material_id")))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *AdminContentHandler) RemoveMaterial(c *gin.Context) {
	if err := h.usecase.RemoveMaterial(c.Param("id"), c.Param("material_id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminContentHandler) UpdateSectionTitle(c *gin.Context) {
	var payload request.SectionTitleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	data, err := h.usecase.UpdateSectionTitle(c.Param("section"), payload.Title)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AdminContentHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	data, err := h.usecase.UpdateService(c.Param("section"), payload.Index, payload.ToService())
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AdminContentHandler) CreateCaseStudy(c *gin.Context) {
	c.JSON(http.StatusCreated, h.usecase.CreateCaseStudy())
}

func (h *AdminContentHandler) UpdateCaseStudy(c *gin.Context) {
	var payload request.CaseStudyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	cs, err := h.usecase.UpdateCaseStudy(payload.ToCaseStudy(c.Param("id")))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (h *AdminContentHandler) DeleteCaseStudy(c *gin.Context) {
	if err := h.usecase.DeleteCaseStudy(c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminContentHandler) AddVideo(c *gin.Context) {
	var payload request.VideoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	video, err := h.usecase.AddVideoByURL(payload.URL, payload.Title)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *AdminContentHandler) UpdateVideoTitle(c *gin.Context) {
	var payload request.VideoTitleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	video, err := h.usecase.UpdateVideoTitle(c.Param("id"), payload.Title)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *AdminContentHandler) DeleteVideo(c *gin.Context) {
	if err := h.usecase.DeleteVideo(c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
