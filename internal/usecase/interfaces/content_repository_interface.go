package interfaces

import "diamond_exteriors/internal/domain/entities"

// IContentRepository abstracts the persisted content collections for the
// admin mutation layer and the public read surface.
//
// Every UpdateX takes a transform over the previous committed value and
// returns the new one; the repository guarantees the transform runs against
// the latest state even if the backing store changes underneath.

type IContentRepository interface {
	HeroImages() []entities.HeroImage
	UpdateHeroImages(fn func([]entities.HeroImage) []entities.HeroImage) []entities.HeroImage

	ProjectTypes() []entities.ProjectType
	UpdateProjectTypes(fn func([]entities.ProjectType) []entities.ProjectType) []entities.ProjectType

	GalleryImages() []entities.GalleryImage
	UpdateGalleryImages(fn func([]entities.GalleryImage) []entities.GalleryImage) []entities.GalleryImage

	ServicesData() entities.ServicesData
	UpdateServicesData(fn func(entities.ServicesData) entities.ServicesData) entities.ServicesData

	CaseStudies() []entities.CaseStudy
	UpdateCaseStudies(fn func([]entities.CaseStudy) []entities.CaseStudy) []entities.CaseStudy

	Videos() []entities.YouTubeVideo
	UpdateVideos(fn func([]entities.YouTubeVideo) []entities.YouTubeVideo) []entities.YouTubeVideo

	Testimonials() []entities.Testimonial

	Quotes() []entities.Quote
	AppendQuote(q entities.Quote) entities.Quote

	Language() string
	SetLanguage(lang string)
}

// IEstimatorRepository is the narrow slice of the content repository the
// estimator engine is allowed to touch: read project types, read quotes for
// the duplicate-suppression window, append new quotes. Nothing else.
type IEstimatorRepository interface {
	ProjectTypes() []entities.ProjectType
	Quotes() []entities.Quote
	AppendQuote(q entities.Quote) entities.Quote
}
