package request

import "diamond_exteriors/internal/domain/entities"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type HeroImageRequest struct {
	Src string `json:"src" binding:"required"`
	Alt string `json:"alt"`
}

type HeroImageAltRequest struct {
	Alt string `json:"alt"`
}

type GalleryImageRequest struct {
	Src      string `json:"src" binding:"required"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}

type ProjectTypeNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type MaterialRequest struct {
	Name        string  `json:"name" binding:"required"`
	CostPerSqFt float64 `json:"cost_per_sq_ft"`
	ImageURL    string  `json:"image_url"`
}

func (r MaterialRequest) ToMaterial(id string) entities.Material {
	return entities.Material{
		ID:          id,
		Name:        r.Name,
		CostPerSqFt: r.CostPerSqFt,
		ImageURL:    r.ImageURL,
	}
}

type SectionTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type ServiceUpdateRequest struct {
	Index       int    `json:"index"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"required"`
}

func (r ServiceUpdateRequest) ToService() entities.Service {
	return entities.Service{
		Name:        r.Name,
		Description: r.Description,
		Icon:        entities.IconName(r.Icon),
	}
}

type CaseStudyImageRequest struct {
	Src  string `json:"src" binding:"required"`
	Alt  string `json:"alt"`
	Type string `json:"type" binding:"required"`
}

type CaseStudyVideoRequest struct {
	ID    string `json:"id" binding:"required"`
	Title string `json:"title"`
}

// CaseStudyRequest replaces a stored case study wholesale; the id comes from
// the URL, never the body.
type CaseStudyRequest struct {
	Title         string                  `json:"title" binding:"required"`
	Location      string                  `json:"location"`
	Description   string                  `json:"description"`
	SquareFootage float64                 `json:"square_footage"`
	ProjectType   string                  `json:"project_type"`
	MainImage     string                  `json:"main_image"`
	Images        []CaseStudyImageRequest `json:"images"`
	Videos        []CaseStudyVideoRequest `json:"videos"`
}

func (r CaseStudyRequest) ToCaseStudy(id string) entities.CaseStudy {
	images := make([]entities.CaseStudyImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, entities.CaseStudyImage{
			Src:  img.Src,
			Alt:  img.Alt,
			Type: entities.CaseStudyImageType(img.Type),
		})
	}
	videos := make([]entities.CaseStudyVideo, 0, len(r.Videos))
	for _, v := range r.Videos {
		videos = append(videos, entities.CaseStudyVideo{ID: v.ID, Title: v.Title})
	}
	return entities.CaseStudy{
		ID:            id,
		Title:         r.Title,
		Location:      r.Location,
		Description:   r.Description,
		SquareFootage: r.SquareFootage,
		ProjectType:   entities.ProjectTypeID(r.ProjectType),
		MainImage:     r.MainImage,
		Images:        images,
		Videos:        videos,
	}
}

type VideoRequest struct {
	URL   string `json:"url" binding:"required"`
	Title string `json:"title"`
}

type VideoTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}
