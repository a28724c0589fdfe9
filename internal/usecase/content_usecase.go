package usecase

import (
	"errors"
	"regexp"
	"strings"

	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/i18n"
	"diamond_exteriors/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
)

var (
	ErrHeroImageNotFound    = errors.New("hero image not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrProjectTypeNotFound  = errors.New("project type not found")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrCaseStudyNotFound    = errors.New("case study not found")
	ErrVideoNotFound        = errors.New("video not found")
	ErrImageSrcRequired     = errors.New("image src is required")
	ErrNameRequired         = errors.New("name is required")
	ErrUnknownSection       = errors.New("unknown services section")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnknownIcon          = errors.New("unknown icon name")
	ErrInvalidVideoURL      = errors.New("could not extract a video id from url")
	ErrUnknownLanguage      = errors.New("unsupported language")
)

// Services sections are fixed; admins address them by these keys.
const (
	SectionScreenedPorch = "screenedPorch"
	SectionOtherExterior = "otherExterior"
)

// youtubeIDPatterns match the URL shapes admins paste: full watch URLs,
// short youtu.be links, embed and shorts paths, or a bare 11-character id.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|vi=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:embed|shorts|vi?)/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

// IContentUseCase covers the public content reads and the admin mutation
// surface. Writes go through the repository's functional updates; deletes are
// unconditional (deleting the last item of a collection is allowed).
type IContentUseCase interface {
	HeroImages() []entities.HeroImage
	AddHeroImage(src, alt string) (entities.HeroImage, error)
	UpdateHeroImageAlt(id, alt string) (entities.HeroImage, error)
	DeleteHeroImage(id string) error

	GalleryImages(category string) []entities.GalleryImage
	AddGalleryImage(src, alt string, category entities.ProjectTypeID) (entities.GalleryImage, error)
	UpdateGalleryImage(id, src, alt string, category entities.ProjectTypeID) (entities.GalleryImage, error)
	DeleteGalleryImage(id string) error

	ProjectTypes() []entities.ProjectType
	UpdateProjectTypeName(id entities.ProjectTypeID, name string) (entities.ProjectType, error)
	AddMaterial(projectTypeID entities.ProjectTypeID) (entities.Material, error)
	UpdateMaterial(projectTypeID entities.ProjectTypeID, material entities.Material) (entities.Material, error)
	RemoveMaterial(projectTypeID entities.ProjectTypeID, materialID string) error

	ServicesData() entities.ServicesData
	UpdateSectionTitle(section, title string) (entities.ServicesData, error)
	UpdateService(section string, index int, svc entities.Service) (entities.ServicesData, error)

	CaseStudies() []entities.CaseStudy
	CaseStudyByID(id string) (entities.CaseStudy, error)
	CreateCaseStudy() entities.CaseStudy
	UpdateCaseStudy(cs entities.CaseStudy) (entities.CaseStudy, error)
	DeleteCaseStudy(id string) error

	Videos() []entities.YouTubeVideo
	AddVideoByURL(url, title string) (entities.YouTubeVideo, error)
	UpdateVideoTitle(id, title string) (entities.YouTubeVideo, error)
	DeleteVideo(id string) error

	Testimonials() []entities.Testimonial
	Quotes() []entities.Quote

	Language() string
	SetLanguage(lang string) error
}

type ContentUseCase struct {
	repo interfaces.IContentRepository
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(repo interfaces.IContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

func (u *ContentUseCase) HeroImages() []entities.HeroImage {
	return u.repo.HeroImages()
}

func (u *ContentUseCase) AddHeroImage(src, alt string) (entities.HeroImage, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return entities.HeroImage{}, ErrImageSrcRequired
	}

	img := entities.HeroImage{ID: ulid.Make().String(), Src: src, Alt: strings.TrimSpace(alt)}
	u.repo.UpdateHeroImages(func(prev []entities.HeroImage) []entities.HeroImage {
		return append(prev, img)
	})
	return img, nil
}

func (u *ContentUseCase) UpdateHeroImageAlt(id, alt string) (entities.HeroImage, error) {
	var updated *entities.HeroImage
	u.repo.UpdateHeroImages(func(prev []entities.HeroImage) []entities.HeroImage {
		for i := range prev {
			if prev[i].ID == id {
				prev[i].Alt = strings.TrimSpace(alt)
				img := prev[i]
				updated = &img
				break
			}
		}
		return prev
	})
	if updated == nil {
		return entities.HeroImage{}, ErrHeroImageNotFound
	}
	return *updated, nil
}

func (u *ContentUseCase) DeleteHeroImage(id string) error {
	found := false
	u.repo.UpdateHeroImages(func(prev []entities.HeroImage) []entities.HeroImage {
		out := prev[:0]
		for _, img := range prev {
			if img.ID == id {
				found = true
				continue
			}
			out = append(out, img)
		}
		return out
	})
	if !found {
		return ErrHeroImageNotFound
	}
	return nil
}

// GalleryImages returns the gallery, optionally narrowed to one category.
// The filter matches loosely: an unknown category simply matches nothing.
func (u *ContentUseCase) GalleryImages(category string) []entities.GalleryImage {
	all := u.repo.GalleryImages()
	if category == "" {
		return all
	}
	out := make([]entities.GalleryImage, 0, len(all))
	for _, img := range all {
		if string(img.Category) == category {
			out = append(out, img)
		}
	}
	return out
}

func (u *ContentUseCase) AddGalleryImage(src, alt string, category entities.ProjectTypeID) (entities.GalleryImage, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return entities.GalleryImage{}, ErrImageSrcRequired
	}

	img := entities.GalleryImage{
		ID:       ulid.Make().String(),
		Src:      src,
		Alt:      strings.TrimSpace(alt),
		Category: category,
	}
	u.repo.UpdateGalleryImages(func(prev []entities.GalleryImage) []entities.GalleryImage {
		return append(prev, img)
	})
	return img, nil
}

func (u *ContentUseCase) UpdateGalleryImage(id, src, alt string, category entities.ProjectTypeID) (entities.GalleryImage, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return entities.GalleryImage{}, ErrImageSrcRequired
	}

	var updated *entities.GalleryImage
	u.repo.UpdateGalleryImages(func(prev []entities.GalleryImage) []entities.GalleryImage {
		for i := range prev {
			if prev[i].ID == id {
				prev[i].Src = src
				prev[i].Alt = strings.TrimSpace(alt)
				prev[i].Category = category
				img := prev[i]
				updated = &img
				break
			}
		}
		return prev
	})
	if updated == nil {
		return entities.GalleryImage{}, ErrGalleryImageNotFound
	}
	return *updated, nil
}

func (u *ContentUseCase) DeleteGalleryImage(id string) error {
	found := false
	u.repo.UpdateGalleryImages(func(prev []entities.GalleryImage) []entities.GalleryImage {
		out := prev[:0]
		for _, img := range prev {
			if img.ID == id {
				found = true
				continue
			}
			out = append(out, img)
		}
		return out
	})
	if !found {
		return ErrGalleryImageNotFound
	}
	return nil
}

func (u *ContentUseCase) ProjectTypes() []entities.ProjectType {
	return u.repo.ProjectTypes()
}

func (u *ContentUseCase) UpdateProjectTypeName(id entities.ProjectTypeID, name string) (entities.ProjectType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ProjectType{}, ErrNameRequired
	}

	var updated *entities.ProjectType
	u.repo.UpdateProjectTypes(func(prev []entities.ProjectType) []entities.ProjectType {
		for i := range prev {
			if prev[i].ID == id {
				prev[i].Name = name
				pt := prev[i]
				updated = &pt
				break
			}
		}
		return prev
	})
	if updated == nil {
		return entities.ProjectType{}, ErrProjectTypeNotFound
	}
	return *updated, nil
}

// AddMaterial appends a placeholder material the admin then edits in place.
func (u *ContentUseCase) AddMaterial(projectTypeID entities.ProjectTypeID) (entities.Material, error) {
	draft := entities.NewMaterialDraft(ulid.Make().String())

	found := false
	u.repo.UpdateProjectTypes(func(prev []entities.ProjectType) []entities.ProjectType {
		for i := range prev {
			if prev[i].ID == projectTypeID {
				prev[i].Materials = append(prev[i].Materials, draft)
				found = true
				break
			}
		}
		return prev
	})
	if !found {
		return entities.Material{}, ErrProjectTypeNotFound
	}
	return draft, nil
}

func (u *ContentUseCase) UpdateMaterial(projectTypeID entities.ProjectTypeID, material entities.Material) (entities.Material, error) {
	material.Name = strings.TrimSpace(material.Name)
	if material.Name == "" {
		return entities.Material{}, ErrNameRequired
	}

	typeFound := false
	var updated *entities.Material
	u.repo.UpdateProjectTypes(func(prev []entities.ProjectType) []entities.ProjectType {
		for i := range prev {
			if prev[i].ID != projectTypeID {
				continue
			}
			typeFound = true
			for j := range prev[i].Materials {
				if prev[i].Materials[j].ID == material.ID {
					prev[i].Materials[j] = material
					m := material
					updated = &m
					break
				}
			}
			break
		}
		return prev
	})
	if !typeFound {
		return entities.Material{}, ErrProjectTypeNotFound
	}
	if updated == nil {
		return entities.Material{}, ErrMaterialNotFound
	}
	return *updated, nil
}

func (u *ContentUseCase) RemoveMaterial(projectTypeID entities.ProjectTypeID, materialID string) error {
	typeFound := false
	removed := false
	u.repo.UpdateProjectTypes(func(prev []entities.ProjectType) []entities.ProjectType {
		for i := range prev {
			if prev[i].ID != projectTypeID {
				continue
			}
			typeFound = true
			out := prev[i].Materials[:0]
			for _, m := range prev[i].Materials {
				if m.ID == materialID {
					removed = true
					continue
				}
				out = append(out, m)
			}
			prev[i].Materials = out
			break
		}
		return prev
	})
	if !typeFound {
		return ErrProjectTypeNotFound
	}
	if !removed {
		return ErrMaterialNotFound
	}
	return nil
}

func (u *ContentUseCase) ServicesData() entities.ServicesData {
	return u.repo.ServicesData()
}

func (u *ContentUseCase) UpdateSectionTitle(section, title string) (entities.ServicesData, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.ServicesData{}, ErrNameRequired
	}
	if section != SectionScreenedPorch && section != SectionOtherExterior {
		return entities.ServicesData{}, ErrUnknownSection
	}

	return u.repo.UpdateServicesData(func(prev entities.ServicesData) entities.ServicesData {
		switch section {
		case SectionScreenedPorch:
			prev.ScreenedPorch.Title = title
		case SectionOtherExterior:
			prev.OtherExterior.Title = title
		}
		return prev
	}), nil
}

// UpdateService replaces the service at index within the named section. The
// icon must come from the closed icon set.
func (u *ContentUseCase) UpdateService(section string, index int, svc entities.Service) (entities.ServicesData, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return entities.ServicesData{}, ErrNameRequired
	}
	if !entities.KnownIcon(svc.Icon) {
		return entities.ServicesData{}, ErrUnknownIcon
	}
	if section != SectionScreenedPorch && section != SectionOtherExterior {
		return entities.ServicesData{}, ErrUnknownSection
	}

	outOfRange := false
	data := u.repo.UpdateServicesData(func(prev entities.ServicesData) entities.ServicesData {
		target := &prev.ScreenedPorch
		if section == SectionOtherExterior {
			target = &prev.OtherExterior
		}
		if index < 0 || index >= len(target.Services) {
			outOfRange = true
			return prev
		}
		target.Services[index] = svc
		return prev
	})
	if outOfRange {
		return entities.ServicesData{}, ErrIndexOutOfRange
	}
	return data, nil
}

func (u *ContentUseCase) CaseStudies() []entities.CaseStudy {
	return u.repo.CaseStudies()
}

func (u *ContentUseCase) CaseStudyByID(id string) (entities.CaseStudy, error) {
	for _, cs := range u.repo.CaseStudies() {
		if cs.ID == id {
			return cs, nil
		}
	}
	return entities.CaseStudy{}, ErrCaseStudyNotFound
}

// CreateCaseStudy inserts a placeholder draft seeded with the first
// configured project type; the admin edits it in place afterwards.
func (u *ContentUseCase) CreateCaseStudy() entities.CaseStudy {
	var firstType entities.ProjectTypeID
	if types := u.repo.ProjectTypes(); len(types) > 0 {
		firstType = types[0].ID
	}

	draft := entities.NewCaseStudyDraft(ulid.Make().String(), firstType)
	u.repo.UpdateCaseStudies(func(prev []entities.CaseStudy) []entities.CaseStudy {
		return append(prev, draft)
	})
	return draft
}

// UpdateCaseStudy replaces the stored case study wholesale, keyed by cs.ID.
// Nested image and video lists ride along in the same write.
func (u *ContentUseCase) UpdateCaseStudy(cs entities.CaseStudy) (entities.CaseStudy, error) {
	cs.Title = strings.TrimSpace(cs.Title)
	if cs.Title == "" {
		return entities.CaseStudy{}, ErrNameRequired
	}
	if cs.Images == nil {
		cs.Images = []entities.CaseStudyImage{}
	}
	if cs.Videos == nil {
		cs.Videos = []entities.CaseStudyVideo{}
	}

	found := false
	u.repo.UpdateCaseStudies(func(prev []entities.CaseStudy) []entities.CaseStudy {
		for i := range prev {
			if prev[i].ID == cs.ID {
				prev[i] = cs
				found = true
				break
			}
		}
		return prev
	})
	if !found {
		return entities.CaseStudy{}, ErrCaseStudyNotFound
	}
	return cs, nil
}

func (u *ContentUseCase) DeleteCaseStudy(id string) error {
	found := false
	u.repo.UpdateCaseStudies(func(prev []entities.CaseStudy) []entities.CaseStudy {
		out := prev[:0]
		for _, cs := range prev {
			if cs.ID == id {
				found = true
				continue
			}
			out = append(out, cs)
		}
		return out
	})
	if !found {
		return ErrCaseStudyNotFound
	}
	return nil
}

func (u *ContentUseCase) Videos() []entities.YouTubeVideo {
	return u.repo.Videos()
}

// AddVideoByURL extracts the 11-character video id from whatever URL shape
// the admin pasted and derives the thumbnail from it.
func (u *ContentUseCase) AddVideoByURL(url, title string) (entities.YouTubeVideo, error) {
	id, ok := ExtractYouTubeID(url)
	if !ok {
		return entities.YouTubeVideo{}, ErrInvalidVideoURL
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New Project Video"
	}

	video := entities.YouTubeVideo{
		ID:           id,
		Title:        title,
		ThumbnailURL: "https://img.youtube.com/vi/" + id + "/hqdefault.jpg",
	}
	u.repo.UpdateVideos(func(prev []entities.YouTubeVideo) []entities.YouTubeVideo {
		return append(prev, video)
	})
	return video, nil
}

func (u *ContentUseCase) UpdateVideoTitle(id, title string) (entities.YouTubeVideo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.YouTubeVideo{}, ErrNameRequired
	}

	var updated *entities.YouTubeVideo
	u.repo.UpdateVideos(func(prev []entities.YouTubeVideo) []entities.YouTubeVideo {
		for i := range prev {
			if prev[i].ID == id {
				prev[i].Title = title
				v := prev[i]
				updated = &v
				break
			}
		}
		return prev
	})
	if updated == nil {
		return entities.YouTubeVideo{}, ErrVideoNotFound
	}
	return *updated, nil
}

func (u *ContentUseCase) DeleteVideo(id string) error {
	found := false
	u.repo.UpdateVideos(func(prev []entities.YouTubeVideo) []entities.YouTubeVideo {
		out := prev[:0]
		for _, v := range prev {
			if v.ID == id {
				found = true
				continue
			}
			out = append(out, v)
		}
		return out
	})
	if !found {
		return ErrVideoNotFound
	}
	return nil
}

func (u *ContentUseCase) Testimonials() []entities.Testimonial {
	return u.repo.Testimonials()
}

func (u *ContentUseCase) Quotes() []entities.Quote {
	return u.repo.Quotes()
}

func (u *ContentUseCase) Language() string {
	return u.repo.Language()
}

func (u *ContentUseCase) SetLanguage(lang string) error {
	lang = strings.TrimSpace(lang)
	if !i18n.Known(lang) {
		return ErrUnknownLanguage
	}
	u.repo.SetLanguage(lang)
	return nil
}

// ExtractYouTubeID pulls the 11-character video id out of a pasted URL or a
// bare id. Returns false when nothing matches.
func ExtractYouTubeID(url string) (string, bool) {
	url = strings.TrimSpace(url)
	for _, re := range youtubeIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
