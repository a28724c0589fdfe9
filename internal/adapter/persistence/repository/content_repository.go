package repository

import (
	"sync"

	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/usecase/interfaces"
)

// Storage keys, one per collection. These are stable identifiers: renaming
// one orphans previously persisted content.
const (
	keyHeroImages   = "diamond-hero-images"
	keyProjectTypes = "diamond-project-types"
	keyGallery      = "diamond-gallery-images"
	keyServices     = "diamond-services-data"
	keyCaseStudies  = "diamond-case-studies"
	keyVideos       = "diamond-youtube-videos"
	keyQuotes       = "diamond-quotes"
	keyLanguage     = "diamond-lang"
)

// KV is the persisted key-value medium the repository writes through. Load
// reports false when the caller should keep its fallback; Save never fails
// outward.
type KV interface {
	Load(key string, out any) bool
	Save(key string, value any)
}

// ContentRepository is the single source of truth for all editable site
// content. Collections live in memory and are written through to the KV
// store on every mutation; each collection loads independently, so one
// corrupt stored value never blocks the others from hydrating.
//
// Project types are persisted icon-stripped (ProjectTypeRecord) and exposed
// hydrated (ProjectType); icon-bearing values never reach storage.
type ContentRepository struct {
	mu sync.Mutex
	kv KV

	heroImages   []entities.HeroImage
	projectTypes []entities.ProjectTypeRecord
	gallery      []entities.GalleryImage
	services     entities.ServicesData
	caseStudies  []entities.CaseStudy
	videos       []entities.YouTubeVideo
	quotes       []entities.Quote
	language     string
	testimonials []entities.Testimonial
}

var _ interfaces.IContentRepository = (*ContentRepository)(nil)

// NewContentRepository replays stored content, seeding each collection from
// the built-in defaults where nothing usable is stored.
func NewContentRepository(kv KV) *ContentRepository {
	r := &ContentRepository{kv: kv}

	if !kv.Load(keyHeroImages, &r.heroImages) {
		r.heroImages = entities.DefaultHeroImages()
	}
	if !kv.Load(keyProjectTypes, &r.projectTypes) {
		r.projectTypes = entities.DefaultProjectTypes()
	}
	if !kv.Load(keyGallery, &r.gallery) {
		r.gallery = entities.DefaultGalleryImages()
	}
	if !kv.Load(keyServices, &r.services) {
		r.services = entities.DefaultServicesData()
	}
	if !kv.Load(keyCaseStudies, &r.caseStudies) {
		r.caseStudies = entities.DefaultCaseStudies()
	}
	if !kv.Load(keyVideos, &r.videos) {
		r.videos = entities.DefaultVideos()
	}
	if !kv.Load(keyQuotes, &r.quotes) {
		r.quotes = []entities.Quote{}
	}
	if !kv.Load(keyLanguage, &r.language) {
		r.language = "en"
	}

	// Testimonials are static in this version; they are not persisted.
	r.testimonials = entities.DefaultTestimonials()

	return r
}

func (r *ContentRepository) HeroImages() []entities.HeroImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSlice(r.heroImages)
}

// UpdateHeroImages applies fn to the latest committed hero list under the
// repository lock, persists the result, and returns it. All collection
// setters follow this read-modify-write contract so callers can express
// "transform the previous value" without racing interim state.
func (r *ContentRepository) UpdateHeroImages(fn func([]entities.HeroImage) []entities.HeroImage) []entities.HeroImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heroImages = fn(cloneSlice(r.heroImages))
	r.kv.Save(keyHeroImages, r.heroImages)
	return cloneSlice(r.heroImages)
}

// ProjectTypes returns the hydrated project types: persisted records joined
// with icons resolved from the static table (generic icon for unknown ids).
func (r *ContentRepository) ProjectTypes() []entities.ProjectType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return hydrateProjectTypes(r.projectTypes)
}

// UpdateProjectTypes runs fn over the hydrated list, strips icons off the
// result before persisting, and hands back the re-hydrated outcome so
// callers always see resolved icons and storage never does.
func (r *ContentRepository) UpdateProjectTypes(fn func([]entities.ProjectType) []entities.ProjectType) []entities.ProjectType {
	r.mu.Lock()
	defer r.mu.Unlock()
	updated := fn(hydrateProjectTypes(r.projectTypes))
	records := make([]entities.ProjectTypeRecord, 0, len(updated))
	for _, pt := range updated {
		records = append(records, pt.Record())
	}
	r.projectTypes = records
	r.kv.Save(keyProjectTypes, r.projectTypes)
	return hydrateProjectTypes(r.projectTypes)
}

func (r *ContentRepository) GalleryImages() []entities.GalleryImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSlice(r.gallery)
}

func (r *ContentRepository) UpdateGalleryImages(fn func([]entities.GalleryImage) []entities.GalleryImage) []entities.GalleryImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gallery = fn(cloneSlice(r.gallery))
	r.kv.Save(keyGallery, r.gallery)
	return cloneSlice(r.gallery)
}

func (r *ContentRepository) ServicesData() entities.ServicesData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneServices(r.services)
}

func (r *ContentRepository) UpdateServicesData(fn func(entities.ServicesData) entities.ServicesData) entities.ServicesData {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = fn(cloneServices(r.services))
	r.kv.Save(keyServices, r.services)
	return cloneServices(r.services)
}

func (r *ContentRepository) CaseStudies() []entities.CaseStudy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneCaseStudies(r.caseStudies)
}

func (r *ContentRepository) UpdateCaseStudies(fn func([]entities.CaseStudy) []entities.CaseStudy) []entities.CaseStudy {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caseStudies = fn(cloneCaseStudies(r.caseStudies))
	r.kv.Save(keyCaseStudies, r.caseStudies)
	return cloneCaseStudies(r.caseStudies)
}

func (r *ContentRepository) Videos() []entities.YouTubeVideo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSlice(r.videos)
}

func (r *ContentRepository) UpdateVideos(fn func([]entities.YouTubeVideo) []entities.YouTubeVideo) []entities.YouTubeVideo {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = fn(cloneSlice(r.videos))
	r.kv.Save(keyVideos, r.videos)
	return cloneSlice(r.videos)
}

func (r *ContentRepository) Testimonials() []entities.Testimonial {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSlice(r.testimonials)
}

func (r *ContentRepository) Quotes() []entities.Quote {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSlice(r.quotes)
}

// AppendQuote is the only write path into the quotes collection; quotes are
// never edited or deleted afterwards.
func (r *ContentRepository) AppendQuote(q entities.Quote) entities.Quote {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append(r.quotes, q)
	r.kv.Save(keyQuotes, r.quotes)
	return q
}

func (r *ContentRepository) Language() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.language
}

func (r *ContentRepository) SetLanguage(lang string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.language = lang
	r.kv.Save(keyLanguage, r.language)
}

func hydrateProjectTypes(records []entities.ProjectTypeRecord) []entities.ProjectType {
	out := make([]entities.ProjectType, 0, len(records))
	for _, rec := range records {
		rec.Materials = cloneSlice(rec.Materials)
		out = append(out, rec.Hydrate())
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneServices(s entities.ServicesData) entities.ServicesData {
	s.ScreenedPorch.Services = cloneSlice(s.ScreenedPorch.Services)
	s.OtherExterior.Services = cloneSlice(s.OtherExterior.Services)
	return s
}

func cloneCaseStudies(in []entities.CaseStudy) []entities.CaseStudy {
	out := make([]entities.CaseStudy, len(in))
	for i, cs := range in {
		cs.Images = cloneSlice(cs.Images)
		cs.Videos = cloneSlice(cs.Videos)
		out[i] = cs
	}
	return out
}
