package entities

// HeroImage is one slide of the public hero carousel. Display order equals
// insertion order; ids are timestamp-ordered (ULID) so ordering survives a
// reload.
type HeroImage struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// GalleryImage lives independently of project types; Category is a loose
// reference, a dangling category simply matches no filter.
type GalleryImage struct {
	ID       string        `json:"id"`
	Src      string        `json:"src"`
	Alt      string        `json:"alt"`
	Category ProjectTypeID `json:"category"`
}

// Service is one entry within a ServiceSection. Icon is a string key into
// the fixed icon table, chosen by the admin.
type Service struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        IconName `json:"icon"`
}

type ServiceSection struct {
	Title    string    `json:"title"`
	Services []Service `json:"services"`
}

// ServicesData holds the two fixed sections of the services page. Sections
// are not addable or removable; only titles and service lists change.
type ServicesData struct {
	ScreenedPorch ServiceSection `json:"screenedPorch"`
	OtherExterior ServiceSection `json:"otherExterior"`
}

type CaseStudyImageType string

const (
	CaseStudyImageBefore CaseStudyImageType = "before"
	CaseStudyImageAfter  CaseStudyImageType = "after"
)

type CaseStudyImage struct {
	Src  string             `json:"src"`
	Alt  string             `json:"alt"`
	Type CaseStudyImageType `json:"type"`
}

type CaseStudyVideo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CaseStudy is a featured-project write-up. Created with placeholder
// defaults, edited in place, hard-deleted by id.
type CaseStudy struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Location      string           `json:"location"`
	Description   string           `json:"description"`
	SquareFootage float64          `json:"square_footage"`
	ProjectType   ProjectTypeID    `json:"project_type"`
	MainImage     string           `json:"main_image"`
	Images        []CaseStudyImage `json:"images"`
	Videos        []CaseStudyVideo `json:"videos"`
}

// YouTubeVideo is an externally hosted video referenced by its 11-character
// id. The curated list is authoritative; the optional feed variant is not
// persisted.
type YouTubeVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Testimonial entries are static in this version and are not editable; they
// ride along on the public read surface for consistency.
type Testimonial struct {
	ID        int    `json:"id"`
	Quote     string `json:"quote"`
	Author    string `json:"author"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatar_url"`
}
