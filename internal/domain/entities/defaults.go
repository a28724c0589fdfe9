package entities

// Built-in default dataset. Every collection seeds from these on first run
// (or whenever its stored value cannot be read back).

func DefaultProjectTypes() []ProjectTypeRecord {
	return []ProjectTypeRecord{
		{
			ID:   ProjectTypeDeck,
			Name: "Decks & Patios",
			Materials: []Material{
				{ID: "wood", Name: "Pressure-Treated Wood", CostPerSqFt: 25, ImageURL: "https://picsum.photos/seed/wood/400/300"},
				{ID: "composite", Name: "Composite", CostPerSqFt: 45, ImageURL: "https://picsum.photos/seed/composite/400/300"},
				{ID: "pvc", Name: "PVC Decking", CostPerSqFt: 55, ImageURL: "https://picsum.photos/seed/pvc/400/300"},
			},
		},
		{
			ID:   ProjectTypePoolFence,
			Name: "Pool Fences",
			Materials: []Material{
				{ID: "mesh", Name: "Removable Mesh", CostPerSqFt: 18, ImageURL: "https://picsum.photos/seed/mesh/400/300"},
				{ID: "glass", Name: "Glass Panel", CostPerSqFt: 150, ImageURL: "https://picsum.photos/seed/glass/400/300"},
				{ID: "aluminum", Name: "Aluminum", CostPerSqFt: 60, ImageURL: "https://picsum.photos/seed/aluminum/400/300"},
			},
		},
		{
			ID:   ProjectTypeGutters,
			Name: "Gutter Guards",
			Materials: []Material{
				{ID: "screen", Name: "Metal Screen", CostPerSqFt: 8, ImageURL: "https://picsum.photos/seed/screen/400/300"},
				{ID: "micro_mesh", Name: "Micro-Mesh", CostPerSqFt: 20, ImageURL: "https://picsum.photos/seed/micromesh/400/300"},
				{ID: "foam", Name: "Foam Insert", CostPerSqFt: 12, ImageURL: "https://picsum.photos/seed/foam/400/300"},
			},
		},
	}
}

func DefaultHeroImages() []HeroImage {
	return []HeroImage{
		{ID: "hero-1", Src: "https://picsum.photos/seed/hero-bg/1920/1080", Alt: "Beautiful modern deck"},
		{ID: "hero-2", Src: "https://picsum.photos/seed/hero-porch/1920/1080", Alt: "Screened porch at sunset"},
		{ID: "hero-3", Src: "https://picsum.photos/seed/hero-pool/1920/1080", Alt: "Glass pool fence around a backyard pool"},
	}
}

func DefaultGalleryImages() []GalleryImage {
	return []GalleryImage{
		{ID: "gallery-1", Src: "https://picsum.photos/seed/deck1/800/600", Alt: "Modern composite deck", Category: ProjectTypeDeck},
		{ID: "gallery-2", Src: "https://picsum.photos/seed/pool1/800/600", Alt: "Sleek glass pool fence", Category: ProjectTypePoolFence},
		{ID: "gallery-3", Src: "https://picsum.photos/seed/gutter1/800/600", Alt: "Gutter guard installation", Category: ProjectTypeGutters},
		{ID: "gallery-4", Src: "https://picsum.photos/seed/deck2/800/600", Alt: "Spacious wooden patio", Category: ProjectTypeDeck},
		{ID: "gallery-5", Src: "https://picsum.photos/seed/pool2/800/600", Alt: "Secure mesh pool fence", Category: ProjectTypePoolFence},
		{ID: "gallery-6", Src: "https://picsum.photos/seed/deck3/800/600", Alt: "Deck with integrated lighting", Category: ProjectTypeDeck},
		{ID: "gallery-7", Src: "https://picsum.photos/seed/gutter2/800/600", Alt: "Close-up of micro-mesh gutter", Category: ProjectTypeGutters},
		{ID: "gallery-8", Src: "https://picsum.photos/seed/pool3/800/600", Alt: "Elegant aluminum pool fencing", Category: ProjectTypePoolFence},
	}
}

func DefaultServicesData() ServicesData {
	return ServicesData{
		ScreenedPorch: ServiceSection{
			Title: "Screened Porch & Gutter Services",
			Services: []Service{
				{Name: "Motorized & Regular Porches", Description: "Custom screen solutions to enjoy the outdoors bug-free, perfectly matching your home and lifestyle.", Icon: IconScreenPorch},
				{Name: "Screen Repair & Replacement", Description: "From minor tear repairs to full screen replacement with high-quality mesh to renew your porch.", Icon: IconWrenchScrewdriver},
				{Name: "Specialty Pet Screens", Description: "Durable, scratch-resistant mesh designed to keep your pets safe, secure, and contained.", Icon: IconShieldCheck},
				{Name: "Gutter Guard Installation", Description: "Durable, clog-resistant protectors that fit seamlessly onto your existing gutters to prevent debris.", Icon: IconBeaker},
			},
		},
		OtherExterior: ServiceSection{
			Title: "Siding, Fences & Finishes",
			Services: []Service{
				{Name: "Vinyl Siding Replacement", Description: "Replace cracked, faded, or damaged siding to restore your home's beauty and protection.", Icon: IconSiding},
				{Name: "Shutter Services", Description: "Professional installation, repair, and replacement to enhance your home's curb appeal.", Icon: IconShutter},
				{Name: "Fencing & Privacy Panels", Description: "Sturdy fences for privacy and security, including property dividers and decorative panels.", Icon: IconFence},
				{Name: "Exterior Fixture Mounting", Description: "Secure mounting for lights and outlets with professional box and J-block replacement.", Icon: IconCube},
			},
		},
	}
}

func DefaultCaseStudies() []CaseStudy {
	return []CaseStudy{
		{
			ID:            "cs-default-1",
			Title:         "Lakeside Composite Deck",
			Location:      "Austin, TX",
			Description:   "A 480 sq ft composite deck with integrated lighting and a motorized screen enclosure, completed in three weeks.",
			SquareFootage: 480,
			ProjectType:   ProjectTypeDeck,
			MainImage:     "https://picsum.photos/seed/cs-deck/800/600",
			Images: []CaseStudyImage{
				{Src: "https://picsum.photos/seed/cs-deck-before/800/600", Alt: "Original worn wooden deck", Type: CaseStudyImageBefore},
				{Src: "https://picsum.photos/seed/cs-deck-after/800/600", Alt: "Finished composite deck", Type: CaseStudyImageAfter},
			},
			Videos: []CaseStudyVideo{
				{ID: "4_Br5B62-YI", Title: "Deck walkthrough"},
			},
		},
	}
}

func DefaultVideos() []YouTubeVideo {
	return []YouTubeVideo{
		{ID: "4_Br5B62-YI", Title: "Modern Motorized Screen Enclosure", ThumbnailURL: "https://img.youtube.com/vi/4_Br5B62-YI/hqdefault.jpg"},
		{ID: "G9B4jfpj-rA", Title: "Seamless Motorized Screen Installation", ThumbnailURL: "https://img.youtube.com/vi/G9B4jfpj-rA/hqdefault.jpg"},
		{ID: "C2J4gLUnQuc", Title: "Full Screen Enclosure Replacement", ThumbnailURL: "https://img.youtube.com/vi/C2J4gLUnQuc/hqdefault.jpg"},
		{ID: "rF8f6eYkM8U", Title: "Gutter Guard Installation Showcase", ThumbnailURL: "https://img.youtube.com/vi/rF8f6eYkM8U/hqdefault.jpg"},
		{ID: "kF_TfE7p3jE", Title: "Durable Pet Screen for Porches", ThumbnailURL: "https://img.youtube.com/vi/kF_TfE7p3jE/hqdefault.jpg"},
		{ID: "8vXwE7p23-c", Title: "Elegant Motorized Screen Project", ThumbnailURL: "https://img.youtube.com/vi/8vXwE7p23-c/hqdefault.jpg"},
	}
}

func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:        1,
			Quote:     "The instant quote tool was incredibly accurate and helped us budget perfectly. The final deck exceeded our expectations. Truly professional service from start to finish!",
			Author:    "John & Sarah Miller",
			Location:  "Austin, TX",
			AvatarURL: "https://picsum.photos/seed/avatar1/100/100",
		},
		{
			ID:        2,
			Quote:     "DIAMOND installed our pool fence just in time for summer. The peace of mind is priceless. Their team was efficient, clean, and very respectful of our property.",
			Author:    "David Chen",
			Location:  "Miami, FL",
			AvatarURL: "https://picsum.photos/seed/avatar2/100/100",
		},
		{
			ID:        3,
			Quote:     "No more climbing ladders to clean gutters! The guards they installed work like a charm. The online estimator was a fantastic first step. Highly recommended.",
			Author:    "Maria Garcia",
			Location:  "Raleigh, NC",
			AvatarURL: "https://picsum.photos/seed/avatar3/100/100",
		},
	}
}

// NewCaseStudyDraft is the placeholder a fresh admin-created case study
// starts from; firstProjectType should be the first configured type's id.
func NewCaseStudyDraft(id string, firstProjectType ProjectTypeID) CaseStudy {
	if firstProjectType == "" {
		firstProjectType = ProjectTypeDeck
	}
	return CaseStudy{
		ID:          id,
		Title:       "New Project Case Study",
		Location:    "City, State",
		Description: "Detailed description of the work performed, challenges overcome, and the final outcome for the client.",
		ProjectType: firstProjectType,
		MainImage:   "https://picsum.photos/seed/new-project/800/600",
		Images:      []CaseStudyImage{},
		Videos:      []CaseStudyVideo{},
	}
}

// NewMaterialDraft is the placeholder a fresh admin-created material starts from.
func NewMaterialDraft(id string) Material {
	return Material{
		ID:       id,
		Name:     "New Material",
		ImageURL: "https://picsum.photos/seed/new/400/300",
	}
}
