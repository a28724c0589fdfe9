package usecase

import (
	"errors"
	"testing"

	"diamond_exteriors/internal/adapter/persistence/repository"
	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/infrastructure/storage"
)

func newContentUseCase(t *testing.T) (*ContentUseCase, *storage.Store) {
	t.Helper()
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewContentUseCase(repository.NewContentRepository(store)), store
}

func TestContentUseCase_HeroImages(t *testing.T) {
	t.Run("add requires src", func(t *testing.T) {
		uc, _ := newContentUseCase(t)
		_, err := uc.AddHeroImage("   ", "alt")
		if !errors.Is(err, ErrImageSrcRequired) {
			t.Fatalf("expected ErrImageSrcRequired, got %v", err)
		}
	})

	t.Run("add appends and survives reload", func(t *testing.T) {
		uc, store := newContentUseCase(t)
		before := len(uc.HeroImages())

		img, err := uc.AddHeroImage("https://example.com/new.jpg", " New porch ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.ID == "" || img.Alt != "New porch" {
			t.Fatalf("unexpected image: %+v", img)
		}
		if got := len(uc.HeroImages()); got != before+1 {
			t.Fatalf("expected %d images, got %d", before+1, got)
		}

		reloaded := NewContentUseCase(repository.NewContentRepository(store))
		imgs := reloaded.HeroImages()
		if imgs[len(imgs)-1].ID != img.ID {
			t.Fatalf("expected appended image after reload")
		}
	})

	t.Run("update alt", func(t *testing.T) {
		uc, _ := newContentUseCase(t)
		img, _ := uc.AddHeroImage("https://example.com/a.jpg", "old")

		updated, err := uc.UpdateHeroImageAlt(img.ID, "new alt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Alt != "new alt" {
			t.Fatalf("expected alt updated, got %q", updated.Alt)
		}

		_, err = uc.UpdateHeroImageAlt("missing", "x")
		if !errors.Is(err, ErrHeroImageNotFound) {
			t.Fatalf("expected ErrHeroImageNotFound, got %v", err)
		}
	})

	t.Run("delete is unconditional down to empty", func(t *testing.T) {
		uc, _ := newContentUseCase(t)
		for _, img := range uc.HeroImages() {
			if err := uc.DeleteHeroImage(img.ID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if got := len(uc.HeroImages()); got != 0 {
			t.Fatalf("expected empty collection, got %d", got)
		}
		if err := uc.DeleteHeroImage("missing"); !errors.Is(err, ErrHeroImageNotFound) {
			t.Fatalf("expected ErrHeroImageNotFound, got %v", err)
		}
	})
}

func TestContentUseCase_Gallery(t *testing.T) {
	t.Run("category filter", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		all := uc.GalleryImages("")
		decks := uc.GalleryImages("deck")
		if len(decks) == 0 || len(decks) >= len(all) {
			t.Fatalf("expected a proper subset for deck, got %d of %d", len(decks), len(all))
		}
		for _, img := range decks {
			if img.Category != entities.ProjectTypeDeck {
				t.Fatalf("unexpected category %q", img.Category)
			}
		}
		if got := uc.GalleryImages("sunroom"); len(got) != 0 {
			t.Fatalf("expected dangling category to match nothing, got %d", len(got))
		}
	})

	t.Run("add update delete", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		img, err := uc.AddGalleryImage("https://example.com/g.jpg", "a deck", entities.ProjectTypeDeck)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := uc.UpdateGalleryImage(img.ID, "https://example.com/g2.jpg", "still a deck", entities.ProjectTypeGutters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Src != "https://example.com/g2.jpg" || updated.Category != entities.ProjectTypeGutters {
			t.Fatalf("unexpected image: %+v", updated)
		}

		if err := uc.DeleteGalleryImage(img.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteGalleryImage(img.ID); !errors.Is(err, ErrGalleryImageNotFound) {
			t.Fatalf("expected ErrGalleryImageNotFound, got %v", err)
		}
	})
}

func TestContentUseCase_ProjectTypes(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		pt, err := uc.UpdateProjectTypeName(entities.ProjectTypeDeck, "Decks, Patios & Pergolas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pt.Name != "Decks, Patios & Pergolas" {
			t.Fatalf("unexpected name %q", pt.Name)
		}
		if pt.Icon == "" {
			t.Fatalf("expected icon hydrated on result")
		}

		_, err = uc.UpdateProjectTypeName("sunroom", "Sunrooms")
		if !errors.Is(err, ErrProjectTypeNotFound) {
			t.Fatalf("expected ErrProjectTypeNotFound, got %v", err)
		}
	})

	t.Run("material lifecycle", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		draft, err := uc.AddMaterial(entities.ProjectTypeDeck)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Name != "New Material" {
			t.Fatalf("expected placeholder draft, got %+v", draft)
		}

		draft.Name = "Ipe Hardwood"
		draft.CostPerSqFt = 70
		updated, err := uc.UpdateMaterial(entities.ProjectTypeDeck, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CostPerSqFt != 70 {
			t.Fatalf("unexpected material: %+v", updated)
		}

		if _, err := uc.UpdateMaterial(entities.ProjectTypePoolFence, draft); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}

		if err := uc.RemoveMaterial(entities.ProjectTypeDeck, draft.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.RemoveMaterial(entities.ProjectTypeDeck, draft.ID); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})
}

func TestContentUseCase_Services(t *testing.T) {
	t.Run("section title", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		data, err := uc.UpdateSectionTitle(SectionOtherExterior, "Exterior Finishes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.OtherExterior.Title != "Exterior Finishes" {
			t.Fatalf("unexpected title %q", data.OtherExterior.Title)
		}

		if _, err := uc.UpdateSectionTitle("roofing", "x"); !errors.Is(err, ErrUnknownSection) {
			t.Fatalf("expected ErrUnknownSection, got %v", err)
		}
	})

	t.Run("service update", func(t *testing.T) {
		uc, _ := newContentUseCase(t)

		svc := entities.Service{Name: "Pergola Screens", Description: "Custom fit", Icon: entities.IconScreenPorch}
		data, err := uc.UpdateService(SectionScreenedPorch, 1, svc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.ScreenedPorch.Services[1].Name != "Pergola Screens" {
			t.Fatalf("unexpected services: %+v", data.ScreenedPorch.Services)
		}

		svc.Icon = "SparkleIcon"
		if _, err := uc.UpdateService(SectionScreenedPorch, 1, svc); !errors.Is(err, ErrUnknownIcon) {
			t.Fatalf("expected ErrUnknownIcon, got %v", err)
		}

		svc.Icon = entities.IconCube
		if _, err := uc.UpdateService(SectionScreenedPorch, 99, svc); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestContentUseCase_CaseStudies(t *testing.T) {
	uc, _ := newContentUseCase(t)

	draft := uc.CreateCaseStudy()
	if draft.Title != "New Project Case Study" {
		t.Fatalf("expected placeholder draft, got %+v", draft)
	}
	if draft.ProjectType != uc.ProjectTypes()[0].ID {
		t.Fatalf("expected first project type, got %q", draft.ProjectType)
	}
	if draft.Images == nil || draft.Videos == nil {
		t.Fatalf("expected empty non-nil lists")
	}

	draft.Title = "Hillside Pool Fence"
	draft.SquareFootage = 320
	draft.Images = append(draft.Images, entities.CaseStudyImage{
		Src: "https://example.com/before.jpg", Alt: "Before", Type: entities.CaseStudyImageBefore,
	})
	updated, err := uc.UpdateCaseStudy(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SquareFootage != 320 || len(updated.Images) != 1 {
		t.Fatalf("unexpected case study: %+v", updated)
	}

	got, err := uc.CaseStudyByID(draft.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Hillside Pool Fence" {
		t.Fatalf("unexpected title %q", got.Title)
	}

	if err := uc.DeleteCaseStudy(draft.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CaseStudyByID(draft.ID); !errors.Is(err, ErrCaseStudyNotFound) {
		t.Fatalf("expected ErrCaseStudyNotFound, got %v", err)
	}
}

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=4_Br5B62-YI", id: "4_Br5B62-YI", ok: true},
		{name: "short link", url: "https://youtu.be/G9B4jfpj-rA", id: "G9B4jfpj-rA", ok: true},
		{name: "embed", url: "https://www.youtube.com/embed/C2J4gLUnQuc", id: "C2J4gLUnQuc", ok: true},
		{name: "shorts", url: "https://www.youtube.com/shorts/rF8f6eYkM8U", id: "rF8f6eYkM8U", ok: true},
		{name: "bare id", url: "kF_TfE7p3jE", id: "kF_TfE7p3jE", ok: true},
		{name: "padded", url: "  https://youtu.be/G9B4jfpj-rA  ", id: "G9B4jfpj-rA", ok: true},
		{name: "garbage", url: "https://example.com/video", ok: false},
		{name: "empty", url: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractYouTubeID(tc.url)
			if ok != tc.ok || id != tc.id {
				t.Fatalf("ExtractYouTubeID(%q) = %q, %v; want %q, %v", tc.url, id, ok, tc.id, tc.ok)
			}
		})
	}
}

func TestContentUseCase_Videos(t *testing.T) {
	uc, _ := newContentUseCase(t)

	t.Run("invalid url", func(t *testing.T) {
		_, err := uc.AddVideoByURL("https://example.com/clip", "Nice")
		if !errors.Is(err, ErrInvalidVideoURL) {
			t.Fatalf("expected ErrInvalidVideoURL, got %v", err)
		}
	})

	t.Run("add by url derives thumbnail", func(t *testing.T) {
		v, err := uc.AddVideoByURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID != "dQw4w9WgXcQ" {
			t.Fatalf("unexpected id %q", v.ID)
		}
		if v.ThumbnailURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
			t.Fatalf("unexpected thumbnail %q", v.ThumbnailURL)
		}
		if v.Title != "New Project Video" {
			t.Fatalf("expected placeholder title, got %q", v.Title)
		}
	})

	t.Run("update title and delete", func(t *testing.T) {
		v, err := uc.UpdateVideoTitle("dQw4w9WgXcQ", "Backyard Reveal")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Title != "Backyard Reveal" {
			t.Fatalf("unexpected title %q", v.Title)
		}

		if err := uc.DeleteVideo("dQw4w9WgXcQ"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteVideo("dQw4w9WgXcQ"); !errors.Is(err, ErrVideoNotFound) {
			t.Fatalf("expected ErrVideoNotFound, got %v", err)
		}
	})
}

func TestContentUseCase_Language(t *testing.T) {
	uc, store := newContentUseCase(t)

	if got := uc.Language(); got != "en" {
		t.Fatalf("expected default en, got %q", got)
	}
	if err := uc.SetLanguage("pt"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if err := uc.SetLanguage("es"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := NewContentUseCase(repository.NewContentRepository(store))
	if got := reloaded.Language(); got != "es" {
		t.Fatalf("expected es after reload, got %q", got)
	}
}
