package response

import (
	"time"

	"diamond_exteriors/internal/domain/entities"
)

// HeroContentResponse pairs the hero images with the server-side rotation
// position so clients render the same slide.
type HeroContentResponse struct {
	Images        []entities.HeroImage `json:"images"`
	RotationIndex int                  `json:"rotation_index"`
}

type LanguageResponse struct {
	Language string `json:"language"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type QuoteResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	Neighborhood    string    `json:"neighborhood"`
	Phone           string    `json:"phone"`
	ProjectTypeID   string    `json:"project_type_id"`
	ProjectTypeName string    `json:"project_type_name"`
	Width           string    `json:"width"`
	Length          string    `json:"length"`
	MaterialID      string    `json:"material_id"`
	MaterialName    string    `json:"material_name"`
	EstimatedCost   float64   `json:"estimated_cost"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		CreatedAt:       q.CreatedAt,
		Name:            q.Name,
		City:            q.City,
		Neighborhood:    q.Neighborhood,
		Phone:           q.Phone,
		ProjectTypeID:   q.ProjectTypeID,
		ProjectTypeName: q.ProjectTypeName,
		Width:           q.Width,
		Length:          q.Length,
		MaterialID:      q.MaterialID,
		MaterialName:    q.MaterialName,
		EstimatedCost:   q.EstimatedCost,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
