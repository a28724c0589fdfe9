package response

import (
	"time"

	"diamond_exteriors/internal/domain/entities"
)

type SessionResponse struct {
	ID            string                `json:"id"`
	Step          string                `json:"step"`
	Contact       entities.ContactInfo  `json:"contact"`
	ProjectType   *entities.ProjectType `json:"project_type,omitempty"`
	Width         string                `json:"width"`
	Length        string                `json:"length"`
	Material      *entities.Material    `json:"material,omitempty"`
	EstimatedCost *float64              `json:"estimated_cost,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromSession(s entities.EstimatorSession) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		Step:          string(s.Step),
		Contact:       s.Contact,
		ProjectType:   s.ProjectType,
		Width:         s.Width,
		Length:        s.Length,
		Material:      s.Material,
		EstimatedCost: s.EstimatedCost,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
