package entities

import "time"

// Quote is the immutable snapshot record of one completed estimator run.
// Quotes are append-only: nothing edits or deletes them after creation. The
// only insert-time logic is the duplicate-submission suppression window
// applied by the estimator before appending.
type Quote struct {
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

// QuoteSummary is the human-readable projection of the current estimator
// snapshot, suitable for printing or a pre-filled messaging handoff.
type QuoteSummary struct {
	Name            string `json:"name"`
	City            string `json:"city"`
	Neighborhood    string `json:"neighborhood"`
	Phone           string `json:"phone"`
	ProjectTypeName string `json:"project_type_name"`
	Dimensions      string `json:"dimensions"`
	MaterialName    string `json:"material_name"`
	FormattedCost   string `json:"formatted_cost"`
	Message         string `json:"message"`
}
