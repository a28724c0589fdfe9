package request

import "diamond_exteriors/internal/domain/entities"

// ContactRequest is the step-1 submission. Validation (trim, required
// fields) lives in the usecase so API and future transports agree.
type ContactRequest struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Phone        string `json:"phone"`
}

func (r ContactRequest) ToContactInfo() entities.ContactInfo {
	return entities.ContactInfo{
		Name:         r.Name,
		City:         r.City,
		Neighborhood: r.Neighborhood,
		Phone:        r.Phone,
	}
}

type ProjectTypeSelectRequest struct {
	ProjectTypeID string `json:"project_type_id" binding:"required"`
}

type DimensionsRequest struct {
	Width  string `json:"width"`
	Length string `json:"length"`
}

type MaterialSelectRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
}
