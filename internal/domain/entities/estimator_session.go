package entities

import "time"

// EstimatorStep enumerates the screens of the estimator wizard, in order.
//
//	ContactInfo -> ProjectTypeSelect -> Dimensions -> MaterialSelect -> Result

type EstimatorStep string

const (
	StepContactInfo       EstimatorStep = "contact_info"
	StepProjectTypeSelect EstimatorStep = "project_type_select"
	StepDimensions        EstimatorStep = "dimensions"
	StepMaterialSelect    EstimatorStep = "material_select"
	StepResult            EstimatorStep = "result"
)

type ContactInfo struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Phone        string `json:"phone"`
}

const (
	DefaultWidth  = "10"
	DefaultLength = "20"
)

// EstimatorSession is the full state of one wizard run. Dimensions stay as
// the strings the user typed; parsing happens only at cost-computation time.
// EstimatedCost is nil until a material is chosen with a positive area --
// "no valid cost" is distinct from a zero-dollar cost.
type EstimatorSession struct {
	ID            string        `json:"id"`
	Step          EstimatorStep `json:"step"`
	Contact       ContactInfo   `json:"contact"`
	ProjectType   *ProjectType  `json:"project_type,omitempty"`
	Width         string        `json:"width"`
	Length        string        `json:"length"`
	Material      *Material     `json:"material,omitempty"`
	EstimatedCost *float64      `json:"estimated_cost,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
