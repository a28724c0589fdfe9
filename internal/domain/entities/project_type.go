package entities

// ProjectTypeID identifies a project category offered in the estimator.
//
// The three built-in ids map to dedicated icons; admin-created types keep
// whatever id the admin chose and fall back to the generic icon.

type ProjectTypeID = string

const (
	ProjectTypeDeck      ProjectTypeID = "deck"
	ProjectTypePoolFence ProjectTypeID = "pool_fence"
	ProjectTypeGutters   ProjectTypeID = "gutters"
)

// Material is one purchasable option within a project type. Ownership is by
// list membership: a material belongs to exactly one ProjectType.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CostPerSqFt float64 `json:"cost_per_sq_ft"`
	ImageURL    string  `json:"image_url"`
}

// ProjectTypeRecord is the persisted shape of a project type. Icons are
// behavior, not content, so they never reach storage; only the id does.
type ProjectTypeRecord struct {
	ID        ProjectTypeID `json:"id"`
	Name      string        `json:"name"`
	Materials []Material    `json:"materials"`
}

// ProjectType is the hydrated shape exposed to callers: the persisted record
// joined with the icon resolved from the static id->icon table.
type ProjectType struct {
	ID        ProjectTypeID `json:"id"`
	Name      string        `json:"name"`
	Materials []Material    `json:"materials"`
	Icon      IconName      `json:"icon"`
}

// Record strips the icon back off for persistence.
func (p ProjectType) Record() ProjectTypeRecord {
	return ProjectTypeRecord{ID: p.ID, Name: p.Name, Materials: p.Materials}
}

// Hydrate joins the icon back in via the static lookup table.
func (r ProjectTypeRecord) Hydrate() ProjectType {
	return ProjectType{
		ID:        r.ID,
		Name:      r.Name,
		Materials: r.Materials,
		Icon:      IconForProjectType(r.ID),
	}
}
