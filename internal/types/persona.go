package types

// Persona is a named resume identity with one generated document per role
type Persona struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	PreferredName    string   `json:"preferred_name"`
	Roles            []string `json:"roles"`
	DefaultRole      *string  `json:"default_role"`
	HasCareerProfile bool     `json:"has_career_profile"`
}
