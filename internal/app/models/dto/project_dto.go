package dto

// ProjectInput holds project form fields. Nil pointers mean "not sent";
// list fields arrive as JSON-encoded strings.
type ProjectInput struct {
	Name          *string
	Description   *string
	Participants  *string
	Technologies  *string
	TechnologyIDs *string
	StartDate     *string
	EndDate       *string
	ProjectLink   *string
	RepoLink      *string
	Future        *bool
}

// TechnologyRef is a technology as listed on a project
type TechnologyRef struct {
	ID   int64   `json:"id" example:"3"`
	Name string  `json:"name" example:"Go"`
	Icon *string `json:"icon" example:"go-3f2a.jpg"`
}

// ProjectResponse is the project view
type ProjectResponse struct {
	ID                  int64           `json:"id" example:"1"`
	Name                string          `json:"name" example:"Łazik marsjański"`
	Description         string          `json:"description"`
	Participants        []string        `json:"participants"`
	Technologies        []string        `json:"technologies"`
	StartDate           *string         `json:"startDate" example:"2024-01-15"`
	EndDate             *string         `json:"endDate" example:"2024-06-30"`
	ProjectLink         *string         `json:"projectLink"`
	RepoLink            *string         `json:"repoLink"`
	Future              bool            `json:"future"`
	Visible             bool            `json:"visible"`
	HasFile             bool            `json:"hasFile"`
	FileURL             *string         `json:"fileUrl,omitempty"`
	TechnologyRelations []TechnologyRef `json:"technologyRelations,omitempty"`
}

// ProjectVisibilityResponse reports the new visibility of a project
type ProjectVisibilityResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// TechnologyRequest creates or edits a technology
type TechnologyRequest struct {
	Name        *string `json:"name" example:"Go"`
	Description *string `json:"description" example:"Język programowania"`
}

// ProjectRef is a project as listed on a technology
type ProjectRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// TechnologyResponse is the technology view
type TechnologyResponse struct {
	ID           int64        `json:"id" example:"3"`
	Name         string       `json:"name" example:"Go"`
	Description  *string      `json:"description"`
	Icon         *string      `json:"icon"`
	ProjectCount *int         `json:"projectCount,omitempty" example:"2"`
	Projects     []ProjectRef `json:"projects,omitempty"`
}
