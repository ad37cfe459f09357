package dto

// CreateProjectRequest payload for new projects.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       *string  `json:"image"`
	LiveURL     *string  `json:"liveUrl"`
	CodeURL     *string  `json:"codeUrl"`
	Tags        []string `json:"tags" validate:"required,min=1"`
}

// UpdateProjectRequest payload for edits; absent fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	LiveURL     *string  `json:"liveUrl"`
	CodeURL     *string  `json:"codeUrl"`
	Tags        []string `json:"tags"`
}
