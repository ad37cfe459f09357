package dto

// CreateBlogRequest payload for new posts.
type CreateBlogRequest struct {
	Title     string  `json:"title" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Thumbnail *string `json:"thumbnail"`
	Category  string  `json:"category" validate:"required"`
}

// UpdateBlogRequest payload for edits; absent fields are left unchanged.
type UpdateBlogRequest struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Content   *string `json:"content"`
	Thumbnail *string `json:"thumbnail"`
	Category  *string `json:"category"`
}
