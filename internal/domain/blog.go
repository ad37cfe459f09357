package domain

import "time"

// Blog is a published article, addressable by its unique slug.
type Blog struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Content   string        `json:"content"`
	Thumbnail *string       `json:"thumbnail"`
	Category  string        `json:"category"`
	AuthorID  *string       `json:"author_id"`
	Author    *OwnerSummary `json:"author,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// OwnerSummary is the public projection of the account owning a resource.
type OwnerSummary struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}
