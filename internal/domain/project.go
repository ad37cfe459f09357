package domain

import "time"

// Project is a portfolio project entry.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       *string       `json:"image"`
	LiveURL     *string       `json:"live_url"`
	CodeURL     *string       `json:"code_url"`
	Tags        []string      `json:"tags"`
	OwnerID     *string       `json:"owner_id"`
	Owner       *OwnerSummary `json:"owner,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
