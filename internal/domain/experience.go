package domain

import "time"

// Locale identifies the language an experience entry is written in.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// Experience is a work-history entry. Only Title is required.
type Experience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     *string   `json:"company"`
	From        *string   `json:"from"`
	To          *string   `json:"to"`
	Description *string   `json:"description"`
	Locale      *Locale   `json:"locale"`
	OwnerID     *string   `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
