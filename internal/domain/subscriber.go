package domain

import "time"

// Subscriber is a newsletter recipient, unique by email.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
