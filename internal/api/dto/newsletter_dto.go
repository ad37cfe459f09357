package dto

// SubscribeRequest payload for newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NotifyRequest payload for a broadcast.
type NotifyRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
