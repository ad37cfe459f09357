package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBlogPublished EventType = "blog_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BlogPublishedPayload carries the fields the newsletter broadcast needs.
type BlogPublishedPayload struct {
	BlogID  string `json:"blog_id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}
