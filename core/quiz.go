package core

import (
	"encoding/json"
	"time"
)

// Quiz is an owned-by-user content record.
//
// UploadedBy holds the owner's username and is the field consulted by the
// ownership predicate before any mutation.
type Quiz struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Questions   json.RawMessage `json:"questions,omitempty"`
	Image       *string         `json:"image,omitempty"`
	UploadedBy  string          `json:"uploaded_by"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
