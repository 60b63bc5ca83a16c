package model

import (
	"encoding/json"
	"time"
)

// Content is a stored JSON document of the "contents" resource.
// Data is kept byte-for-byte as the client sent it; a nil Data means the row exists
// but carries no body.
type Content struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
