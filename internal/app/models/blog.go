package models

import "time"

// BlogEntry is an authored post. Content is sanitized editor HTML.
type BlogEntry struct {
	ID        string
	Title     string
	Content   string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoverImage is an image blob attached to a blog entry (one per entry).
type CoverImage struct {
	ID        string
	BlogID    string
	Name      string
	Data      []byte
	CreatedAt time.Time
}
