package models

import "time"

// News represents a single news article with blame and timestamp auditing.
//
// CreatedBy is set exactly once, at creation time, and is never reassigned
// afterwards. UpdatedBy and UpdatedAt are refreshed on every successful edit.
// News records are hard-deleted; no tombstone is kept.
type News struct {
	// ID is the server-generated unique identifier of the article.
	ID int64 `json:"id"`

	// Title is the headline of the article. Must be non-blank.
	Title string `json:"title"`

	// Description is the body of the article. Must be non-blank.
	Description string `json:"description"`

	// CreatedBy references the user who created the article.
	// Immutable after creation.
	CreatedBy User `json:"created_by"`

	// UpdatedBy references the user who last edited the article.
	// Equals CreatedBy right after creation.
	UpdatedBy User `json:"updated_by"`

	// CreatedAt is the timestamp when the article was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the News model.
func (n News) TableName() string {
	return "news"
}
