package models

// Default pagination parameters. List endpoints fall back to these values
// when the caller omits page/limit or supplies a non-positive value.
const (
	DefaultPage      = 1
	DefaultNewsLimit = 2
	DefaultUserLimit = 5
)

// PageRequest carries normalized pagination parameters for list operations.
type PageRequest struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the number of items per page.
	Limit int
}

// NormalizePage clamps page and limit to sane values: non-positive page
// becomes [DefaultPage], non-positive limit becomes defaultLimit.
func NormalizePage(page, limit, defaultLimit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of items to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewsPage is one page of a news listing.
//
// Items preserves the underlying storage order (ascending identifier order,
// which matches creation order); pagination never re-sorts. When Page points
// beyond the available range, Items is empty and Total still reports the
// full collection size.
type NewsPage struct {
	Items []News `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// UserPage is one page of a user listing. Same paging semantics as [NewsPage].
type UserPage struct {
	Items []User `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
