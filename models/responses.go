package models

import "time"

// UserResponse is the public representation of a user account.
//
// The field list is fixed per endpoint by design: credential material
// (PlainPassword, PasswordHash) is structurally absent, not merely omitted.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserResponse maps a [User] to its public representation.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// NewsResponse is the public representation of a news article.
type NewsResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedBy   UserResponse `json:"created_by"`
}

// NewNewsResponse maps a [News] to its public representation.
func NewNewsResponse(n News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		CreatedBy:   NewUserResponse(n.CreatedBy),
	}
}

// NewsPageResponse is the serialized form of one news listing page.
type NewsPageResponse struct {
	Items []NewsResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// NewNewsPageResponse maps a [NewsPage] to its public representation.
func NewNewsPageResponse(p NewsPage) NewsPageResponse {
	items := make([]NewsResponse, 0, len(p.Items))
	for _, n := range p.Items {
		items = append(items, NewNewsResponse(n))
	}
	return NewsPageResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

// UserPageResponse is the serialized form of one user listing page.
type UserPageResponse struct {
	Items []UserResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// NewUserPageResponse maps a [UserPage] to its public representation.
func NewUserPageResponse(p UserPage) UserPageResponse {
	items := make([]UserResponse, 0, len(p.Items))
	for _, u := range p.Items {
		items = append(items, NewUserResponse(u))
	}
	return UserPageResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

// LoginResponse is the JSON body returned by a successful login.
// The key name mirrors the header the token is meant to be replayed in.
type LoginResponse struct {
	Authorization string `json:"Authorization"`
}
