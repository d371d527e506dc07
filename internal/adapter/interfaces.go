// Package adapter provides a typed client for the newsroom REST API.
//
// The primary abstraction is [APIClient], which decouples callers from the
// wire protocol. The package ships an HTTP implementation built on resty
// ([NewHTTPAPIClient]). Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// for transport-agnostic error handling.
package adapter

import (
	"context"

	"newsroom/models"
)

// APIClient defines typed communication with the newsroom server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the token currently stored in the client, or an empty
	// string if no token has been set yet.
	Token() string

	// Register creates a new account and returns its public representation.
	Register(ctx context.Context, input models.RegisterInput) (models.UserResponse, error)

	// Login authenticates by email and password. On success the returned
	// token is also stored via SetToken.
	Login(ctx context.Context, input models.LoginInput) (string, error)

	ListNews(ctx context.Context, page, limit int) (models.NewsPageResponse, error)
	GetNews(ctx context.Context, id int64) (models.NewsResponse, error)
	CreateNews(ctx context.Context, input models.NewsInput) (models.NewsResponse, error)
	UpdateNews(ctx context.Context, id int64, input models.NewsInput) (models.NewsResponse, error)
	DeleteNews(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, page, limit int) (models.UserPageResponse, error)
	GetUser(ctx context.Context, id int64) (models.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, input models.UserEditInput) (models.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error

	// Version fetches the build metadata of the running server.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
