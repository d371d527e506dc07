package service

import (
	"context"

	"newsroom/models"
)

// AuthService handles registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (models.User, error)
	Login(ctx context.Context, input models.LoginInput) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, signedToken string) (models.Token, error)
	ResolveUser(ctx context.Context, token models.Token) (models.User, error)
}

// NewsService implements the news use cases: paginated listing, lookup and
// ownership-guarded mutation.
type NewsService interface {
	List(ctx context.Context, page models.PageRequest) (models.NewsPage, error)
	Get(ctx context.Context, id int64) (models.News, error)
	Create(ctx context.Context, actor models.User, input models.NewsInput) (models.News, error)
	Update(ctx context.Context, actor models.User, id int64, input models.NewsInput) (models.News, error)
	Delete(ctx context.Context, actor models.User, id int64) error
}

// UserService implements the user profile use cases. Edits and deletions
// are restricted to the account owner.
type UserService interface {
	List(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, actor models.User, id int64, input models.UserEditInput) (models.User, error)
	Delete(ctx context.Context, actor models.User, id int64) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
