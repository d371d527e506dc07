package store

import (
	"context"

	"newsroom/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// NewsRepository persists and retrieves news items together with their
// creator and last editor.
type NewsRepository interface {
	CreateNews(ctx context.Context, news models.News) (models.News, error)
	GetNewsByID(ctx context.Context, id int64) (models.News, error)
	ListNews(ctx context.Context, page models.PageRequest) ([]models.News, error)
	CountNews(ctx context.Context) (int64, error)
	UpdateNews(ctx context.Context, news models.News) (models.News, error)
	DeleteNews(ctx context.Context, id int64) error
}
