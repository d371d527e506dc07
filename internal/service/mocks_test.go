package service

import (
	"context"

	"newsroom/models"
)

// mockUserRepository delegates every method to an optional function field,
// letting each test define exactly the behavior it needs.
type mockUserRepository struct {
	CreateUserFunc        func(ctx context.Context, user models.User) (models.User, error)
	GetUserByIDFunc       func(ctx context.Context, id int64) (models.User, error)
	GetUserByEmailFunc    func(ctx context.Context, email string) (models.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	ListUsersFunc         func(ctx context.Context, page models.PageRequest) ([]models.User, error)
	CountUsersFunc        func(ctx context.Context) (int64, error)
	UpdateUserFunc        func(ctx context.Context, user models.User) (models.User, error)
	DeleteUserFunc        func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.GetUserByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.GetUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, error) {
	return m.ListUsersFunc(ctx, page)
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return m.CountUsersFunc(ctx)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.UpdateUserFunc(ctx, user)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	return m.DeleteUserFunc(ctx, id)
}

type mockNewsRepository struct {
	CreateNewsFunc  func(ctx context.Context, news models.News) (models.News, error)
	GetNewsByIDFunc func(ctx context.Context, id int64) (models.News, error)
	ListNewsFunc    func(ctx context.Context, page models.PageRequest) ([]models.News, error)
	CountNewsFunc   func(ctx context.Context) (int64, error)
	UpdateNewsFunc  func(ctx context.Context, news models.News) (models.News, error)
	DeleteNewsFunc  func(ctx context.Context, id int64) error
}

func (m *mockNewsRepository) CreateNews(ctx context.Context, news models.News) (models.News, error) {
	return m.CreateNewsFunc(ctx, news)
}

func (m *mockNewsRepository) GetNewsByID(ctx context.Context, id int64) (models.News, error) {
	return m.GetNewsByIDFunc(ctx, id)
}

func (m *mockNewsRepository) ListNews(ctx context.Context, page models.PageRequest) ([]models.News, error) {
	return m.ListNewsFunc(ctx, page)
}

func (m *mockNewsRepository) CountNews(ctx context.Context) (int64, error) {
	return m.CountNewsFunc(ctx)
}

func (m *mockNewsRepository) UpdateNews(ctx context.Context, news models.News) (models.News, error) {
	return m.UpdateNewsFunc(ctx, news)
}

func (m *mockNewsRepository) DeleteNews(ctx context.Context, id int64) error {
	return m.DeleteNewsFunc(ctx, id)
}
