package http

import (
	"context"

	"newsroom/internal/logger"
	"newsroom/internal/service"
	"newsroom/models"
)

// Function-field mocks let each test script exactly the service behavior
// it needs without a mocking framework.

type mockAuthService struct {
	RegisterFunc    func(ctx context.Context, input models.RegisterInput) (models.User, error)
	LoginFunc       func(ctx context.Context, input models.LoginInput) (models.Token, error)
	CreateTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	ParseTokenFunc  func(ctx context.Context, signedToken string) (models.Token, error)
	ResolveUserFunc func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *mockAuthService) Login(ctx context.Context, input models.LoginInput) (models.Token, error) {
	return m.LoginFunc(ctx, input)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.CreateTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	return m.ParseTokenFunc(ctx, signedToken)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	return m.ResolveUserFunc(ctx, token)
}

type mockNewsService struct {
	ListFunc   func(ctx context.Context, page models.PageRequest) (models.NewsPage, error)
	GetFunc    func(ctx context.Context, id int64) (models.News, error)
	CreateFunc func(ctx context.Context, actor models.User, input models.NewsInput) (models.News, error)
	UpdateFunc func(ctx context.Context, actor models.User, id int64, input models.NewsInput) (models.News, error)
	DeleteFunc func(ctx context.Context, actor models.User, id int64) error
}

func (m *mockNewsService) List(ctx context.Context, page models.PageRequest) (models.NewsPage, error) {
	return m.ListFunc(ctx, page)
}

func (m *mockNewsService) Get(ctx context.Context, id int64) (models.News, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockNewsService) Create(ctx context.Context, actor models.User, input models.NewsInput) (models.News, error) {
	return m.CreateFunc(ctx, actor, input)
}

func (m *mockNewsService) Update(ctx context.Context, actor models.User, id int64, input models.NewsInput) (models.News, error) {
	return m.UpdateFunc(ctx, actor, id, input)
}

func (m *mockNewsService) Delete(ctx context.Context, actor models.User, id int64) error {
	return m.DeleteFunc(ctx, actor, id)
}

type mockUserService struct {
	ListFunc   func(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	GetFunc    func(ctx context.Context, id int64) (models.User, error)
	UpdateFunc func(ctx context.Context, actor models.User, id int64, input models.UserEditInput) (models.User, error)
	DeleteFunc func(ctx context.Context, actor models.User, id int64) error
}

func (m *mockUserService) List(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	return m.ListFunc(ctx, page)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (models.User, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockUserService) Update(ctx context.Context, actor models.User, id int64, input models.UserEditInput) (models.User, error) {
	return m.UpdateFunc(ctx, actor, id, input)
}

func (m *mockUserService) Delete(ctx context.Context, actor models.User, id int64) error {
	return m.DeleteFunc(ctx, actor, id)
}

func newTestHandler(auth *mockAuthService, news *mockNewsService, users *mockUserService) *Handler {
	services := &service.Services{
		AppInfoService: service.NewAppInfoService(models.AppBuildInfo{Version: "test"}),
	}
	if auth != nil {
		services.AuthService = auth
	}
	if news != nil {
		services.NewsService = news
	}
	if users != nil {
		services.UserService = users
	}

	return NewHandler(services, logger.Nop())
}

// passThroughAuth returns an auth service mock that accepts any token and
// resolves it to actor.
func passThroughAuth(actor models.User) *mockAuthService {
	return &mockAuthService{
		ParseTokenFunc: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Claims: models.TokenClaims{Username: actor.Username}}, nil
		},
		ResolveUserFunc: func(_ context.Context, _ models.Token) (models.User, error) {
			return actor, nil
		},
	}
}
