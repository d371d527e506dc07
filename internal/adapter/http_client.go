package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"newsroom/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a request builder with the JSON content type and, when a
// token is stored, the Authorization header already set.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

func (h *httpAPIClient) Register(ctx context.Context, input models.RegisterInput) (models.UserResponse, error) {
	var user models.UserResponse
	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&user).
		Post("/user/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, input models.LoginInput) (string, error) {
	var login models.LoginResponse
	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&login).
		Post("/user/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if login.Authorization == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(login.Authorization)
	return login.Authorization, nil
}

func (h *httpAPIClient) ListNews(ctx context.Context, page, limit int) (models.NewsPageResponse, error) {
	var result models.NewsPageResponse
	resp, err := h.request(ctx).
		SetQueryParams(pageParams(page, limit)).
		SetResult(&result).
		Get("/news")
	if err != nil {
		return models.NewsPageResponse{}, fmt.Errorf("list news request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewsPageResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) GetNews(ctx context.Context, id int64) (models.NewsResponse, error) {
	var result models.NewsResponse
	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/news/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.NewsResponse{}, fmt.Errorf("get news request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewsResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) CreateNews(ctx context.Context, input models.NewsInput) (models.NewsResponse, error) {
	var result models.NewsResponse
	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&result).
		Post("/news")
	if err != nil {
		return models.NewsResponse{}, fmt.Errorf("create news request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewsResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) UpdateNews(ctx context.Context, id int64, input models.NewsInput) (models.NewsResponse, error) {
	var result models.NewsResponse
	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&result).
		Put("/news/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.NewsResponse{}, fmt.Errorf("update news request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewsResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) DeleteNews(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/news/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete news request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) ListUsers(ctx context.Context, page, limit int) (models.UserPageResponse, error) {
	var result models.UserPageResponse
	resp, err := h.request(ctx).
		SetQueryParams(pageParams(page, limit)).
		SetResult(&result).
		Get("/user")
	if err != nil {
		return models.UserPageResponse{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPageResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	var result models.UserResponse
	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/user/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, id int64, input models.UserEditInput) (models.UserResponse, error) {
	var result models.UserResponse
	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&result).
		Put("/user/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/user/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var result models.AppBuildInfo
	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return result, nil
}

func pageParams(page, limit int) map[string]string {
	params := make(map[string]string, 2)
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	return params
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		var envelope struct {
			Errors map[string][]string `json:"errors"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr == nil && len(envelope.Errors) > 0 {
			return fmt.Errorf("%w: %v", ErrValidation, envelope.Errors)
		}
		return ErrValidation
	case http.StatusBadRequest:
		if body == "" {
			body = http.StatusText(http.StatusBadRequest)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
