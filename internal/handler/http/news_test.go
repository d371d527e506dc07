package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/service"
	"newsroom/internal/validators"
	"newsroom/models"
)

func doAuthed(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListNews_Success(t *testing.T) {
	actor := models.User{ID: 7, Username: "john"}
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	var gotPage models.PageRequest
	news := &mockNewsService{
		ListFunc: func(_ context.Context, page models.PageRequest) (models.NewsPage, error) {
			gotPage = page
			return models.NewsPage{
				Items: []models.News{
					{ID: 1, Title: "First", Description: "First text", CreatedBy: actor, UpdatedBy: actor, CreatedAt: now, UpdatedAt: now},
					{ID: 2, Title: "Second", Description: "Second text", CreatedBy: actor, UpdatedBy: actor, CreatedAt: now, UpdatedAt: now},
				},
				Total: 5,
				Page:  2,
				Limit: 2,
			}, nil
		},
	}
	router := newTestHandler(passThroughAuth(actor), news, nil).Init()

	rec := doAuthed(router, http.MethodGet, "/news?page=2&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, gotPage.Page)
	assert.Equal(t, 2, gotPage.Limit)

	var resp models.NewsPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(5), resp.Total)
	assert.Equal(t, "john", resp.Items[0].CreatedBy.Username)
}

func TestListNews_EmptyCollection(t *testing.T) {
	news := &mockNewsService{
		ListFunc: func(_ context.Context, _ models.PageRequest) (models.NewsPage, error) {
			return models.NewsPage{}, service.ErrNewsNotFound
		},
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), news, nil).Init()

	rec := doAuthed(router, http.MethodGet, "/news", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNews_NotFound(t *testing.T) {
	news := &mockNewsService{
		GetFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{}, service.ErrNewsNotFound
		},
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), news, nil).Init()

	rec := doAuthed(router, http.MethodGet, "/news/404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNews_NonNumericID(t *testing.T) {
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), &mockNewsService{}, nil).Init()

	rec := doAuthed(router, http.MethodGet, "/news/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateNews_Success(t *testing.T) {
	actor := models.User{ID: 7, Username: "john"}

	var gotActor models.User
	news := &mockNewsService{
		CreateFunc: func(_ context.Context, a models.User, input models.NewsInput) (models.News, error) {
			gotActor = a
			return models.News{ID: 3, Title: input.Title, Description: input.Description, CreatedBy: a, UpdatedBy: a}, nil
		},
	}
	router := newTestHandler(passThroughAuth(actor), news, nil).Init()

	rec := doAuthed(router, http.MethodPost, "/news", `{"title": "Breaking", "description": "Something happened"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, actor, gotActor)

	var resp models.NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "john", resp.CreatedBy.Username)
}

func TestCreateNews_ValidationErrors(t *testing.T) {
	news := &mockNewsService{
		CreateFunc: func(_ context.Context, _ models.User, _ models.NewsInput) (models.News, error) {
			verr := validators.NewValidationError()
			verr.Add(validators.FieldTitle, "This value should not be blank.")
			return models.News{}, verr
		},
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), news, nil).Init()

	rec := doAuthed(router, http.MethodPost, "/news", `{"title": "", "description": "text"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp validationErrorsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "title")
}

func TestUpdateNews_Forbidden(t *testing.T) {
	news := &mockNewsService{
		UpdateFunc: func(_ context.Context, _ models.User, _ int64, _ models.NewsInput) (models.News, error) {
			return models.News{}, service.ErrForbidden
		},
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 8}), news, nil).Init()

	rec := doAuthed(router, http.MethodPut, "/news/3", `{"title": "New", "description": "New text"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateNews_Success(t *testing.T) {
	actor := models.User{ID: 7, Username: "john"}
	news := &mockNewsService{
		UpdateFunc: func(_ context.Context, a models.User, id int64, input models.NewsInput) (models.News, error) {
			return models.News{ID: id, Title: input.Title, Description: input.Description, CreatedBy: actor, UpdatedBy: a}, nil
		},
	}
	router := newTestHandler(passThroughAuth(actor), news, nil).Init()

	rec := doAuthed(router, http.MethodPut, "/news/3", `{"title": "New", "description": "New text"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "New", resp.Title)
}

func TestDeleteNews_Success(t *testing.T) {
	news := &mockNewsService{
		DeleteFunc: func(_ context.Context, _ models.User, _ int64) error { return nil },
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), news, nil).Init()

	rec := doAuthed(router, http.MethodDelete, "/news/3", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteNews_RepeatedDelete(t *testing.T) {
	news := &mockNewsService{
		DeleteFunc: func(_ context.Context, _ models.User, _ int64) error {
			return service.ErrNewsNotFound
		},
	}
	router := newTestHandler(passThroughAuth(models.User{ID: 7}), news, nil).Init()

	rec := doAuthed(router, http.MethodDelete, "/news/3", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
