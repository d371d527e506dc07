package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) APIClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
}

func TestHTTPAPIClient_Register(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/register", r.URL.Path)

		var input models.RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "john", input.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.UserResponse{ID: 1, Username: input.Username, Email: input.Email})
	})

	user, err := client.Register(context.Background(), models.RegisterInput{
		Username:      "john",
		Email:         "john@example.com",
		PlainPassword: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestHTTPAPIClient_Login_StoresToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{Authorization: "signed-jwt"})
	})

	token, err := client.Login(context.Background(), models.LoginInput{
		Email:         "john@example.com",
		PlainPassword: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", token)
	assert.Equal(t, "signed-jwt", client.Token())
}

func TestHTTPAPIClient_ListNews_SendsTokenAndParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "Bearer signed-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.NewsPageResponse{
			Items: []models.NewsResponse{{ID: 3, Title: "Breaking"}},
			Total: 5,
			Page:  2,
			Limit: 2,
		})
	})
	client.SetToken("signed-jwt")

	page, err := client.ListNews(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Breaking", page.Items[0].Title)
}

func TestHTTPAPIClient_CreateNews(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/news", r.URL.Path)

		var input models.NewsInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.NewsResponse{ID: 3, Title: input.Title, Description: input.Description})
	})
	client.SetToken("signed-jwt")

	created, err := client.CreateNews(context.Background(), models.NewsInput{
		Title:       "Breaking",
		Description: "Something happened",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestHTTPAPIClient_DeleteNews(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/news/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	client.SetToken("signed-jwt")

	require.NoError(t, client.DeleteNews(context.Background(), 3))
}

func TestHTTPAPIClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "validation", status: http.StatusUnprocessableEntity, body: `{"errors": {"title": ["This value should not be blank."]}}`, wantErr: ErrValidation},
		{name: "bad request", status: http.StatusBadRequest, body: "invalid credentials", wantErr: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			_, err := client.GetNews(context.Background(), 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPAPIClient_ValidationErrorCarriesFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors": {"email": ["This value is already used."]}}`))
	})

	_, err := client.Register(context.Background(), models.RegisterInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email")
}
