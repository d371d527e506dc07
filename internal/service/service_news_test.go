package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/store"
	"newsroom/internal/validators"
	"newsroom/models"
)

func newNewsService(repo store.NewsRepository) NewsService {
	return NewNewsService(repo, config.Pagination{NewsLimit: 2, UserLimit: 5}, logger.Nop())
}

func TestNewsService_List_AppliesDefaults(t *testing.T) {
	var gotPage models.PageRequest
	repo := &mockNewsRepository{
		ListNewsFunc: func(_ context.Context, page models.PageRequest) ([]models.News, error) {
			gotPage = page
			return []models.News{{ID: 1}, {ID: 2}}, nil
		},
		CountNewsFunc: func(_ context.Context) (int64, error) { return 5, nil },
	}
	svc := newNewsService(repo)

	// zero page request falls back to page 1 with the configured limit
	result, err := svc.List(context.Background(), models.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, gotPage.Page)
	assert.Equal(t, 2, gotPage.Limit)
	assert.Equal(t, int64(5), result.Total)
	assert.Len(t, result.Items, 2)
}

func TestNewsService_List_EmptyCollectionIsNotFound(t *testing.T) {
	repo := &mockNewsRepository{
		CountNewsFunc: func(_ context.Context) (int64, error) { return 0, nil },
	}
	svc := newNewsService(repo)

	_, err := svc.List(context.Background(), models.PageRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsService_List_PagePastEndIsEmptyNotError(t *testing.T) {
	// 7 items with page size 2: page 5 starts past the collection and must
	// come back empty with the real total, not as an error
	repo := &mockNewsRepository{
		ListNewsFunc: func(_ context.Context, _ models.PageRequest) ([]models.News, error) {
			return []models.News{}, nil
		},
		CountNewsFunc: func(_ context.Context) (int64, error) { return 7, nil },
	}
	svc := newNewsService(repo)

	result, err := svc.List(context.Background(), models.PageRequest{Page: 5, Limit: 2})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, 5, result.Page)
	assert.Equal(t, 2, result.Limit)
}

func TestNewsService_Get_NotFound(t *testing.T) {
	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{}, store.ErrNewsNotFound
		},
	}
	svc := newNewsService(repo)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsService_Create_StampsActor(t *testing.T) {
	actor := models.User{ID: 7, Username: "john"}

	var saved models.News
	repo := &mockNewsRepository{
		CreateNewsFunc: func(_ context.Context, news models.News) (models.News, error) {
			saved = news
			news.ID = 3
			return news, nil
		},
	}
	svc := newNewsService(repo)

	created, err := svc.Create(context.Background(), actor, models.NewsInput{
		Title:       "Breaking",
		Description: "Something happened",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, actor, saved.CreatedBy)
	assert.Equal(t, actor, saved.UpdatedBy)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
}

func TestNewsService_Create_Anonymous(t *testing.T) {
	svc := newNewsService(&mockNewsRepository{})

	_, err := svc.Create(context.Background(), models.User{}, models.NewsInput{
		Title:       "Breaking",
		Description: "Something happened",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewsService_Create_InvalidInput(t *testing.T) {
	svc := newNewsService(&mockNewsRepository{})

	_, err := svc.Create(context.Background(), models.User{ID: 7}, models.NewsInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestNewsService_Update_ByCreator(t *testing.T) {
	creator := models.User{ID: 7, Username: "john"}
	existing := models.News{ID: 3, Title: "Old", Description: "Old text", CreatedBy: creator, UpdatedBy: creator}

	var saved models.News
	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) { return existing, nil },
		UpdateNewsFunc: func(_ context.Context, news models.News) (models.News, error) {
			saved = news
			return news, nil
		},
	}
	svc := newNewsService(repo)

	updated, err := svc.Update(context.Background(), creator, 3, models.NewsInput{
		Title:       "New",
		Description: "New text",
	})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, creator, saved.CreatedBy)
	assert.Equal(t, creator, saved.UpdatedBy)
	assert.True(t, saved.UpdatedAt.After(saved.CreatedAt) || saved.CreatedAt.IsZero())
}

func TestNewsService_Update_ByOtherUser(t *testing.T) {
	creator := models.User{ID: 7, Username: "john"}
	other := models.User{ID: 8, Username: "jane"}

	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{ID: 3, CreatedBy: creator}, nil
		},
	}
	svc := newNewsService(repo)

	_, err := svc.Update(context.Background(), other, 3, models.NewsInput{
		Title:       "New",
		Description: "New text",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewsService_Update_ForbiddenBeforeValidation(t *testing.T) {
	creator := models.User{ID: 7}
	other := models.User{ID: 8}

	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{ID: 3, CreatedBy: creator}, nil
		},
	}
	svc := newNewsService(repo)

	// invalid payload, but the non-creator must still see forbidden
	_, err := svc.Update(context.Background(), other, 3, models.NewsInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, validators.ErrValidation)
}

func TestNewsService_Update_NotFound(t *testing.T) {
	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{}, store.ErrNewsNotFound
		},
	}
	svc := newNewsService(repo)

	_, err := svc.Update(context.Background(), models.User{ID: 7}, 404, models.NewsInput{
		Title:       "New",
		Description: "New text",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsService_Delete_ByCreator(t *testing.T) {
	creator := models.User{ID: 7}

	deleted := false
	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{ID: 3, CreatedBy: creator}, nil
		},
		DeleteNewsFunc: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	svc := newNewsService(repo)

	require.NoError(t, svc.Delete(context.Background(), creator, 3))
	assert.True(t, deleted)
}

func TestNewsService_Delete_ByOtherUser(t *testing.T) {
	repo := &mockNewsRepository{
		GetNewsByIDFunc: func(_ context.Context, _ int64) (models.News, error) {
			return models.News{ID: 3, CreatedBy: models.User{ID: 7}}, nil
		},
	}
	svc := newNewsService(repo)

	err := svc.Delete(context.Background(), models.User{ID: 8}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}
