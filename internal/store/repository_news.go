package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsroom/internal/logger"
	"newsroom/models"
)

// newsRepository is the SQL-backed implementation of [NewsRepository].
// It executes all news CRUD operations against the "news" table, joining
// the "users" table twice to hydrate the creator and last editor.
type newsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNewsRepository constructs a [NewsRepository] backed by the provided
// database connection and logger.
func NewNewsRepository(db *DB, logger *logger.Logger) NewsRepository {
	logger.Debug().Msg("creating news repository")
	return &newsRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNews persists a new news item and returns it re-read from the
// database with the creator and editor hydrated.
func (r *newsRepository) CreateNews(ctx context.Context, news models.News) (models.News, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNews,
		news.Title, news.Description, news.CreatedBy.ID, news.UpdatedBy.ID, news.CreatedAt, news.UpdatedAt)

	var id int64
	if err := row.Scan(&id); err != nil {
		log.Err(err).Str("func", "*newsRepository.CreateNews").Msg("error: scanning error")
		return models.News{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.GetNewsByID(ctx, id)
}

// GetNewsByID retrieves the news item with the given identifier.
// A missing record returns [ErrNewsNotFound].
func (r *newsRepository) GetNewsByID(ctx context.Context, id int64) (models.News, error) {
	log := logger.FromContext(ctx)

	var news models.News
	row := r.db.QueryRowContext(ctx, getNewsByID, id)
	if err := scanNews(row, &news); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.News{}, ErrNewsNotFound
		}

		log.Err(err).Str("func", "*newsRepository.GetNewsByID").Int64("news_id", id).Msg("error: scanning error")
		return models.News{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return news, nil
}

// ListNews retrieves one page of news items ordered by id, each with its
// creator and last editor hydrated. An empty page returns an empty slice.
func (r *newsRepository) ListNews(ctx context.Context, page models.PageRequest) ([]models.News, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNewsQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*newsRepository.ListNews").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*newsRepository.ListNews").
			Int("page", page.Page).
			Int("limit", page.Limit).
			Msg("failed to execute query for listing news")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.News, 0, page.Limit)
	for rows.Next() {
		var news models.News
		if err := scanNews(rows, &news); err != nil {
			log.Err(err).Str("func", "*newsRepository.ListNews").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, news)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// CountNews returns the total number of news items.
func (r *newsRepository) CountNews(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountNewsQuery()
	if err != nil {
		log.Err(err).Str("func", "*newsRepository.CountNews").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*newsRepository.CountNews").Msg("failed to count news")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateNews persists the editable fields (title, description, updated_by,
// updated_at) of an existing item and returns the stored record. The
// created_by column is never modified.
//
// Zero affected rows return [ErrNewsNotFound].
func (r *newsRepository) UpdateNews(ctx context.Context, news models.News) (models.News, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNewsQuery(news)
	if err != nil {
		log.Err(err).Str("func", "*newsRepository.UpdateNews").Msg("failed to create query")
		return models.News{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*newsRepository.UpdateNews").Int64("news_id", news.ID).Msg("failed to update news")
		return models.News{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.News{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.News{}, ErrNewsNotFound
	}

	return r.GetNewsByID(ctx, news.ID)
}

// DeleteNews removes the news item with the given identifier.
// A missing record returns [ErrNewsNotFound].
func (r *newsRepository) DeleteNews(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNews, id)
	if err != nil {
		log.Err(err).Str("func", "*newsRepository.DeleteNews").Int64("news_id", id).Msg("failed to delete news")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNewsNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNews(row rowScanner, news *models.News) error {
	return row.Scan(
		&news.ID, &news.Title, &news.Description, &news.CreatedAt, &news.UpdatedAt,
		&news.CreatedBy.ID, &news.CreatedBy.Username, &news.CreatedBy.Email,
		&news.UpdatedBy.ID, &news.UpdatedBy.Username, &news.UpdatedBy.Email,
	)
}
