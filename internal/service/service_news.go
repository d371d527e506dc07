package service

import (
	"context"
	"errors"
	"fmt"

	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/store"
	"newsroom/internal/validators"
	"newsroom/models"
)

// newsService is the concrete implementation of NewsService.
//
// Mutations follow a fixed order: authorization first, then input
// validation, then audit stamping, then persistence. A caller who is not
// allowed to touch an item learns nothing about the validity of their
// payload.
type newsService struct {
	newsRepository store.NewsRepository
	newsValidator  validators.Validator
	policy         *AccessPolicy
	stamper        *AuditStamper

	// defaultLimit is the page size applied when a listing request does
	// not specify one.
	defaultLimit int

	logger *logger.Logger
}

// NewNewsService constructs a NewsService backed by the given repository.
func NewNewsService(newsRepository store.NewsRepository, cfg config.Pagination, logger *logger.Logger) NewsService {
	return &newsService{
		newsRepository: newsRepository,
		newsValidator:  validators.NewNewsValidator(),
		policy:         NewAccessPolicy(),
		stamper:        NewAuditStamper(),
		defaultLimit:   cfg.NewsLimit,
		logger:         logger,
	}
}

// List returns one page of news items in stable id order, together with
// the total item count.
//
// ErrNewsNotFound means the whole collection is empty. A page past the
// end of a non-empty collection comes back as an empty page with the
// real total, so clients can page forward without tripping over 404s.
func (s *newsService) List(ctx context.Context, page models.PageRequest) (models.NewsPage, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePage(page.Page, page.Limit, s.defaultLimit)

	total, err := s.newsRepository.CountNews(ctx)
	if err != nil {
		log.Err(err).Msg("news count failed")
		return models.NewsPage{}, fmt.Errorf("news count failed: %w", err)
	}

	if total == 0 {
		return models.NewsPage{}, ErrNewsNotFound
	}

	items, err := s.newsRepository.ListNews(ctx, normalized)
	if err != nil {
		log.Err(err).Int("page", normalized.Page).Msg("news listing failed")
		return models.NewsPage{}, fmt.Errorf("news listing failed: %w", err)
	}

	return models.NewsPage{
		Items: items,
		Total: total,
		Page:  normalized.Page,
		Limit: normalized.Limit,
	}, nil
}

// Get returns a single news item or ErrNewsNotFound.
func (s *newsService) Get(ctx context.Context, id int64) (models.News, error) {
	log := logger.FromContext(ctx)

	news, err := s.newsRepository.GetNewsByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNewsNotFound) {
			return models.News{}, ErrNewsNotFound
		}

		log.Err(err).Int64("news_id", id).Msg("news lookup failed")
		return models.News{}, fmt.Errorf("news lookup failed: %w", err)
	}

	return news, nil
}

// Create validates the input, stamps actor as both creator and editor and
// persists the new item.
func (s *newsService) Create(ctx context.Context, actor models.User, input models.NewsInput) (models.News, error) {
	log := logger.FromContext(ctx)

	if actor.IsAnonymous() {
		return models.News{}, ErrUnauthorized
	}

	if err := s.newsValidator.Validate(ctx, input); err != nil {
		return models.News{}, err
	}

	news := models.News{
		Title:       input.Title,
		Description: input.Description,
	}
	s.stamper.StampNewsCreate(&news, actor)

	created, err := s.newsRepository.CreateNews(ctx, news)
	if err != nil {
		log.Err(err).Int64("user_id", actor.ID).Msg("news creation failed")
		return models.News{}, fmt.Errorf("news creation failed: %w", err)
	}

	return created, nil
}

// Update replaces the title and description of an existing item.
//
// Only the creator may edit; everyone else receives ErrForbidden before
// the payload is even validated. The creator fields survive the edit, the
// editor fields are restamped to actor.
func (s *newsService) Update(ctx context.Context, actor models.User, id int64, input models.NewsInput) (models.News, error) {
	log := logger.FromContext(ctx)

	news, err := s.Get(ctx, id)
	if err != nil {
		return models.News{}, err
	}

	if !s.policy.CanEditNews(actor, news) {
		log.Warn().Int64("user_id", actor.ID).Int64("news_id", id).Msg("news edit denied")
		return models.News{}, ErrForbidden
	}

	if err := s.newsValidator.Validate(ctx, input); err != nil {
		return models.News{}, err
	}

	news.Title = input.Title
	news.Description = input.Description
	s.stamper.StampNewsUpdate(&news, actor)

	updated, err := s.newsRepository.UpdateNews(ctx, news)
	if err != nil {
		if errors.Is(err, store.ErrNewsNotFound) {
			return models.News{}, ErrNewsNotFound
		}

		log.Err(err).Int64("news_id", id).Msg("news update failed")
		return models.News{}, fmt.Errorf("news update failed: %w", err)
	}

	return updated, nil
}

// Delete removes an existing item. Only the creator may delete.
func (s *newsService) Delete(ctx context.Context, actor models.User, id int64) error {
	log := logger.FromContext(ctx)

	news, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanDeleteNews(actor, news) {
		log.Warn().Int64("user_id", actor.ID).Int64("news_id", id).Msg("news delete denied")
		return ErrForbidden
	}

	if err := s.newsRepository.DeleteNews(ctx, id); err != nil {
		if errors.Is(err, store.ErrNewsNotFound) {
			return ErrNewsNotFound
		}

		log.Err(err).Int64("news_id", id).Msg("news delete failed")
		return fmt.Errorf("news delete failed: %w", err)
	}

	return nil
}
