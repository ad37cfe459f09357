package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

const blogCacheTTL = 5 * time.Minute

// Cache is the narrow key/value surface the blog read path uses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// BlogCreateInput carries the fields accepted on creation.
type BlogCreateInput struct {
	Title     string
	Slug      string
	Content   string
	Thumbnail *string
	Category  string
}

// BlogUpdateInput carries optional replacements; nil fields keep their value.
type BlogUpdateInput struct {
	Title     *string
	Slug      *string
	Content   *string
	Thumbnail *string
	Category  *string
}

// BlogService manages blog posts. Public slug reads go through the cache;
// every mutation invalidates it. Creation publishes a blog_published event so
// the newsletter broadcast runs detached from the request.
type BlogService struct {
	blogs      repository.BlogRepository
	cache      Cache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewBlogService builds the service. cache may be nil.
func NewBlogService(blogs repository.BlogRepository, cache Cache, dispatcher events.Dispatcher, logger *zap.Logger) *BlogService {
	return &BlogService{blogs: blogs, cache: cache, dispatcher: dispatcher, logger: logger}
}

// Create persists a new post and triggers the newsletter fan-out.
func (s *BlogService) Create(ctx context.Context, authorID *string, input BlogCreateInput) (*domain.Blog, error) {
	blog := &domain.Blog{
		Title:     input.Title,
		Slug:      input.Slug,
		Content:   input.Content,
		Thumbnail: input.Thumbnail,
		Category:  input.Category,
		AuthorID:  authorID,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("slug already in use", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx, blog.Slug)

	if s.dispatcher != nil {
		s.dispatcher.PublishAsync(events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBlogPublished,
			Timestamp: time.Now(),
			Payload: events.BlogPublishedPayload{
				BlogID:  blog.ID,
				Title:   blog.Title,
				Slug:    blog.Slug,
				Content: blog.Content,
			},
		})
	}

	return blog, nil
}

// Update applies non-nil fields to an existing post.
func (s *BlogService) Update(ctx context.Context, id string, input BlogUpdateInput) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("blog", nil)
		}
		return nil, apperrors.MapError(err)
	}

	oldSlug := blog.Slug
	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Slug != nil {
		blog.Slug = *input.Slug
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Thumbnail != nil {
		blog.Thumbnail = input.Thumbnail
	}
	if input.Category != nil {
		blog.Category = *input.Category
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("blog", nil)
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("slug already in use", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx, oldSlug, blog.Slug)
	return blog, nil
}

// Delete removes a post by id.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("blog", nil)
		}
		return apperrors.MapError(err)
	}
	if err := s.blogs.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("blog", nil)
		}
		return apperrors.MapError(err)
	}
	s.invalidate(ctx, blog.Slug)
	return nil
}

// GetBySlug serves the public read path, cache first.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	key := blogCacheKey(slug)
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var cached domain.Blog
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	blog, err := s.blogs.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("blog", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(blog); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), blogCacheTTL); err != nil {
				s.logger.Debug("blog cache set failed", zap.Error(err))
			}
		}
	}
	return blog, nil
}

// List returns all posts, newest first, with author projections.
func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return blogs, nil
}

func (s *BlogService) invalidate(ctx context.Context, slugs ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, blogCacheKey(slug))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Debug("blog cache invalidation failed", zap.Error(err))
	}
}

func blogCacheKey(slug string) string {
	return "blog:slug:" + slug
}
