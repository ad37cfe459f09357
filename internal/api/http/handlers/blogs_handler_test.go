package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

type stubBlogRepo struct {
	bySlug map[string]*domain.Blog
}

func (s *stubBlogRepo) Create(context.Context, *domain.Blog) error { return nil }
func (s *stubBlogRepo) Update(context.Context, *domain.Blog) error { return nil }
func (s *stubBlogRepo) Delete(context.Context, string) error       { return nil }
func (s *stubBlogRepo) GetByID(context.Context, string) (*domain.Blog, error) {
	return nil, pgx.ErrNoRows
}
func (s *stubBlogRepo) GetBySlug(_ context.Context, slug string) (*domain.Blog, error) {
	if blog, ok := s.bySlug[slug]; ok {
		return blog, nil
	}
	return nil, pgx.ErrNoRows
}
func (s *stubBlogRepo) List(context.Context) ([]domain.Blog, error) { return nil, nil }

type noopCache struct{}

func (noopCache) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (noopCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error                  { return nil }

func newBlogTestApp(repo *stubBlogRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			derr := apperrors.ToDomainError(err)
			return c.Status(derr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": derr.Code, "message": derr.Message},
			})
		},
	})

	svc := service.NewBlogService(repo, noopCache{}, events.NewInMemoryDispatcher(), zap.NewNop())
	handler := handlers.NewBlogsHandler(svc)

	app.Get("/api/blogs", handler.List)
	app.Get("/api/blogs/:slug", handler.GetBySlug)
	return app
}

func TestBlogsHandler_GetBySlug(t *testing.T) {
	title := "First Post"
	repo := &stubBlogRepo{bySlug: map[string]*domain.Blog{
		"first-post": {ID: "b-1", Title: title, Slug: "first-post", Content: "hello"},
	}}
	app := newBlogTestApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/first-post", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got domain.Blog
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Slug != "first-post" || got.Title != title {
		t.Fatalf("unexpected blog: %+v", got)
	}
}

func TestBlogsHandler_GetBySlugNotFound(t *testing.T) {
	app := newBlogTestApp(&stubBlogRepo{bySlug: map[string]*domain.Blog{}})

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/missing", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "NOT_FOUND" {
		t.Fatalf("error code = %q, want NOT_FOUND", body.Error.Code)
	}
}
