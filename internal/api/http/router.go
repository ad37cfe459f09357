package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Blogs          *handlers.BlogsHandler
	Projects       *handlers.ProjectsHandler
	Experience     *handlers.ExperienceHandler
	Newsletter     *handlers.NewsletterHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Mutating resource routes require an
// authenticated ADMIN; reads are public.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authenticated := cfg.AuthMiddleware.Handle
	adminOnly := auth.RequireAdmin()

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", authenticated, cfg.Auth.Me)

	blogs := api.Group("/blogs")
	blogs.Post("/", authenticated, adminOnly, cfg.Blogs.Create)
	blogs.Put("/:id", authenticated, adminOnly, cfg.Blogs.Update)
	blogs.Delete("/:id", authenticated, adminOnly, cfg.Blogs.Delete)
	blogs.Get("/", cfg.Blogs.List)
	blogs.Get("/:slug", cfg.Blogs.GetBySlug)

	projects := api.Group("/projects")
	projects.Post("/", authenticated, adminOnly, cfg.Projects.Create)
	projects.Put("/:id", authenticated, adminOnly, cfg.Projects.Update)
	projects.Delete("/:id", authenticated, adminOnly, cfg.Projects.Delete)
	projects.Get("/", cfg.Projects.List)
	projects.Get("/:id", cfg.Projects.Get)

	experience := api.Group("/experience")
	experience.Post("/", authenticated, adminOnly, cfg.Experience.Create)
	experience.Put("/:id", authenticated, adminOnly, cfg.Experience.Update)
	experience.Delete("/:id", authenticated, adminOnly, cfg.Experience.Delete)
	experience.Get("/", cfg.Experience.List)
	experience.Get("/:id", cfg.Experience.Get)

	newsletter := api.Group("/newsletter")
	newsletter.Post("/subscribe", cfg.Newsletter.Subscribe)
	newsletter.Post("/notify", cfg.Newsletter.Notify)
}
