package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/api/http/handlers"
	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Feedback       *handlers.FeedbackHandler
	Classes        *handlers.ClassesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Each protected route declares its
// required role set and, where the action targets one user's data, the
// owner-id extractor the policy engine checks against.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", auth.RequireRoles(domain.RoleAdmin), cfg.Users.List)
	users.Post("/", auth.RequireRoles(domain.RoleAdmin), cfg.Users.Create)
	users.Get("/:id", auth.RequireOwnership(auth.OwnerFromParam("id")), cfg.Users.Get)
	users.Put("/:id", auth.RequireOwnership(auth.OwnerFromParam("id")), cfg.Users.Update)
	users.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Users.Delete)

	api.Get("/golfers/:id/feedback", cfg.AuthMiddleware.Handle,
		auth.RequireOwnership(auth.OwnerFromParam("id"), domain.RoleGolfer), cfg.Feedback.ListForGolfer)
	api.Post("/feedback", cfg.AuthMiddleware.Handle,
		auth.RequireRoles(domain.RoleInstructor), cfg.Feedback.Create)
	api.Delete("/feedback/:id", cfg.AuthMiddleware.Handle,
		auth.RequireRoles(domain.RoleAdmin), cfg.Feedback.Delete)

	classes := api.Group("/classes", cfg.AuthMiddleware.Handle)
	classes.Get("/", cfg.Classes.List)
	classes.Post("/", auth.RequireRoles(domain.RoleAdmin), cfg.Classes.Create)
	classes.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Classes.Delete)
	classes.Post("/:id/register", auth.RequireRoles(domain.RoleGolfer), cfg.Classes.Register)
	classes.Get("/:id/registrations", auth.RequireRoles(domain.RoleInstructor), cfg.Classes.Registrations)
}
