package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diretrix/helpdesk/internal/api/http/handlers"
	"github.com/diretrix/helpdesk/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.SignUp)
	authGroup.Post("/login", cfg.Users.SignIn)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Post("/logout", cfg.Users.SignOut)
	authProtected.Get("/me", cfg.Users.Me)
	authProtected.Post("/password/change", cfg.Users.ChangePassword)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	tickets.Post("", cfg.Tickets.CreateTicket)
	tickets.Get("", cfg.Tickets.ListTickets)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Get("/:id/activity", cfg.Tickets.GetActivity)
	tickets.Post("/:id/attachment", cfg.Tickets.UploadAttachment)
	tickets.Get("/:id/attachment", cfg.Tickets.DownloadAttachment)

	app.Get("/admin/users", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Users.ListAdmins)

	admin := app.Group("/admin/tickets", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("", cfg.Tickets.ListTickets)
	admin.Get("/:id", cfg.Tickets.GetTicket)
	admin.Get("/:id/activity", cfg.Tickets.GetActivity)
	admin.Patch("/:id/status", cfg.AdminTickets.UpdateStatus)
	admin.Patch("/:id/assignee", cfg.AdminTickets.UpdateAssignee)
}
