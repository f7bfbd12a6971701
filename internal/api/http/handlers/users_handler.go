package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/diretrix/helpdesk/internal/api/dto"
	"github.com/diretrix/helpdesk/internal/auth"
	"github.com/diretrix/helpdesk/internal/domain"
	"github.com/diretrix/helpdesk/internal/service"
	apperrors "github.com/diretrix/helpdesk/pkg/util"
)

// UsersHandler manages account endpoints.
type UsersHandler struct {
	service *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{service: authService}
}

// SignUp POST /auth/register. Public sign-up always creates a client
// account; the role field in the payload is ignored here.
func (h *UsersHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, token, exp, err := h.service.SignUp(c.Context(), req.Name, req.Email, req.Password, domain.UserRoleClient)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AuthResponse{
		User:      dto.NewUserResponse(user),
		Token:     token,
		ExpiresAt: exp,
	}})
}

// SignIn POST /auth/login.
func (h *UsersHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, token, exp, err := h.service.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		User:      dto.NewUserResponse(user),
		Token:     token,
		ExpiresAt: exp,
	}})
}

// SignOut POST /auth/logout.
func (h *UsersHandler) SignOut(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.service.SignOut(c.Context(), principal); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"signed_out": true}})
}

// Me GET /auth/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(principal.User)})
}

// ListAdmins GET /admin/users. Backs the assignee picker in triage views.
func (h *UsersHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.service.ListAdmins(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(admins))
	for i := range admins {
		items = append(items, dto.NewUserResponse(&admins[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ChangePassword POST /auth/password/change.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.ChangePassword(c.Context(), principal.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}
