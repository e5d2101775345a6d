package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/transport/middleware"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword"`
	NewPassword string `json:"newPassword" form:"newPassword"`
}

// AuthHandler serves admin login/bootstrap and admin account management.
type AuthHandler struct {
	adminService service.AdminService
}

func NewAuthHandler(adminService service.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/seed-admin", h.SeedAdmin)
}

func (h *AuthHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.GET("", h.ListAdmins)
	users.PUT("/me/password", h.ChangePassword)
	users.POST("/invite", h.InviteAdmin)
	users.DELETE("/:id", h.DeleteAdmin)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindInput(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	session, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SeedAdmin(c *gin.Context) {
	var in service.AdminInput
	if !bindInput(c, &in) {
		return
	}

	admin, err := h.adminService.SeedAdmin(c.Request.Context(), &in)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields", "errors": verrs})
		return
	case errors.Is(err, entity.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
		return
	case err != nil:
		respondError(c, err, "Failed to create admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin user created. You can now login.",
		"admin":   admin,
	})
}

func (h *AuthHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load admins")
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondError(c, entity.ErrUnauthorized, "")
		return
	}

	var req changePasswordRequest
	if !bindInput(c, &req) {
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Old and new password required"})
		return
	}

	if err := h.adminService.ChangePassword(c.Request.Context(), claims.ID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) InviteAdmin(c *gin.Context) {
	var in service.AdminInput
	if !bindInput(c, &in) {
		return
	}

	admin, err := h.adminService.InviteAdmin(c.Request.Context(), &in)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields", "errors": verrs})
		return
	case errors.Is(err, entity.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
		return
	case err != nil:
		respondError(c, err, "Failed to invite admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin invited/created successfully",
		"admin":   admin,
	})
}

func (h *AuthHandler) DeleteAdmin(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondError(c, entity.ErrUnauthorized, "")
		return
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), claims.ID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}
