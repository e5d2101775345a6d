package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.POST("/signup", h.Signup)
	users.POST("/login", h.Login)
}

func (h *CustomerHandler) Signup(c *gin.Context) {
	var in service.SignupInput
	if !bindInput(c, &in) {
		return
	}

	session, err := h.customerService.Signup(c.Request.Context(), &in)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields.", "errors": verrs})
		return
	case err != nil:
		respondError(c, err, "Signup failed.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *CustomerHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindInput(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email & password required."})
		return
	}

	session, err := h.customerService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	case err != nil:
		respondError(c, err, "Login failed.")
		return
	}
	c.JSON(http.StatusOK, session)
}
