package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email string `json:"email" form:"email"`
}

func (h *NewsletterHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/newsletter/subscribe", h.Subscribe)
}

func (h *NewsletterHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	newsletter := router.Group("/newsletter")
	newsletter.GET("", h.ListSubscribers)
	newsletter.PUT("/:id/toggle", h.ToggleSubscriber)
	newsletter.DELETE("/:id", h.DeleteSubscriber)
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindInput(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required."})
		return
	}

	result, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email."})
		return
	case err != nil:
		respondError(c, err, "Failed to subscribe.")
		return
	}

	status := http.StatusOK
	if result == service.SubscribeCreated {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": result.Message()})
}

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.newsletterService.ListSubscribers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load subscribers.")
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *NewsletterHandler) ToggleSubscriber(c *gin.Context) {
	sub, err := h.newsletterService.ToggleSubscriber(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update subscriber.")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.newsletterService.DeleteSubscriber(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete subscriber.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted."})
}
