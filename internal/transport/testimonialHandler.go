package transport

import (
	"net/http"

	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/testimonials", h.ListActive)
}

func (h *TestimonialHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	testimonials := router.Group("/testimonials")
	testimonials.GET("", h.ListAll)
	testimonials.POST("", h.CreateTestimonial)
	testimonials.PUT("/:id", h.UpdateTestimonial)
	testimonials.DELETE("/:id", h.DeleteTestimonial)
}

func (h *TestimonialHandler) ListActive(c *gin.Context) {
	h.list(c, true)
}

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *TestimonialHandler) list(c *gin.Context, onlyActive bool) {
	items, err := h.testimonialService.ListTestimonials(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err, "Failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var in service.TestimonialInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	created, err := h.testimonialService.CreateTestimonial(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var in service.TestimonialInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	updated, err := h.testimonialService.UpdateTestimonial(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err, "Failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonialService.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
