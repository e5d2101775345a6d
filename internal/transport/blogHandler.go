package transport

import (
	"net/http"

	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) RegisterRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	blogs.GET("", h.ListPosts)
	blogs.GET("/:id", h.GetPost)
}

func (h *BlogHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	blogs.GET("", h.ListPosts)
	blogs.GET("/:id", h.GetPost)
	blogs.POST("", h.CreatePost)
	blogs.PUT("/:id", h.UpdatePost)
	blogs.DELETE("/:id", h.DeletePost)
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var in service.BlogInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	post, err := h.blogService.CreatePost(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var in service.BlogInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	post, err := h.blogService.UpdatePost(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err, "Failed to update blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	post, err := h.blogService.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "post": post})
}
