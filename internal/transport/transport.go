package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Cars         *CarHandler
	Bookings     *BookingHandler
	Blogs        *BlogHandler
	Testimonials *TestimonialHandler
	Newsletter   *NewsletterHandler
	Auth         *AuthHandler
	Customers    *CustomerHandler
	Overview     *OverviewHandler
}

type RouterOptions struct {
	Tokens         middleware.TokenVerifier
	UploadsDir     string // served at /uploads when set
	RequestTimeout time.Duration
}

func InitRoutes(h *Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(opts.RequestTimeout))

	if opts.UploadsDir != "" {
		router.Static("/uploads", opts.UploadsDir)
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Car rental API is running")
	})

	api := router.Group("/api")
	{
		h.Auth.RegisterRoutes(api)
		h.Customers.RegisterRoutes(api)
		h.Cars.RegisterRoutes(api)
		h.Bookings.RegisterRoutes(api)
		h.Blogs.RegisterRoutes(api)
		h.Testimonials.RegisterRoutes(api)
		h.Newsletter.RegisterRoutes(api)
	}

	// любой авторизованный пользователь
	customer := api.Group("", middleware.RequireAuth(opts.Tokens))
	{
		h.Bookings.RegisterCustomerRoutes(customer)
	}

	admin := api.Group("/admin", middleware.RequireAuth(opts.Tokens), middleware.RequireRole(entity.RoleAdmin))
	{
		h.Overview.RegisterAdminRoutes(admin)
		h.Cars.RegisterAdminRoutes(admin)
		h.Bookings.RegisterAdminRoutes(admin)
		h.Blogs.RegisterAdminRoutes(admin)
		h.Testimonials.RegisterAdminRoutes(admin)
		h.Newsletter.RegisterAdminRoutes(admin)
		h.Auth.RegisterAdminRoutes(admin)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	return router
}
