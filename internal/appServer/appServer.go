package appServer

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/car-rental/config"
	"github.com/ds124wfegd/car-rental/internal/pkg/auth"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/transport"
	"github.com/ds124wfegd/car-rental/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// SetupLogger configures the global logrus logger; the notifier uses it too.
func SetupLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logrus.WithField("log_level", cfg.Server.LogLevel).Warn("Unknown log level, falling back to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func NewServer(cfg *config.Config) {
	SetupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	repos, closeDB, err := openRepositories(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer closeDB()

	cache, closeCache := openOverviewCache(ctx, cfg)
	defer closeCache()

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize file storage: %v", err)
	}

	events, closeEvents := newEventPublisher(ctx, cfg)
	defer closeEvents()

	tokens, err := auth.NewTokenManager(cfg.JWT.Secret)
	if err != nil {
		logrus.Fatalf("Failed to initialize token manager: %v", err)
	}

	// Initialize services
	overviewService := service.NewOverviewService(repos.Cars, repos.Bookings, cache)
	carService := service.NewCarService(repos.Cars, uploader, overviewService)
	bookingService := service.NewBookingService(repos.Bookings, repos.Cars, events, overviewService)
	blogService := service.NewBlogService(repos.Blogs, uploader)
	testimonialService := service.NewTestimonialService(repos.Testimonials, uploader)
	newsletterService := service.NewNewsletterService(repos.Subscribers, events)
	adminService := service.NewAdminService(repos.Admins, tokens, cfg.JWT.AdminTTL)
	customerService := service.NewCustomerService(repos.Customers, tokens, cfg.JWT.CustomerTTL)

	// Прогрев сводки имеет смысл только вместе с кэшем
	if cache != nil && cfg.Overview.WarmInterval > 0 {
		warmer := worker.NewOverviewWarmer(overviewService, cfg.Overview.WarmInterval)
		go warmer.Start(ctx)
	}

	// Initialize handlers
	handlers := &transport.Handlers{
		Cars:         transport.NewCarHandler(carService),
		Bookings:     transport.NewBookingHandler(bookingService),
		Blogs:        transport.NewBlogHandler(blogService),
		Testimonials: transport.NewTestimonialHandler(testimonialService),
		Newsletter:   transport.NewNewsletterHandler(newsletterService),
		Auth:         transport.NewAuthHandler(adminService),
		Customers:    transport.NewCustomerHandler(customerService),
		Overview:     transport.NewOverviewHandler(overviewService),
	}

	gin.SetMode(cfg.Server.Mode)

	opts := transport.RouterOptions{
		Tokens:         tokens,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if cfg.Storage.Driver == "local" {
		opts.UploadsDir = cfg.Storage.LocalPath
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers, opts)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.GetServerAddress(),
		"version":  cfg.Server.AppVersion,
		"database": cfg.Database.Driver,
		"events":   cfg.Events.Driver,
	}).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
