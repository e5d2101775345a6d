package appServer

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/car-rental/config"
	"github.com/ds124wfegd/car-rental/internal/database"
	mongoRepo "github.com/ds124wfegd/car-rental/internal/database/mongo"
	repository "github.com/ds124wfegd/car-rental/internal/database/postgres"
	redisCache "github.com/ds124wfegd/car-rental/internal/database/redis"
	"github.com/ds124wfegd/car-rental/internal/pkg/kafka"
	"github.com/ds124wfegd/car-rental/internal/pkg/storage"
	"github.com/ds124wfegd/car-rental/internal/rabbitMQ"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/pkg/mongo"
	"github.com/ds124wfegd/car-rental/pkg/postgres"
	"github.com/ds124wfegd/car-rental/pkg/redis"

	"github.com/sirupsen/logrus"
)

// openRepositories connects the configured backend and prepares its schema.
func openRepositories(ctx context.Context, cfg *config.Config) (*database.Repositories, func(), error) {
	switch cfg.Database.Driver {
	case "mongo":
		client, err := mongo.NewMongoClient(ctx, &cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("Failed to disconnect from MongoDB")
			}
		}
		return mongoRepo.NewRepositories(db), closeFn, nil

	default:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		// Run database migrations
		if err := postgres.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		closeFn := func() {
			if err := db.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close database")
			}
		}
		return repository.NewRepositories(db), closeFn, nil
	}
}

// openOverviewCache returns a nil cache when caching is off or Redis is down;
// the overview is then computed on every request.
func openOverviewCache(ctx context.Context, cfg *config.Config) (database.OverviewCache, func()) {
	noop := func() {}
	if cfg.Overview.CacheTTL <= 0 || cfg.Redis.Host == "" {
		return nil, noop
	}

	client, err := redis.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, overview cache disabled")
		return nil, noop
	}

	logrus.WithField("ttl", cfg.Overview.CacheTTL).Info("Overview cache enabled")
	return redisCache.NewOverviewCache(client, cfg.Overview.CacheTTL), func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Error("Failed to close Redis client")
		}
	}
}

func newUploader(ctx context.Context, cfg *config.Config) (*storage.Uploader, error) {
	var files storage.FileStorage
	switch cfg.Storage.Driver {
	case "s3":
		s3, err := storage.NewS3Storage(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3BaseURL)
		if err != nil {
			return nil, err
		}
		files = s3
	default:
		files = storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Server.BaseURL+"/uploads")
	}

	processor := storage.NewImageProcessor(cfg.Images.MaxWidth, cfg.Images.MaxHeight, cfg.Images.JPEGQuality)
	return storage.NewUploader(files, processor, cfg.Images.MaxUpload), nil
}

// newEventPublisher never fails: a broker that cannot be reached is logged and
// events are dropped, the API keeps serving.
func newEventPublisher(ctx context.Context, cfg *config.Config) (service.EventPublisher, func()) {
	noop := func() {}

	switch cfg.Events.Driver {
	case "kafka":
		producer, err := kafka.NewProducer(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logrus.WithError(err).Error("Failed to initialize Kafka producer, events disabled")
			return service.NoopPublisher{}, noop
		}
		return producer, func() {
			if err := producer.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close Kafka producer")
			}
		}

	case "rabbitmq":
		rabbit, err := rabbitMQ.NewRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			logrus.WithError(err).Error("Failed to initialize RabbitMQ, events disabled")
			return service.NoopPublisher{}, noop
		}
		return rabbit, func() {
			if err := rabbit.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close RabbitMQ")
			}
		}

	default:
		logrus.Info("Event publishing disabled")
		return service.NoopPublisher{}, noop
	}
}
