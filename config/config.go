// Ininicializing common application configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Images   ImagesConfig   `mapstructure:"images"`
	Events   EventsConfig   `mapstructure:"events"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Overview OverviewConfig `mapstructure:"overview"`
}

type ServerConfig struct {
	AppVersion     string        `mapstructure:"app_version"`
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port" validate:"required"`
	Timeout        time.Duration `mapstructure:"timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Env            string        `mapstructure:"environment"`
	Mode           string        `mapstructure:"mode" validate:"oneof=debug release test"`
	LogLevel       string        `mapstructure:"log_level"`
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres mongo"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// Настройки пула соединений
	MaxRetries   int           `mapstructure:"max_retries"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// JWTConfig has no secret default on purpose: an empty secret fails validation.
type JWTConfig struct {
	Secret      string        `mapstructure:"secret" validate:"required,min=16"`
	AdminTTL    time.Duration `mapstructure:"admin_ttl" validate:"gt=0"`
	CustomerTTL time.Duration `mapstructure:"customer_ttl" validate:"gt=0"`
}

type StorageConfig struct {
	Driver    string `mapstructure:"driver" validate:"oneof=local s3"`
	LocalPath string `mapstructure:"local_path"`
	S3Bucket  string `mapstructure:"s3_bucket" validate:"required_if=Driver s3"`
	S3Region  string `mapstructure:"s3_region"`
	S3BaseURL string `mapstructure:"s3_base_url"`
}

type ImagesConfig struct {
	MaxWidth    int   `mapstructure:"max_width" validate:"gte=0"`
	MaxHeight   int   `mapstructure:"max_height" validate:"gte=0"`
	JPEGQuality int   `mapstructure:"jpeg_quality" validate:"gte=1,lte=100"`
	MaxUpload   int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

type EventsConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=none kafka rabbitmq"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

type RabbitMQConfig struct {
	URL       string `mapstructure:"url"`
	QueueName string `mapstructure:"queue_name"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

type OverviewConfig struct {
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	WarmInterval time.Duration `mapstructure:"warm_interval"`
}

func LoadConfig() (*viper.Viper, error) {

	// .env is optional, real environment wins over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()
	for _, key := range envOnlyKeys {
		if err := viperInstance.BindEnv(key); err != nil {
			return nil, err
		}
	}

	err := viperInstance.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// keys without defaults are invisible to Unmarshal unless bound explicitly
var envOnlyKeys = []string{
	"jwt.secret",
	"postgres.user", "postgres.password", "postgres.dbname",
	"redis.host", "redis.password",
	"storage.s3_bucket", "storage.s3_region", "storage.s3_base_url",
	"kafka.brokers", "rabbitmq.url",
	"telegram.bot_token", "telegram.chat_id",
}

// setDefaults устанавливает значения по умолчанию
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.app_version", "1.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "http://localhost:5000")

	v.SetDefault("database.driver", "postgres")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 25)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "car_rental")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("jwt.admin_ttl", 24*time.Hour)
	v.SetDefault("jwt.customer_ttl", 7*24*time.Hour)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local_path", "./uploads")

	v.SetDefault("images.max_width", 1600)
	v.SetDefault("images.max_height", 1200)
	v.SetDefault("images.jpeg_quality", 85)
	v.SetDefault("images.max_upload_bytes", 10<<20)

	v.SetDefault("events.driver", "none")
	v.SetDefault("kafka.topic", "car-rental-events")
	v.SetDefault("kafka.group_id", "car-rental-notifier")
	v.SetDefault("rabbitmq.queue_name", "car_rental_events")

	v.SetDefault("overview.cache_ttl", 0)
	v.SetDefault("overview.warm_interval", 0)
}
