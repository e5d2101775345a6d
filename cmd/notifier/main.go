// notifier reads domain events from the broker and forwards them to Telegram.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ds124wfegd/car-rental/config"
	"github.com/ds124wfegd/car-rental/internal/appServer"
	"github.com/ds124wfegd/car-rental/internal/notifier"
	"github.com/ds124wfegd/car-rental/internal/pkg/kafka"
	"github.com/ds124wfegd/car-rental/internal/rabbitMQ"
	"github.com/ds124wfegd/car-rental/pkg/telegram"
	"github.com/sirupsen/logrus"
)

type consumer interface {
	Consume(ctx context.Context, handler func(message []byte) error) error
	Close() error
}

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}
	appServer.SetupLogger(cfg)

	var source consumer
	switch cfg.Events.Driver {
	case "kafka":
		source = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	case "rabbitmq":
		rabbit, err := rabbitMQ.NewRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			logrus.Fatalf("Failed to initialize RabbitMQ: %v", err)
		}
		source = rabbit
	default:
		logrus.Fatal("events.driver must be kafka or rabbitmq to run the notifier")
	}
	defer source.Close()

	// без токена уведомления только пишутся в лог
	var sender notifier.Sender
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		sender = telegram.NewBot(cfg.Telegram.BotToken)
		logrus.Info("Telegram bot initialized")
	} else {
		logrus.Warn("Telegram bot token or chat id not provided, notifications are only logged")
	}
	n := notifier.New(sender, cfg.Telegram.ChatID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.WithField("driver", cfg.Events.Driver).Info("Notifier started")
	err = source.Consume(ctx, func(message []byte) error {
		return n.Handle(ctx, message)
	})
	if err != nil {
		logrus.Errorf("Consumer stopped with error: %v", err)
	}
	logrus.Info("Notifier stopped")
}
