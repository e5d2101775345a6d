package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/sirupsen/logrus"
)

const subscriberSourceWebsite = "website"

// SubscribeResult tells the caller which of the three outcomes happened.
type SubscribeResult int

const (
	SubscribeCreated SubscribeResult = iota
	SubscribeAlreadyActive
	SubscribeReactivated
)

func (r SubscribeResult) Message() string {
	switch r {
	case SubscribeAlreadyActive:
		return "You are already subscribed."
	case SubscribeReactivated:
		return "Welcome back! You are subscribed again."
	default:
		return "Subscription successful. Thank you!"
	}
}

type newsletterService struct {
	repo   database.SubscriberRepository
	events EventPublisher
}

func NewNewsletterService(repo database.SubscriberRepository, events EventPublisher) NewsletterService {
	return &newsletterService{
		repo:   repo,
		events: events,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (SubscribeResult, error) {
	email = normalizeEmail(email)
	if err := validation.Var("email", email, "required,email"); err != nil {
		return 0, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, entity.ErrSubscriberNotFound):
		sub := &entity.Subscriber{
			Email:    email,
			IsActive: true,
			Source:   subscriberSourceWebsite,
		}
		if err := s.repo.Create(ctx, sub); err != nil {
			return 0, fmt.Errorf("failed to create subscriber: %w", err)
		}
		logrus.WithField("email", email).Info("New newsletter subscriber")
		publishEvent(ctx, s.events, entity.DomainEvent{Type: entity.EventSubscriberJoined, Email: email})
		return SubscribeCreated, nil
	case err != nil:
		return 0, err
	}

	if existing.IsActive {
		return SubscribeAlreadyActive, nil
	}

	existing.IsActive = true
	if err := s.repo.Update(ctx, existing); err != nil {
		return 0, err
	}
	publishEvent(ctx, s.events, entity.DomainEvent{Type: entity.EventSubscriberJoined, Email: email})
	return SubscribeReactivated, nil
}

func (s *newsletterService) ListSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subs, nil
}

func (s *newsletterService) ToggleSubscriber(ctx context.Context, id string) (*entity.Subscriber, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.IsActive = !sub.IsActive
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *newsletterService) DeleteSubscriber(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
