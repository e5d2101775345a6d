package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
)

// in-memory repositories shared by the service tests

var clock = time.Date(2025, time.March, 12, 14, 0, 0, 0, time.UTC)

type memCars struct {
	mu      sync.Mutex
	items   map[string]entity.Car
	seq     int
	listErr error
}

func newMemCars(cars ...entity.Car) *memCars {
	m := &memCars{items: map[string]entity.Car{}}
	for _, c := range cars {
		m.items[c.ID] = c
	}
	return m
}

func (m *memCars) Create(_ context.Context, car *entity.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if car.ID == "" {
		car.ID = fmt.Sprintf("car-%d", m.seq)
	}
	car.CreatedAt = clock.Add(time.Duration(m.seq) * time.Minute)
	m.items[car.ID] = *car
	return nil
}

func (m *memCars) GetByID(_ context.Context, id string) (*entity.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	car, ok := m.items[id]
	if !ok {
		return nil, entity.ErrCarNotFound
	}
	return &car, nil
}

func (m *memCars) List(_ context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []entity.Car{}
	for _, c := range m.items {
		if filter.OnlyAvailable && !c.IsAvailable {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memCars) Update(_ context.Context, car *entity.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[car.ID]; !ok {
		return entity.ErrCarNotFound
	}
	m.items[car.ID] = *car
	return nil
}

func (m *memCars) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return entity.ErrCarNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memCars) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), nil
}

type memBookings struct {
	mu      sync.Mutex
	items   map[string]entity.Booking
	seq     int
	listErr error
}

func newMemBookings(bookings ...entity.Booking) *memBookings {
	m := &memBookings{items: map[string]entity.Booking{}}
	for _, b := range bookings {
		m.items[b.ID] = b
	}
	return m
}

func (m *memBookings) Create(_ context.Context, b *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if b.ID == "" {
		b.ID = fmt.Sprintf("booking-%d", m.seq)
	}
	b.CreatedAt = clock.Add(time.Duration(m.seq) * time.Minute)
	m.items[b.ID] = *b
	return nil
}

func (m *memBookings) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	return &b, nil
}

func (m *memBookings) List(_ context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []entity.Booking{}
	for _, b := range m.items {
		if filter.Status != entity.BookingStatusUnknown && !b.Status.Is(filter.Status) {
			continue
		}
		if filter.CustomerEmail != "" && b.CustomerEmail != filter.CustomerEmail {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBookings) Update(_ context.Context, b *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[b.ID]; !ok {
		return entity.ErrBookingNotFound
	}
	m.items[b.ID] = *b
	return nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id string, status entity.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return entity.ErrBookingNotFound
	}
	b.Status = status
	m.items[id] = b
	return nil
}

func (m *memBookings) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return entity.ErrBookingNotFound
	}
	delete(m.items, id)
	return nil
}

type memSubscribers struct {
	items map[string]entity.Subscriber
}

func newMemSubscribers(subs ...entity.Subscriber) *memSubscribers {
	m := &memSubscribers{items: map[string]entity.Subscriber{}}
	for _, s := range subs {
		m.items[s.ID] = s
	}
	return m
}

func (m *memSubscribers) Create(_ context.Context, s *entity.Subscriber) error {
	s.ID = fmt.Sprintf("sub-%d", len(m.items)+1)
	m.items[s.ID] = *s
	return nil
}

func (m *memSubscribers) GetByID(_ context.Context, id string) (*entity.Subscriber, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, entity.ErrSubscriberNotFound
	}
	return &s, nil
}

func (m *memSubscribers) GetByEmail(_ context.Context, email string) (*entity.Subscriber, error) {
	for _, s := range m.items {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, entity.ErrSubscriberNotFound
}

func (m *memSubscribers) List(_ context.Context) ([]entity.Subscriber, error) {
	out := []entity.Subscriber{}
	for _, s := range m.items {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSubscribers) Update(_ context.Context, s *entity.Subscriber) error {
	if _, ok := m.items[s.ID]; !ok {
		return entity.ErrSubscriberNotFound
	}
	m.items[s.ID] = *s
	return nil
}

func (m *memSubscribers) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return entity.ErrSubscriberNotFound
	}
	delete(m.items, id)
	return nil
}

type memAdmins struct {
	items map[string]entity.AdminUser
}

func newMemAdmins() *memAdmins {
	return &memAdmins{items: map[string]entity.AdminUser{}}
}

func (m *memAdmins) Create(_ context.Context, a *entity.AdminUser) error {
	for _, existing := range m.items {
		if existing.Email == a.Email {
			return entity.ErrEmailTaken
		}
	}
	a.ID = fmt.Sprintf("admin-%d", len(m.items)+1)
	m.items[a.ID] = *a
	return nil
}

func (m *memAdmins) GetByID(_ context.Context, id string) (*entity.AdminUser, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, entity.ErrAdminNotFound
	}
	return &a, nil
}

func (m *memAdmins) GetByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	for _, a := range m.items {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, entity.ErrAdminNotFound
}

func (m *memAdmins) List(_ context.Context) ([]entity.AdminUser, error) {
	out := []entity.AdminUser{}
	for _, a := range m.items {
		out = append(out, a)
	}
	return out, nil
}

func (m *memAdmins) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

func (m *memAdmins) UpdatePassword(_ context.Context, id, hash string) error {
	a, ok := m.items[id]
	if !ok {
		return entity.ErrAdminNotFound
	}
	a.PasswordHash = hash
	m.items[id] = a
	return nil
}

func (m *memAdmins) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return entity.ErrAdminNotFound
	}
	delete(m.items, id)
	return nil
}

type memCustomers struct {
	items map[string]entity.Customer
}

func newMemCustomers() *memCustomers {
	return &memCustomers{items: map[string]entity.Customer{}}
}

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	c.ID = fmt.Sprintf("user-%d", len(m.items)+1)
	m.items[c.ID] = *c
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *memCustomers) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range m.items {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, entity.ErrCustomerNotFound
}

type memBlogs struct {
	items map[string]entity.BlogPost
}

func newMemBlogs() *memBlogs {
	return &memBlogs{items: map[string]entity.BlogPost{}}
}

func (m *memBlogs) Create(_ context.Context, p *entity.BlogPost) error {
	p.ID = fmt.Sprintf("post-%d", len(m.items)+1)
	m.items[p.ID] = *p
	return nil
}

func (m *memBlogs) GetByID(_ context.Context, id string) (*entity.BlogPost, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, entity.ErrBlogPostNotFound
	}
	return &p, nil
}

func (m *memBlogs) List(_ context.Context) ([]entity.BlogPost, error) {
	out := []entity.BlogPost{}
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, nil
}

func (m *memBlogs) Update(_ context.Context, p *entity.BlogPost) error {
	if _, ok := m.items[p.ID]; !ok {
		return entity.ErrBlogPostNotFound
	}
	m.items[p.ID] = *p
	return nil
}

func (m *memBlogs) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return entity.ErrBlogPostNotFound
	}
	delete(m.items, id)
	return nil
}

type memTestimonials struct {
	items map[string]entity.Testimonial
}

func newMemTestimonials() *memTestimonials {
	return &memTestimonials{items: map[string]entity.Testimonial{}}
}

func (m *memTestimonials) Create(_ context.Context, t *entity.Testimonial) error {
	t.ID = fmt.Sprintf("t-%d", len(m.items)+1)
	m.items[t.ID] = *t
	return nil
}

func (m *memTestimonials) GetByID(_ context.Context, id string) (*entity.Testimonial, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, entity.ErrTestimonialNotFound
	}
	return &t, nil
}

func (m *memTestimonials) List(_ context.Context, onlyActive bool) ([]entity.Testimonial, error) {
	out := []entity.Testimonial{}
	for _, t := range m.items {
		if onlyActive && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTestimonials) Update(_ context.Context, t *entity.Testimonial) error {
	if _, ok := m.items[t.ID]; !ok {
		return entity.ErrTestimonialNotFound
	}
	m.items[t.ID] = *t
	return nil
}

func (m *memTestimonials) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return entity.ErrTestimonialNotFound
	}
	delete(m.items, id)
	return nil
}

type recordingPublisher struct {
	events []entity.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, message interface{}) error {
	if e, ok := message.(entity.DomainEvent); ok {
		p.events = append(p.events, e)
	}
	return p.err
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

type memCache struct {
	stored  *entity.Overview
	sets    int
	dropped int
	getErr  error
	onSet   func()
}

func (c *memCache) Get(context.Context) (*entity.Overview, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.stored == nil {
		return nil, database.ErrCacheMiss
	}
	return c.stored, nil
}

func (c *memCache) Set(_ context.Context, o *entity.Overview) error {
	if c.onSet != nil {
		c.onSet()
	}
	c.stored = o
	c.sets++
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.stored = nil
	c.dropped++
	return nil
}

type stubTokens struct {
	issued []entity.Claims
}

func (s *stubTokens) Issue(claims entity.Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}
	s.issued = append(s.issued, claims)
	return "token-for-" + claims.ID, nil
}

func ptr[T any](v T) *T { return &v }

var (
	_ database.CarRepository         = (*memCars)(nil)
	_ database.BookingRepository     = (*memBookings)(nil)
	_ database.SubscriberRepository  = (*memSubscribers)(nil)
	_ database.AdminRepository       = (*memAdmins)(nil)
	_ database.CustomerRepository    = (*memCustomers)(nil)
	_ database.BlogRepository        = (*memBlogs)(nil)
	_ database.TestimonialRepository = (*memTestimonials)(nil)
	_ database.OverviewCache         = (*memCache)(nil)
)
