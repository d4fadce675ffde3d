// Package memstore хранит данные сервиса в памяти процесса.
// Используется в mock-режиме, когда в конфигурации выключена БД
// ([database].enabled = false). Репозитории возвращают те же
// sentinel-ошибки, что и Postgres-реализации, поэтому usecase-слой
// не знает, с каким хранилищем он работает.
package memstore

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/pkg/ptr"
)

// nowFn подменяется в тестах
var nowFn = time.Now

// Store общее состояние in-memory хранилища.
// Все репозитории разделяют один мьютекс.
type Store struct {
	mu sync.RWMutex

	customers  map[int64]*domain.Customer
	categories map[int64]*domain.EventCategory
	events     map[int64]*domain.Event
	bookings   map[int64]*domain.Booking
	smsLogs    []*domain.SMSLog

	nextCustomerID int64
	nextCategoryID int64
	nextEventID    int64
	nextBookingID  int64
	nextSMSLogID   int64
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		customers:  make(map[int64]*domain.Customer),
		categories: make(map[int64]*domain.EventCategory),
		events:     make(map[int64]*domain.Event),
		bookings:   make(map[int64]*domain.Booking),
		smsLogs:    make([]*domain.SMSLog, 0),
	}
}

// NewSeeded создает хранилище с демонстрационными данными,
// чтобы mock-режим был пригоден для ручной проверки API.
func NewSeeded(now time.Time) *Store {
	s := New()

	categories := []*domain.EventCategory{
		{Name: "Wedding", DefaultCapacity: 100, DefaultStartTime: "14:00"},
		{Name: "Corporate", DefaultCapacity: 50, DefaultStartTime: "09:00"},
		{Name: "Birthday", DefaultCapacity: 30, DefaultStartTime: "18:00"},
		{Name: "Conference", DefaultCapacity: 150, DefaultStartTime: "10:00"},
	}
	for _, c := range categories {
		s.nextCategoryID++
		c.ID = s.nextCategoryID
		c.CreatedAt = now
		s.categories[c.ID] = c
	}

	customers := []*domain.Customer{
		{FirstName: "John", LastName: "Doe", MobileNumber: "+14155552671"},
		{FirstName: "Jane", LastName: "Smith", MobileNumber: "+14155552672"},
		{FirstName: "Robert", LastName: "Johnson", MobileNumber: "+14155552673"},
		{FirstName: "Emily", LastName: "Williams", MobileNumber: "+14155552674"},
	}
	for _, c := range customers {
		s.nextCustomerID++
		c.ID = s.nextCustomerID
		c.CreatedAt = now
		s.customers[c.ID] = c
	}

	events := []*domain.Event{
		{Name: "Summer Wedding", CategoryID: 1, Capacity: 80, StartTime: now.Add(7 * 24 * time.Hour), Notes: ptr.Ptr("Outdoor venue")},
		{Name: "Tech Conference", CategoryID: 4, Capacity: 120, StartTime: now.Add(14 * 24 * time.Hour), Notes: ptr.Ptr("Requires AV setup")},
		{Name: "Birthday Party", CategoryID: 3, Capacity: 25, StartTime: now.Add(3 * 24 * time.Hour), Notes: ptr.Ptr("Cake and decorations needed")},
	}
	for _, e := range events {
		s.nextEventID++
		e.ID = s.nextEventID
		e.CreatedAt = now
		s.events[e.ID] = e
	}

	bookings := []*domain.Booking{
		{CustomerID: 1, EventID: 1, Attendees: 2, Notes: ptr.Ptr("Vegetarian meal required")},
		{CustomerID: 2, EventID: 1, Attendees: 4, Notes: ptr.Ptr("Table near stage")},
		{CustomerID: 3, EventID: 2, Attendees: 1},
		{CustomerID: 4, EventID: 3, Attendees: 3, Notes: ptr.Ptr("Special needs accessibility")},
	}
	for i, b := range bookings {
		s.nextBookingID++
		b.ID = s.nextBookingID
		// Разные created_at, чтобы сортировка списков была устойчивой
		b.CreatedAt = now.Add(time.Duration(i) * time.Second)
		s.bookings[b.ID] = b
	}

	return s
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	out := *c
	out.Notes = cloneStr(c.Notes)
	return &out
}

func cloneCategory(c *domain.EventCategory) *domain.EventCategory {
	out := *c
	out.Notes = cloneStr(c.Notes)
	return &out
}

func cloneEvent(e *domain.Event) *domain.Event {
	out := *e
	out.Notes = cloneStr(e.Notes)
	out.Category = nil
	return &out
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	out := *b
	out.Notes = cloneStr(b.Notes)
	out.Customer = nil
	out.Event = nil
	return &out
}

func cloneSMSLog(l *domain.SMSLog) *domain.SMSLog {
	out := *l
	out.ErrorMessage = cloneStr(l.ErrorMessage)
	return &out
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
