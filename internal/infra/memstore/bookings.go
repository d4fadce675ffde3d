package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	storebooking "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
)

// BookingRepository in-memory реализация репозитория бронирований
type BookingRepository struct {
	store *Store
}

// NewBookingRepository создает репозиторий бронирований поверх хранилища
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create создает новое бронирование
func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextBookingID++
	booking.ID = r.store.nextBookingID
	booking.CreatedAt = nowFn()
	r.store.bookings[booking.ID] = cloneBooking(booking)

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, storebooking.ErrBookingNotFound
	}

	return cloneBooking(booking), nil
}

// GetByEventID получает все бронирования мероприятия (старые первыми)
func (r *BookingRepository) GetByEventID(_ context.Context, eventID int64) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.EventID == eventID {
			bookings = append(bookings, cloneBooking(b))
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
	})

	return bookings, nil
}

// List получает бронирования с фильтрацией (новые первыми)
func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if filter.EventID != nil && b.EventID != *filter.EventID {
			continue
		}
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		bookings = append(bookings, cloneBooking(b))
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

// Update обновляет число мест и заметки бронирования
func (r *BookingRepository) Update(_ context.Context, id int64, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.bookings[id]
	if !ok {
		return nil, storebooking.ErrBookingNotFound
	}

	existing.Attendees = booking.Attendees
	existing.Notes = cloneStr(booking.Notes)

	return cloneBooking(existing), nil
}

// Delete удаляет бронирование
func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[id]; !ok {
		return storebooking.ErrBookingNotFound
	}

	delete(r.store.bookings, id)
	return nil
}
