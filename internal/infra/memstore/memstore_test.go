package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	storebooking "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	storecustomer "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	storeevent "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	"github.com/m04kA/SMC-EventsService/pkg/ptr"
)

func TestNewSeeded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSeeded(now)
	ctx := context.Background()

	customers, err := NewCustomerRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 4)
	// Сортировка по фамилии
	assert.Equal(t, "Doe", customers[0].LastName)
	assert.Equal(t, "Williams", customers[3].LastName)

	categories, err := NewCategoryRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
	assert.Equal(t, "Birthday", categories[0].Name)

	events, err := NewEventRepository(s).List(ctx, storeevent.EventsFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 3)

	bookings, err := NewBookingRepository(s).List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 4)
}

func TestCustomerRepository_CRUD(t *testing.T) {
	repo := NewCustomerRepository(New())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Customer{
		FirstName:    "Alice",
		LastName:     "Brown",
		MobileNumber: "07123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)

	updated, err := repo.Update(ctx, created.ID, &domain.Customer{
		FirstName:    "Alice",
		LastName:     "Green",
		MobileNumber: "07123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green", updated.LastName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, storecustomer.ErrCustomerNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, storecustomer.ErrCustomerNotFound)
}

func TestEventRepository_List_Filters(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nowFn = func() time.Time { return now }
	defer func() { nowFn = time.Now }()

	repo := NewEventRepository(New())
	ctx := context.Background()

	past := &domain.Event{Name: "Past Gala", CategoryID: 1, Capacity: 10, StartTime: now.Add(-48 * time.Hour)}
	soon := &domain.Event{Name: "Soon Party", CategoryID: 2, Capacity: 20, StartTime: now.Add(24 * time.Hour)}
	later := &domain.Event{Name: "Later Conf", CategoryID: 1, Capacity: 30, StartTime: now.Add(72 * time.Hour)}
	for _, e := range []*domain.Event{later, past, soon} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, storeevent.EventsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Сортировка по времени начала
	assert.Equal(t, "Past Gala", all[0].Name)
	assert.Equal(t, "Later Conf", all[2].Name)

	upcoming, err := repo.List(ctx, storeevent.EventsFilter{UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Soon Party", upcoming[0].Name)

	byCategory, err := repo.List(ctx, storeevent.EventsFilter{CategoryID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
}

func TestBookingRepository_Filters(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	nowFn = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}
	defer func() { nowFn = time.Now }()

	repo := NewBookingRepository(New())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Booking{CustomerID: 1, EventID: 10, Attendees: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Booking{CustomerID: 2, EventID: 10, Attendees: 4})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Booking{CustomerID: 1, EventID: 20, Attendees: 1})
	require.NoError(t, err)

	byEvent, err := repo.GetByEventID(ctx, 10)
	require.NoError(t, err)
	require.Len(t, byEvent, 2)
	// Старые первыми
	assert.Equal(t, int64(1), byEvent[0].ID)

	list, err := repo.List(ctx, domain.BookingsFilter{CustomerID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Новые первыми
	assert.Equal(t, int64(3), list[0].ID)

	updated, err := repo.Update(ctx, 2, &domain.Booking{Attendees: 6, Notes: ptr.Ptr("window seat")})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Attendees)
	assert.Equal(t, int64(2), updated.CustomerID)
	assert.Equal(t, int64(10), updated.EventID)

	_, err = repo.Update(ctx, 99, &domain.Booking{Attendees: 1})
	assert.ErrorIs(t, err, storebooking.ErrBookingNotFound)
}

func TestSMSLogRepository_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	nowFn = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}
	defer func() { nowFn = time.Now }()

	repo := NewSMSLogRepository(New())
	ctx := context.Background()

	_, err := repo.Insert(ctx, &domain.SMSLog{PhoneNumber: "+447123456789", MessageBody: "first", Success: true})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &domain.SMSLog{PhoneNumber: "+447123456789", MessageBody: "second", Success: false, ErrorMessage: ptr.Ptr("timeout")})
	require.NoError(t, err)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].MessageBody)
	assert.False(t, entries[0].Success)
	require.NotNil(t, entries[0].ErrorMessage)
	assert.Equal(t, "first", entries[1].MessageBody)
}

func TestRepositories_ReturnCopies(t *testing.T) {
	repo := NewCustomerRepository(New())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Customer{FirstName: "Sam", LastName: "Hill", MobileNumber: "07000000001"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.FirstName = "Mutated"

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", again.FirstName)
}
