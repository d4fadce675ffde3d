package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/pkg/ptr"
)

func bookings(attendees ...int) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(attendees))
	for i, a := range attendees {
		result = append(result, &domain.Booking{ID: int64(i + 1), Attendees: a})
	}
	return result
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		bookings []*domain.Booking
		want     int
	}{
		{"no bookings", 50, nil, 50},
		{"partial", 50, bookings(10, 5), 35},
		{"full", 50, bookings(48, 2), 0},
		{"over capacity keeps true negative value", 10, bookings(8, 5), -3},
		{"reminder-only bookings consume nothing", 10, bookings(0, 0, 4), 6},
		{"zero capacity", 0, bookings(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(tt.capacity, tt.bookings))
		})
	}
}

func TestDisplayRemaining_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, DisplayRemaining(10, bookings(8, 5)))
	assert.Equal(t, 2, DisplayRemaining(10, bookings(8)))
	assert.Equal(t, 0, DisplayRemaining(0, nil))
}

func TestCanAccept_FitsExactly(t *testing.T) {
	// вместимость 50, занято 48, запрос на 2: принимаем, остаток 0
	d := CanAccept(50, bookings(30, 18), 2, nil)

	assert.True(t, d.Accepted)
	assert.Equal(t, 2, d.Available)
	assert.Equal(t, 0, d.Shortfall)
	assert.Equal(t, 0, Remaining(50, append(bookings(30, 18), &domain.Booking{ID: 99, Attendees: 2})))
}

func TestCanAccept_RejectsWithShortfall(t *testing.T) {
	// вместимость 50, занято 48, запрос на 3: отказ, не хватает 1 места
	d := CanAccept(50, bookings(30, 18), 3, nil)

	assert.False(t, d.Accepted)
	assert.Equal(t, 3, d.Requested)
	assert.Equal(t, 2, d.Available)
	assert.Equal(t, 1, d.Shortfall)
}

func TestCanAccept_ZeroAttendeesAlwaysAccepted(t *testing.T) {
	assert.True(t, CanAccept(0, nil, 0, nil).Accepted)
	assert.True(t, CanAccept(5, bookings(5), 0, nil).Accepted)
	assert.True(t, CanAccept(10, bookings(8, 5), 0, nil).Accepted)
}

func TestCanAccept_ZeroCapacityRejectsAnySeats(t *testing.T) {
	d := CanAccept(0, nil, 1, nil)

	assert.False(t, d.Accepted)
	assert.Equal(t, 1, d.Shortfall)
}

func TestCanAccept_SelfExclusionOnEdit(t *testing.T) {
	// бронирование id=1 на 5 мест, у события остаток 10 без учета него;
	// редактирование до 15 мест допустимо (10 + собственные 5)
	existing := []*domain.Booking{
		{ID: 1, Attendees: 5},
		{ID: 2, Attendees: 10},
	}

	d := CanAccept(25, existing, 15, ptr.Ptr(int64(1)))
	assert.True(t, d.Accepted)
	assert.Equal(t, 15, d.Available)

	d = CanAccept(25, existing, 16, ptr.Ptr(int64(1)))
	assert.False(t, d.Accepted)
	assert.Equal(t, 1, d.Shortfall)
}

func TestCanAccept_EditToSameCountAlwaysAccepted(t *testing.T) {
	// повторное сохранение с тем же числом мест проходит даже при
	// полностью занятом событии
	existing := []*domain.Booking{
		{ID: 1, Attendees: 5},
		{ID: 2, Attendees: 5},
	}

	d := CanAccept(10, existing, 5, ptr.Ptr(int64(1)))
	assert.True(t, d.Accepted)
}

func TestCanAccept_Monotonic(t *testing.T) {
	// увеличение запроса может только перевести accept -> reject
	existing := bookings(3, 4)
	acceptedBefore := true

	for requested := 0; requested <= 20; requested++ {
		d := CanAccept(10, existing, requested, nil)
		if !acceptedBefore {
			assert.False(t, d.Accepted, "requested=%d", requested)
		}
		acceptedBefore = d.Accepted
	}
}
