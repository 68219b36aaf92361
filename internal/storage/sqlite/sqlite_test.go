package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSchemaInitIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := New(path)
	require.NoError(t, err)

	_, err = s1.SaveService("Logo Design", "Custom logos", 49.99, "Ana", "ana@x.com")
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// second startup against the same file must not touch existing data
	s2, err := New(path)
	require.NoError(t, err)
	defer s2.Close()

	services, err := s2.ListServices(0)
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestSaveAndGetService(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	id, err := s.SaveService("Logo Design", "Custom logos for small businesses", 49.99, "Ana", "ana@x.com")
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.GetService(id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Logo Design", got.Title)
	assert.Equal(t, "Custom logos for small businesses", got.Description)
	assert.Equal(t, 49.99, got.Price)
	assert.Equal(t, "Ana", got.ProviderName)
	assert.Equal(t, "ana@x.com", got.ProviderEmail)
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)
}

func TestGetServiceNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	_, err := s.GetService(9999)
	assert.ErrorIs(t, err, storage.ErrServiceNotFound)

	_, _, err = s.GetServiceWithBookings(9999)
	assert.ErrorIs(t, err, storage.ErrServiceNotFound)
}

func TestListServicesOrderAndLimit(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	var lastID int64
	for i := 1; i <= 8; i++ {
		id, err := s.SaveService(
			fmt.Sprintf("Service %d", i),
			"description",
			float64(i),
			"Provider",
			"provider@x.com",
		)
		require.NoError(t, err)
		lastID = id
	}

	all, err := s.ListServices(0)
	require.NoError(t, err)
	require.Len(t, all, 8)

	// newest first
	assert.Equal(t, lastID, all[0].ID)
	assert.Equal(t, "Service 8", all[0].Title)
	assert.Equal(t, "Service 1", all[7].Title)

	recent, err := s.ListServices(6)
	require.NoError(t, err)
	require.Len(t, recent, 6)
	assert.Equal(t, "Service 8", recent[0].Title)
	assert.Equal(t, "Service 3", recent[5].Title)
}

func TestSaveBookingAndListByService(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	serviceID, err := s.SaveService("Logo Design", "Custom logos", 49.99, "Ana", "ana@x.com")
	require.NoError(t, err)

	otherID, err := s.SaveService("Lawn Mowing", "Weekly lawn care", 25, "Cy", "cy@x.com")
	require.NoError(t, err)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	bookingID, err := s.SaveBooking(serviceID, "Bo", "bo@x.com", date)
	require.NoError(t, err)
	require.Positive(t, bookingID)

	_, err = s.SaveBooking(otherID, "Dee", "dee@x.com", date)
	require.NoError(t, err)

	service, bookings, err := s.GetServiceWithBookings(serviceID)
	require.NoError(t, err)

	assert.Equal(t, serviceID, service.ID)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, bookingID, b.ID)
	assert.Equal(t, serviceID, b.ServiceID)
	assert.Equal(t, "Bo", b.ClientName)
	assert.Equal(t, "bo@x.com", b.ClientEmail)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "2024-05-01", b.BookingDate.Format("2006-01-02"))
}

func TestDuplicateBookingsAreAccepted(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	serviceID, err := s.SaveService("Logo Design", "Custom logos", 49.99, "Ana", "ana@x.com")
	require.NoError(t, err)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err = s.SaveBooking(serviceID, "Bo", "bo@x.com", date)
	require.NoError(t, err)

	// same client, same date: no conflict detection exists
	_, err = s.SaveBooking(serviceID, "Bo", "bo@x.com", date)
	require.NoError(t, err)

	_, bookings, err := s.GetServiceWithBookings(serviceID)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
