package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/mocks/port/core"
)

func TestAddCalendarMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "regular mid-month addition",
			start:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			months:   2,
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to feb 29 in a leap year",
			start:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to feb 28 outside a leap year",
			start:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "mar 31 clamps to apr 30",
			start:    time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "crosses a year boundary",
			start:    time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "twelve months lands on the same day next year",
			start:    time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
			months:   12,
			expected: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddCalendarMonths(tt.start, tt.months))
		})
	}
}

func TestNewUserServer(t *testing.T) {
	fixedTime := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	newClock := func() *core.MockTimeProvider {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		return tp
	}

	t.Run("should create an active server with a clamped expiry", func(t *testing.T) {
		server, err := NewUserServer("user-1", 3, "my-blog", 1, newClock())

		assert.NoError(t, err)
		assert.Equal(t, StatusActive, server.Status)
		assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), server.ExpiresAt)
	})

	t.Run("should reject a server name shorter than 3 characters", func(t *testing.T) {
		_, err := NewUserServer("user-1", 3, "ab", 1, newClock())

		assert.ErrorIs(t, err, errs.ErrValidation)
		var validationErr *errs.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "server_name")
	})

	t.Run("should reject months outside 1-24", func(t *testing.T) {
		for _, months := range []int{0, -1, 25} {
			_, err := NewUserServer("user-1", 3, "my-blog", months, newClock())
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})

	t.Run("should reject a missing user id", func(t *testing.T) {
		_, err := NewUserServer("", 3, "my-blog", 1, newClock())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUserServer_Extend(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(fixedTime)

	t.Run("should push the expiry out by calendar months", func(t *testing.T) {
		server := &UserServer{
			UserID:    "user-1",
			Status:    StatusActive,
			ExpiresAt: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		}

		err := server.Extend(1, tp)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), server.ExpiresAt)
		assert.Equal(t, fixedTime, server.UpdatedAt)
	})

	t.Run("should reject months outside 1-24", func(t *testing.T) {
		server := &UserServer{ExpiresAt: fixedTime}
		assert.ErrorIs(t, server.Extend(0, tp), errs.ErrValidation)
		assert.ErrorIs(t, server.Extend(25, tp), errs.ErrValidation)
	})
}

func TestUserServer_IsOwnedBy(t *testing.T) {
	server := &UserServer{UserID: "user-1"}

	assert.True(t, server.IsOwnedBy("user-1"))
	assert.False(t, server.IsOwnedBy("user-2"))
}

func TestUserServer_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(now)

	t.Run("active server past its expiry is expired", func(t *testing.T) {
		server := &UserServer{Status: StatusActive, ExpiresAt: now.Add(-time.Hour)}
		assert.True(t, server.IsExpired(tp))
	})

	t.Run("active server before its expiry is not expired", func(t *testing.T) {
		server := &UserServer{Status: StatusActive, ExpiresAt: now.Add(time.Hour)}
		assert.False(t, server.IsExpired(tp))
	})

	t.Run("terminated server is never reported expired", func(t *testing.T) {
		server := &UserServer{Status: StatusTerminated, ExpiresAt: now.Add(-time.Hour)}
		assert.False(t, server.IsExpired(tp))
	})
}
