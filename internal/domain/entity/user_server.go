package entity

import (
	"time"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
)

// ServerStatus represents the lifecycle state of a purchased server
type ServerStatus string

// Server statuses
const (
	StatusActive     ServerStatus = "active"
	StatusSuspended  ServerStatus = "suspended"
	StatusTerminated ServerStatus = "terminated"
)

// UserServer is a purchase record. Nothing is ever physically provisioned;
// the row and its expiry are the whole product.
type UserServer struct {
	ID         uint64
	UserID     string // Owning user
	ConfigID   uint64 // Tier reference, not cascaded on config deletion
	ServerName string
	Status     ServerStatus
	IPAddress  string // Present in the schema, never assigned by the app
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUserServer creates a purchase record expiring the given number of
// calendar months from now
func NewUserServer(userID string, configID uint64, serverName string, months int,
	timeProvider coreport.TimeProvider) (*UserServer, error) {
	fields := map[string]string{}
	if userID == "" {
		fields["user_id"] = "user_id is required"
	}
	if configID == 0 {
		fields["config_id"] = "config_id is required"
	}
	if len(serverName) < 3 || len(serverName) > 50 {
		fields["server_name"] = "server_name must be between 3 and 50 characters"
	}
	if months < 1 || months > 24 {
		fields["months"] = "months must be between 1 and 24"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	now := timeProvider.Now()
	return &UserServer{
		UserID:     userID,
		ConfigID:   configID,
		ServerName: serverName,
		Status:     StatusActive,
		ExpiresAt:  AddCalendarMonths(now, months),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsOwnedBy checks whether the server belongs to the given user
func (s *UserServer) IsOwnedBy(userID string) bool {
	return s.UserID == userID
}

// IsExpired checks whether the server is past its expiry
func (s *UserServer) IsExpired(timeProvider coreport.TimeProvider) bool {
	return s.Status == StatusActive && s.ExpiresAt.Before(timeProvider.Now())
}

// Extend pushes the expiry out by the given number of calendar months
func (s *UserServer) Extend(months int, timeProvider coreport.TimeProvider) error {
	if months < 1 || months > 24 {
		return errs.NewValidationError(map[string]string{"months": "months must be between 1 and 24"})
	}
	s.ExpiresAt = AddCalendarMonths(s.ExpiresAt, months)
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// Suspend marks the server suspended. Administrative transition only.
func (s *UserServer) Suspend(timeProvider coreport.TimeProvider) {
	s.Status = StatusSuspended
	s.UpdatedAt = timeProvider.Now()
}

// Terminate marks the server terminated. Administrative transition only.
func (s *UserServer) Terminate(timeProvider coreport.TimeProvider) {
	s.Status = StatusTerminated
	s.UpdatedAt = timeProvider.Now()
}

// AddCalendarMonths adds calendar months, clamping the day to the end of the
// target month: Jan 31 + 1 month is Feb 29 in a leap year, Feb 28 otherwise.
// time.AddDate would normalize the overflow into March instead.
func AddCalendarMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	month += time.Month(months)

	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
