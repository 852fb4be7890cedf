// Package booking drives booking creation and the "My Bookings" lifecycle view.
package booking

import (
	"context"
	"errors"

	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
)

const (
	msgLoginRequired  = "Please log in to make a booking"
	msgSessionExpired = "Your session has expired. Please log in again"
)

var (
	ErrAuthRequired  = errors.New(msgLoginRequired)
	ErrMissingDates  = errors.New("Please select check-in and check-out dates")
	ErrInvalidDates  = errors.New("Check-out date must be after check-in date")
	ErrInvalidGuests = errors.New("Number of guests must be at least 1")
	ErrInvalidPrice  = errors.New("Total price must be greater than 0")
	ErrBusy          = errors.New("a booking is already being submitted")
	ErrClosed        = errors.New("booking form is closed")
	ErrUnknownFilter = errors.New("unknown booking filter")
	ErrNotFound      = errors.New("booking not found")
)

//go:generate mockgen -source=booking.go -destination=mocks/booking_mock.go -package=mocks

type Gateway interface {
	CreateBooking(ctx context.Context, token string, in gateway.BookingInput) (models.Booking, error)
	UserBookings(ctx context.Context, token string, userID int64) ([]models.Booking, error)
	CancelBooking(ctx context.Context, token string, id int64) (models.Booking, error)
	ConfirmBooking(ctx context.Context, token string, id int64) (models.Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error
}

type Session interface {
	IsAuthenticated() bool
	User() (models.User, bool)
	Token() string
	Logout(ctx context.Context)
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// expireSession logs out after the backend rejected token, unless a newer
// login has already replaced it.
func expireSession(ctx context.Context, sess Session, token string) {
	if sess.Token() != token {
		return
	}
	log := logger.Get()
	log.Info().Msg("cms rejected session token, logging out")
	sess.Logout(ctx)
}

// failureMessage is the notice for a failed backend call.
func failureMessage(err error, fallback string) string {
	if gateway.IsUnauthorized(err) {
		return msgSessionExpired
	}
	return fallback
}
