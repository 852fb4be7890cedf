package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

// BookingInput is the body of a create or localization request.
type BookingInput struct {
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	TotalPrice      float64
	Status          models.BookingStatus
	AccommodationID string
	ActivityID      string
	Notes           string
	UserID          int64
	Locale          string
}

// BookingPatch carries only the fields to change.
type BookingPatch struct {
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int
	TotalPrice      *float64
	Status          *models.BookingStatus
	AccommodationID *string
	ActivityID      *string
	Notes           *string
}

type BookingFilter struct {
	Status          models.BookingStatus
	UserID          int64
	AccommodationID string
}

type bookingPayload struct {
	CheckInDate     string               `json:"checkInDate,omitempty"`
	CheckOutDate    string               `json:"checkOutDate,omitempty"`
	NumberOfGuests  *int                 `json:"numberOfGuests,omitempty"`
	TotalPrice      *float64             `json:"totalPrice,omitempty"`
	Status          models.BookingStatus `json:"status,omitempty"`
	AccommodationID *string              `json:"accommodationId,omitempty"`
	ActivityID      *string              `json:"activityId,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	User            int64                `json:"user,omitempty"`
	Locale          string               `json:"locale,omitempty"`
}

type dataWrapper struct {
	Data any `json:"data"`
}

type bookingWire struct {
	ID              flexID               `json:"id"`
	CheckInDate     flexTime             `json:"checkInDate"`
	CheckOutDate    flexTime             `json:"checkOutDate"`
	NumberOfGuests  int                  `json:"numberOfGuests"`
	TotalPrice      float64              `json:"totalPrice"`
	Status          models.BookingStatus `json:"status"`
	AccommodationID flexID               `json:"accommodationId"`
	ActivityID      flexID               `json:"activityId"`
	Notes           string               `json:"notes"`
	User            json.RawMessage      `json:"user"`
	CreatedAt       flexTime             `json:"createdAt"`
}

func (w bookingWire) model() models.Booking {
	userID, _ := strconv.ParseInt(relationID(w.User), 10, 64)
	return models.Booking{
		ID:              w.ID.Int64(),
		CheckInDate:     time.Time(w.CheckInDate),
		CheckOutDate:    time.Time(w.CheckOutDate),
		NumberOfGuests:  w.NumberOfGuests,
		TotalPrice:      w.TotalPrice,
		Status:          w.Status,
		AccommodationID: string(w.AccommodationID),
		ActivityID:      string(w.ActivityID),
		Notes:           w.Notes,
		UserID:          userID,
		CreatedAt:       time.Time(w.CreatedAt),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func bookingID(id int64) string {
	return "/bookings/" + strconv.FormatInt(id, 10)
}

func (c *Client) oneBooking(ctx context.Context, r request) (models.Booking, error) {
	raw, err := c.data(ctx, r)
	if err != nil {
		return models.Booking{}, err
	}
	var w bookingWire
	if err := decodeOne(raw, &w); err != nil {
		return models.Booking{}, &APIError{Message: r.fallback, Err: fmt.Errorf("decode booking: %w", err)}
	}
	return w.model(), nil
}

func (c *Client) manyBookings(ctx context.Context, r request) ([]models.Booking, error) {
	raw, err := c.data(ctx, r)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[bookingWire](raw)
	if err != nil {
		return nil, &APIError{Message: r.fallback, Err: fmt.Errorf("decode bookings: %w", err)}
	}
	out := make([]models.Booking, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.model())
	}
	return out, nil
}

// CreateBooking posts a new booking owned by in.UserID. Status defaults to pending.
func (c *Client) CreateBooking(ctx context.Context, token string, in BookingInput) (models.Booking, error) {
	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	notes := in.Notes
	return c.oneBooking(ctx, request{
		method: http.MethodPost,
		path:   "/bookings",
		token:  token,
		body: dataWrapper{Data: bookingPayload{
			CheckInDate:     formatDate(in.CheckInDate),
			CheckOutDate:    formatDate(in.CheckOutDate),
			NumberOfGuests:  &in.NumberOfGuests,
			TotalPrice:      &in.TotalPrice,
			Status:          status,
			AccommodationID: optional(in.AccommodationID),
			ActivityID:      optional(in.ActivityID),
			Notes:           &notes,
			User:            in.UserID,
		}},
		fallback: "Failed to create booking",
	})
}

func (c *Client) ListBookings(ctx context.Context, token string, f BookingFilter) ([]models.Booking, error) {
	q := populateAll()
	if f.Status != "" {
		q.Set("filters[status][$eq]", string(f.Status))
	}
	if f.UserID != 0 {
		q.Set("filters[user][id][$eq]", strconv.FormatInt(f.UserID, 10))
	}
	if f.AccommodationID != "" {
		q.Set("filters[accommodation][id][$eq]", f.AccommodationID)
	}
	return c.manyBookings(ctx, request{
		method:   http.MethodGet,
		path:     "/bookings",
		query:    q,
		token:    token,
		fallback: "Failed to fetch bookings",
	})
}

func (c *Client) UserBookings(ctx context.Context, token string, userID int64) ([]models.Booking, error) {
	q := url.Values{
		"filters[user][id][$eq]": {strconv.FormatInt(userID, 10)},
		"populate":               {"*"},
	}
	return c.manyBookings(ctx, request{
		method:   http.MethodGet,
		path:     "/bookings",
		query:    q,
		token:    token,
		fallback: "Failed to fetch user bookings",
	})
}

func (c *Client) GetBooking(ctx context.Context, token string, id int64) (models.Booking, error) {
	return c.oneBooking(ctx, request{
		method:   http.MethodGet,
		path:     bookingID(id),
		query:    populateAll(),
		token:    token,
		fallback: "Failed to fetch booking",
	})
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, p BookingPatch) (models.Booking, error) {
	payload := bookingPayload{
		NumberOfGuests:  p.NumberOfGuests,
		TotalPrice:      p.TotalPrice,
		AccommodationID: p.AccommodationID,
		ActivityID:      p.ActivityID,
		Notes:           p.Notes,
	}
	if p.CheckInDate != nil {
		payload.CheckInDate = formatDate(*p.CheckInDate)
	}
	if p.CheckOutDate != nil {
		payload.CheckOutDate = formatDate(*p.CheckOutDate)
	}
	if p.Status != nil {
		payload.Status = *p.Status
	}
	return c.oneBooking(ctx, request{
		method:   http.MethodPut,
		path:     bookingID(id),
		token:    token,
		body:     dataWrapper{Data: payload},
		fallback: "Failed to update booking",
	})
}

func (c *Client) CancelBooking(ctx context.Context, token string, id int64) (models.Booking, error) {
	status := models.StatusCancelled
	return c.UpdateBooking(ctx, token, id, BookingPatch{Status: &status})
}

func (c *Client) ConfirmBooking(ctx context.Context, token string, id int64) (models.Booking, error) {
	status := models.StatusConfirmed
	return c.UpdateBooking(ctx, token, id, BookingPatch{Status: &status})
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, request{
		method:   http.MethodDelete,
		path:     bookingID(id),
		token:    token,
		fallback: "Failed to delete booking",
	})
	return err
}

// CreateBookingLocalization adds a translated variant of a booking. Locale defaults to "en".
func (c *Client) CreateBookingLocalization(ctx context.Context, token string, id int64, in BookingInput) (models.Booking, error) {
	locale := in.Locale
	if locale == "" {
		locale = "en"
	}
	notes := in.Notes
	return c.oneBooking(ctx, request{
		method: http.MethodPost,
		path:   bookingID(id) + "/localizations",
		token:  token,
		body: dataWrapper{Data: bookingPayload{
			CheckInDate:    formatDate(in.CheckInDate),
			CheckOutDate:   formatDate(in.CheckOutDate),
			NumberOfGuests: &in.NumberOfGuests,
			TotalPrice:     &in.TotalPrice,
			Status:         in.Status,
			Notes:          &notes,
			Locale:         locale,
		}},
		fallback: "Failed to create booking localization",
	})
}
