package devcms

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/devcms/store"
)

const (
	statusPending = "pending"
	defaultLocale = "en"
)

type bookingFields struct {
	CheckInDate     *string  `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string  `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests  *int     `json:"numberOfGuests" validate:"omitempty,gte=1"`
	TotalPrice      *float64 `json:"totalPrice" validate:"omitempty,gt=0"`
	Status          *string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	AccommodationID *string  `json:"accommodationId"`
	ActivityID      *string  `json:"activityId"`
	Notes           *string  `json:"notes" validate:"omitempty,max=2000"`
	User            *int64   `json:"user"`
	Locale          *string  `json:"locale"`
}

type bookingRequest struct {
	Data bookingFields `json:"data"`
}

func (f bookingFields) apply(b *store.Booking) {
	set(&b.CheckInDate, f.CheckInDate)
	set(&b.CheckOutDate, f.CheckOutDate)
	set(&b.NumberOfGuests, f.NumberOfGuests)
	set(&b.TotalPrice, f.TotalPrice)
	set(&b.Status, f.Status)
	set(&b.AccommodationID, f.AccommodationID)
	set(&b.ActivityID, f.ActivityID)
	set(&b.Notes, f.Notes)
	set(&b.Locale, f.Locale)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// checkRange reports whether the booking ends after it starts. Plain dates
// compare correctly as strings.
func checkRange(b store.Booking) bool {
	return b.CheckOutDate > b.CheckInDate
}

func bookingJSON(b store.Booking, owner *store.User) gin.H {
	attrs := gin.H{
		"checkInDate":     b.CheckInDate,
		"checkOutDate":    b.CheckOutDate,
		"numberOfGuests":  b.NumberOfGuests,
		"totalPrice":      b.TotalPrice,
		"status":          b.Status,
		"accommodationId": b.AccommodationID,
		"activityId":      b.ActivityID,
		"notes":           b.Notes,
		"locale":          b.Locale,
		"createdAt":       b.CreatedAt,
		"updatedAt":       b.UpdatedAt,
		"publishedAt":     b.CreatedAt,
	}
	if owner != nil {
		attrs["user"] = gin.H{"data": gin.H{
			"id": owner.ID,
			"attributes": gin.H{
				"username": owner.Username,
				"email":    owner.Email,
			},
		}}
	}
	return gin.H{"id": b.ID, "documentId": b.DocumentID, "attributes": attrs}
}

func (s *Server) renderBooking(ctx *gin.Context, b store.Booking) gin.H {
	if !populated(ctx) {
		return bookingJSON(b, nil)
	}
	owner, err := s.storage.User(b.UserID)
	if err != nil {
		return bookingJSON(b, nil)
	}
	return bookingJSON(b, &owner)
}

// ownBooking loads the booking named in the path and checks that the
// caller owns it.
func (s *Server) ownBooking(ctx *gin.Context) (store.Booking, bool) {
	id, ok := paramID(ctx)
	if !ok {
		return store.Booking{}, false
	}
	b, err := s.storage.Booking(id)
	if err != nil {
		notFound(ctx)
		return store.Booking{}, false
	}
	if b.UserID != callerID(ctx) {
		forbidden(ctx)
		return store.Booking{}, false
	}
	return b, true
}

// listBookings only ever returns the caller's bookings. A user filter naming
// someone else matches nothing.
func (s *Server) listBookings(ctx *gin.Context) {
	uid := callerID(ctx)
	if v := ctx.Query("filters[user][id][$eq]"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err != nil || id != uid {
			respondList(ctx, []gin.H{})
			return
		}
	}
	list := s.storage.Bookings(store.BookingFilter{
		UserID:          uid,
		Status:          ctx.Query("filters[status][$eq]"),
		AccommodationID: ctx.Query("filters[accommodation][id][$eq]"),
	})
	out := make([]gin.H, 0, len(list))
	for _, b := range list {
		out = append(out, s.renderBooking(ctx, b))
	}
	respondList(ctx, out)
}

func (s *Server) createBooking(ctx *gin.Context) {
	var req bookingRequest
	if !s.bind(ctx, &req) {
		return
	}
	f := req.Data
	if f.CheckInDate == nil || f.CheckOutDate == nil || f.NumberOfGuests == nil || f.TotalPrice == nil {
		validationFailed(ctx, "checkInDate, checkOutDate, numberOfGuests and totalPrice are required")
		return
	}
	uid := callerID(ctx)
	if f.User != nil && *f.User != uid {
		forbidden(ctx)
		return
	}
	b := store.Booking{Status: statusPending, Locale: defaultLocale, UserID: uid}
	f.apply(&b)
	if !checkRange(b) {
		validationFailed(ctx, "checkOutDate must be after checkInDate")
		return
	}
	respondOne(ctx, s.renderBooking(ctx, s.storage.CreateBooking(b)))
}

func (s *Server) getBooking(ctx *gin.Context) {
	b, ok := s.ownBooking(ctx)
	if !ok {
		return
	}
	respondOne(ctx, s.renderBooking(ctx, b))
}

func (s *Server) updateBooking(ctx *gin.Context) {
	b, ok := s.ownBooking(ctx)
	if !ok {
		return
	}
	var req bookingRequest
	if !s.bind(ctx, &req) {
		return
	}
	if req.Data.User != nil && *req.Data.User != b.UserID {
		forbidden(ctx)
		return
	}
	next := b
	req.Data.apply(&next)
	if !checkRange(next) {
		validationFailed(ctx, "checkOutDate must be after checkInDate")
		return
	}
	updated, err := s.storage.UpdateBooking(b.ID, req.Data.apply)
	if err != nil {
		notFound(ctx)
		return
	}
	respondOne(ctx, s.renderBooking(ctx, updated))
}

func (s *Server) deleteBooking(ctx *gin.Context) {
	b, ok := s.ownBooking(ctx)
	if !ok {
		return
	}
	deleted, err := s.storage.DeleteBooking(b.ID)
	if errors.Is(err, store.ErrNotFound) {
		notFound(ctx)
		return
	}
	respondOne(ctx, s.renderBooking(ctx, deleted))
}

// createLocalization copies the booking into another locale. Fields sent
// in the body override the copied ones.
func (s *Server) createLocalization(ctx *gin.Context) {
	b, ok := s.ownBooking(ctx)
	if !ok {
		return
	}
	var req bookingRequest
	if !s.bind(ctx, &req) {
		return
	}
	loc := b
	loc.Locale = ""
	req.Data.apply(&loc)
	if loc.Locale == "" {
		loc.Locale = defaultLocale
	}
	if loc.Locale == b.Locale {
		validationFailed(ctx, "This locale already exists")
		return
	}
	if !checkRange(loc) {
		validationFailed(ctx, "checkOutDate must be after checkInDate")
		return
	}
	loc.LocalizationOf = b.ID
	respondOne(ctx, s.renderBooking(ctx, s.storage.CreateBooking(loc)))
}
