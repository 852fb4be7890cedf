package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/booking"
)

const dateLayout = "2006-01-02"

type formRequest struct {
	CheckInDate     string  `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string  `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	TotalPrice      float64 `json:"totalPrice"`
	AccommodationID string  `json:"accommodationId"`
	ActivityID      string  `json:"activityId"`
	Notes           string  `json:"notes" validate:"max=2000"`
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(dateLayout, s)
	return t
}

func (s *Server) formView(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.deps.Form.View())
}

// formUpdate replaces the form fields. Range and count checks happen on submit;
// edits while a booking is pending or shown as created get 409.
func (s *Server) formUpdate(ctx *gin.Context) {
	var req formRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.valid.Struct(req); err != nil {
		bindErr(ctx, err)
		return
	}
	err := s.deps.Form.SetFields(booking.Fields{
		CheckInDate:     parseDate(req.CheckInDate),
		CheckOutDate:    parseDate(req.CheckOutDate),
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      req.TotalPrice,
		AccommodationID: req.AccommodationID,
		ActivityID:      req.ActivityID,
		Notes:           req.Notes,
	})
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s.deps.Form.View())
}

func (s *Server) formSubmit(ctx *gin.Context) {
	created, err := s.deps.Form.Submit(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"booking": created, "form": s.deps.Form.View()})
}

func (s *Server) myBookings(ctx *gin.Context) {
	list, err := s.deps.Bookings.Filter(ctx.DefaultQuery("status", booking.FilterAll))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"bookings": list, "counts": s.deps.Bookings.Counts()})
}

func (s *Server) reloadBookings(ctx *gin.Context) {
	if err := s.deps.Bookings.Load(ctx.Request.Context()); err != nil {
		respondErr(ctx, err)
		return
	}
	s.myBookings(ctx)
}

func (s *Server) bookingAction(ctx *gin.Context, action func(*gin.Context, int64) error) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	if err := action(ctx, id); err != nil {
		respondErr(ctx, err)
		return
	}
	s.myBookings(ctx)
}

func (s *Server) cancelBooking(ctx *gin.Context) {
	s.bookingAction(ctx, func(c *gin.Context, id int64) error {
		return s.deps.Bookings.Cancel(c.Request.Context(), id)
	})
}

func (s *Server) confirmBooking(ctx *gin.Context) {
	s.bookingAction(ctx, func(c *gin.Context, id int64) error {
		return s.deps.Bookings.Confirm(c.Request.Context(), id)
	})
}

func (s *Server) deleteBooking(ctx *gin.Context) {
	s.bookingAction(ctx, func(c *gin.Context, id int64) error {
		return s.deps.Bookings.Delete(c.Request.Context(), id)
	})
}
