package booking

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
	"github.com/azaliaz/ruboni/internal/metrics"
)

type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

type Fields struct {
	CheckInDate     time.Time `json:"checkInDate"`
	CheckOutDate    time.Time `json:"checkOutDate"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	TotalPrice      float64   `json:"totalPrice"`
	AccommodationID string    `json:"accommodationId,omitempty"`
	ActivityID      string    `json:"activityId,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

func emptyFields() Fields {
	return Fields{NumberOfGuests: 1}
}

// Nights is the stay length in days, rounded up. Zero for an incomplete or inverted range.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func (f Fields) validate() error {
	switch {
	case f.CheckInDate.IsZero() || f.CheckOutDate.IsZero():
		return ErrMissingDates
	case !f.CheckOutDate.After(f.CheckInDate):
		return ErrInvalidDates
	case f.NumberOfGuests < 1:
		return ErrInvalidGuests
	case f.TotalPrice <= 0:
		return ErrInvalidPrice
	}
	return nil
}

// View is a read-only snapshot of the form for rendering.
type View struct {
	State     State  `json:"state"`
	Fields    Fields `json:"fields"`
	Nights    int    `json:"nights"`
	BookingID int64  `json:"bookingId,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

type Option func(*Form)

func WithResetDelay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

// WithAfterFunc replaces the timer used for the success reset.
func WithAfterFunc(after func(time.Duration, func()) (stop func() bool)) Option {
	return func(f *Form) {
		f.afterFunc = after
	}
}

type Form struct {
	mu        sync.Mutex
	fields    Fields
	state     State
	bookingID int64
	lastErr   string
	closed    bool
	// gen invalidates in-flight responses and pending resets.
	gen       uint64
	stopReset func() bool

	resetDelay time.Duration
	afterFunc  func(time.Duration, func()) func() bool

	gw     Gateway
	sess   Session
	notify Notifier
}

func NewForm(gw Gateway, sess Session, notify Notifier, opts ...Option) *Form {
	f := &Form{
		fields:     emptyFields(),
		state:      StateEditing,
		resetDelay: consts.SuccessResetDelay,
		afterFunc: func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		},
		gw:     gw,
		sess:   sess,
		notify: notify,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// edit applies fn to the fields. Edits are rejected while a submission is in
// flight or its success is being shown.
func (f *Form) edit(fn func(*Fields)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.state != StateEditing {
		return ErrBusy
	}
	fn(&f.fields)
	return nil
}

func (f *Form) SetCheckIn(t time.Time) error {
	return f.edit(func(fl *Fields) { fl.CheckInDate = t })
}

func (f *Form) SetCheckOut(t time.Time) error {
	return f.edit(func(fl *Fields) { fl.CheckOutDate = t })
}

func (f *Form) SetGuests(n int) error { return f.edit(func(fl *Fields) { fl.NumberOfGuests = n }) }

func (f *Form) SetTotalPrice(p float64) error { return f.edit(func(fl *Fields) { fl.TotalPrice = p }) }

func (f *Form) SetAccommodation(id string) error {
	return f.edit(func(fl *Fields) { fl.AccommodationID = id })
}

func (f *Form) SetActivity(id string) error { return f.edit(func(fl *Fields) { fl.ActivityID = id }) }

func (f *Form) SetNotes(s string) error { return f.edit(func(fl *Fields) { fl.Notes = s }) }

// SetFields replaces every field at once.
func (f *Form) SetFields(fl Fields) error {
	return f.edit(func(cur *Fields) { *cur = fl })
}

func (f *Form) Nights() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Nights(f.fields.CheckInDate, f.fields.CheckOutDate)
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return View{
		State:     f.state,
		Fields:    f.fields,
		Nights:    Nights(f.fields.CheckInDate, f.fields.CheckOutDate),
		BookingID: f.bookingID,
		LastError: f.lastErr,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the form and creates the booking. Every rejection before
// the gateway call leaves the form untouched apart from LastError.
func (f *Form) Submit(ctx context.Context) (models.Booking, error) {
	log := logger.Get()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return models.Booking{}, ErrClosed
	}
	if f.state != StateEditing {
		f.mu.Unlock()
		return models.Booking{}, ErrBusy
	}
	if !f.sess.IsAuthenticated() {
		f.lastErr = msgLoginRequired
		f.mu.Unlock()
		f.notify.Error(msgLoginRequired)
		metrics.IncBookingSubmitted("unauthenticated")
		return models.Booking{}, ErrAuthRequired
	}
	if err := f.fields.validate(); err != nil {
		f.lastErr = err.Error()
		f.mu.Unlock()
		metrics.IncBookingSubmitted("invalid")
		return models.Booking{}, err
	}

	user, _ := f.sess.User()
	in := gateway.BookingInput{
		CheckInDate:     f.fields.CheckInDate,
		CheckOutDate:    f.fields.CheckOutDate,
		NumberOfGuests:  f.fields.NumberOfGuests,
		TotalPrice:      f.fields.TotalPrice,
		Status:          models.StatusPending,
		AccommodationID: f.fields.AccommodationID,
		ActivityID:      f.fields.ActivityID,
		Notes:           f.fields.Notes,
		UserID:          user.ID,
	}
	f.state = StateSubmitting
	f.lastErr = ""
	gen := f.gen
	f.mu.Unlock()

	token := f.sess.Token()
	created, err := f.gw.CreateBooking(ctx, token, in)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen {
		log.Debug().Err(err).Msg("booking response after form closed, ignored")
		return created, err
	}
	if err != nil {
		msg := failureMessage(err, gateway.Message(err, "Failed to create booking"))
		f.state = StateEditing
		f.lastErr = msg
		f.notify.Error(msg)
		metrics.IncBookingSubmitted("failed")
		log.Error().Err(err).Msg("create booking")
		if gateway.IsUnauthorized(err) {
			expireSession(ctx, f.sess, token)
		}
		return models.Booking{}, err
	}

	f.state = StateSucceeded
	f.bookingID = created.ID
	f.notify.Success("Booking created successfully!")
	metrics.IncBookingSubmitted("ok")
	f.stopReset = f.afterFunc(f.resetDelay, func() { f.reset(gen) })
	return created, nil
}

func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen || f.state != StateSucceeded {
		return
	}
	f.gen++
	f.state = StateEditing
	f.fields = emptyFields()
	f.bookingID = 0
	f.lastErr = ""
	f.stopReset = nil
}

// Clear drops the fields and any pending success state, as on a change of
// account. A submission still in flight is ignored when it returns.
func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	if f.stopReset != nil {
		f.stopReset()
		f.stopReset = nil
	}
	f.state = StateEditing
	f.fields = emptyFields()
	f.bookingID = 0
	f.lastErr = ""
}

// Close detaches the form. Responses and timers that fire afterwards are dropped.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.gen++
	if f.stopReset != nil {
		f.stopReset()
		f.stopReset = nil
	}
}
