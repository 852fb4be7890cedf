package booking

import (
	"context"
	"slices"
	"sync"

	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
	"github.com/azaliaz/ruboni/internal/metrics"
)

const FilterAll = "all"

// Manager is the "My Bookings" view. The local list only changes after the
// backend acknowledged the action. Concurrent confirm and cancel of the same
// booking are not serialized: whichever response lands last wins.
type Manager struct {
	mu       sync.RWMutex
	bookings []models.Booking

	gw     Gateway
	sess   Session
	notify Notifier
}

func NewManager(gw Gateway, sess Session, notify Notifier) *Manager {
	return &Manager{
		bookings: []models.Booking{},
		gw:       gw,
		sess:     sess,
		notify:   notify,
	}
}

func (m *Manager) Load(ctx context.Context) error {
	log := logger.Get()
	user, ok := m.sess.User()
	if !ok {
		return ErrAuthRequired
	}
	token := m.sess.Token()
	list, err := m.gw.UserBookings(ctx, token, user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("load bookings")
		m.fail(ctx, err, token, "Failed to load bookings")
		metrics.IncBookingAction("load", "failed")
		return err
	}
	if list == nil {
		list = []models.Booking{}
	}
	m.mu.Lock()
	m.bookings = list
	m.mu.Unlock()
	metrics.IncBookingAction("load", "ok")
	return nil
}

func (m *Manager) Cancel(ctx context.Context, id int64) error {
	return m.transition(ctx, id, models.StatusCancelled, "cancel",
		m.gw.CancelBooking, "Booking cancelled", "Failed to cancel booking")
}

func (m *Manager) Confirm(ctx context.Context, id int64) error {
	return m.transition(ctx, id, models.StatusConfirmed, "confirm",
		m.gw.ConfirmBooking, "Booking confirmed", "Failed to confirm booking")
}

func (m *Manager) transition(
	ctx context.Context,
	id int64,
	status models.BookingStatus,
	action string,
	call func(context.Context, string, int64) (models.Booking, error),
	okMsg, failMsg string,
) error {
	log := logger.Get()
	if !m.sess.IsAuthenticated() {
		return ErrAuthRequired
	}
	token := m.sess.Token()
	if _, err := call(ctx, token, id); err != nil {
		log.Error().Err(err).Int64("booking_id", id).Str("action", action).Msg("booking transition")
		m.fail(ctx, err, token, failMsg)
		metrics.IncBookingAction(action, "failed")
		return err
	}

	m.mu.Lock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
		}
	}
	m.mu.Unlock()

	m.notify.Success(okMsg)
	metrics.IncBookingAction(action, "ok")
	return nil
}

func (m *Manager) Delete(ctx context.Context, id int64) error {
	log := logger.Get()
	if !m.sess.IsAuthenticated() {
		return ErrAuthRequired
	}
	token := m.sess.Token()
	if err := m.gw.DeleteBooking(ctx, token, id); err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("delete booking")
		m.fail(ctx, err, token, "Failed to delete booking")
		metrics.IncBookingAction("delete", "failed")
		return err
	}

	m.mu.Lock()
	m.bookings = slices.DeleteFunc(m.bookings, func(b models.Booking) bool { return b.ID == id })
	m.mu.Unlock()

	m.notify.Success("Booking deleted")
	metrics.IncBookingAction("delete", "ok")
	return nil
}

// fail reports a failed backend call. A rejected token also ends the session
// and drops the list fetched with it.
func (m *Manager) fail(ctx context.Context, err error, token, fallback string) {
	m.notify.Error(failureMessage(err, fallback))
	if gateway.IsUnauthorized(err) {
		expireSession(ctx, m.sess, token)
		m.Reset()
	}
}

func (m *Manager) Bookings() []models.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.bookings)
}

func (m *Manager) Get(id int64) (models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

// Filter narrows the fetched list by status; "all" or "" returns everything.
func (m *Manager) Filter(filter string) ([]models.Booking, error) {
	if filter == "" || filter == FilterAll {
		return m.Bookings(), nil
	}
	status := models.BookingStatus(filter)
	if !status.Valid() {
		return nil, ErrUnknownFilter
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// Counts returns the number of bookings per filter tab.
func (m *Manager) Counts() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := map[string]int{FilterAll: len(m.bookings)}
	for _, st := range []models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusCancelled} {
		counts[string(st)] = 0
	}
	for _, b := range m.bookings {
		counts[string(b.Status)]++
	}
	return counts
}

// Reset drops the fetched list, used on logout and account switches.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.bookings = []models.Booking{}
	m.mu.Unlock()
}
