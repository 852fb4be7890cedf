package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	ms, err := NewSeeded(seed)
	require.NoError(t, err)

	assert.NotEmpty(t, ms.Lodges())
	assert.NotEmpty(t, ms.Products())
	assert.NotEmpty(t, ms.Safaris())

	u, err := ms.Authenticate("guest@ruboni.test", "karibu123")
	require.NoError(t, err)
	assert.True(t, u.Confirmed)
	assert.NotEmpty(t, u.DocumentID)
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := ParseSeed([]byte("lodges: [unclosed"))
	assert.Error(t, err)
}

func TestUsers(t *testing.T) {
	ms := New()
	u, err := ms.CreateUser(User{Username: "amina@example.com", Email: "amina@example.com"}, "secret1")
	require.NoError(t, err)
	assert.False(t, u.Confirmed)
	assert.NotEmpty(t, u.ConfirmationToken)

	_, err = ms.CreateUser(User{Username: "other", Email: "AMINA@example.com"}, "secret1")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = ms.Authenticate("amina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	t.Run("change password", func(t *testing.T) {
		_, err := ms.ChangePassword(u.ID, "wrong", "secret2")
		assert.ErrorIs(t, err, ErrInvalidCurrentPass)
		_, err = ms.ChangePassword(u.ID, "secret1", "secret1")
		assert.ErrorIs(t, err, ErrSamePassword)
		_, err = ms.ChangePassword(u.ID, "secret1", "secret2")
		require.NoError(t, err)
		_, err = ms.Authenticate("amina@example.com", "secret2")
		assert.NoError(t, err)
	})

	t.Run("reset code is single use", func(t *testing.T) {
		code, err := ms.IssueResetCode("amina@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, code)
		_, err = ms.ResetPassword(code, "secret3")
		require.NoError(t, err)
		_, err = ms.ResetPassword(code, "secret4")
		assert.ErrorIs(t, err, ErrInvalidCode)

		code, err = ms.IssueResetCode("nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, code)
	})

	t.Run("confirm email", func(t *testing.T) {
		_, err := ms.ConfirmEmail("")
		assert.ErrorIs(t, err, ErrInvalidToken)
		confirmed, err := ms.ConfirmEmail(u.ConfirmationToken)
		require.NoError(t, err)
		assert.True(t, confirmed.Confirmed)
		_, err = ms.ConfirmEmail(u.ConfirmationToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestBookings(t *testing.T) {
	ms := New()
	a := ms.CreateBooking(Booking{UserID: 1, Status: "pending", AccommodationID: "3"})
	b := ms.CreateBooking(Booking{UserID: 1, Status: "confirmed"})
	ms.CreateBooking(Booking{UserID: 2, Status: "pending"})

	assert.Len(t, ms.Bookings(BookingFilter{UserID: 1}), 2)
	assert.Equal(t, []Booking{a}, ms.Bookings(BookingFilter{UserID: 1, AccommodationID: "3"}))

	updated, err := ms.UpdateBooking(b.ID, func(bk *Booking) { bk.Status = "cancelled" })
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.Len(t, ms.Bookings(BookingFilter{Status: "cancelled"}), 1)

	_, err = ms.DeleteBooking(a.ID)
	require.NoError(t, err)
	_, err = ms.Booking(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ms.UpdateBooking(a.ID, func(*Booking) {})
	assert.ErrorIs(t, err, ErrNotFound)
}
