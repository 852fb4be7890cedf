package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/account"
	accountmocks "github.com/azaliaz/ruboni/internal/account/mocks"
	"github.com/azaliaz/ruboni/internal/booking"
	bookingmocks "github.com/azaliaz/ruboni/internal/booking/mocks"
	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/notify"
	"github.com/azaliaz/ruboni/internal/server"
	"github.com/azaliaz/ruboni/internal/server/mocks"
	"github.com/azaliaz/ruboni/internal/session"
	"github.com/azaliaz/ruboni/internal/storage"
)

type bookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
	Counts   map[string]int   `json:"counts"`
}

func TestLoginAsOtherUser_DropsPreviousBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	accountGW := accountmocks.NewMockGateway(ctrl)
	bookingGW := bookingmocks.NewMockGateway(ctrl)
	feed := notify.NewFeed(20)
	sess := session.New(storage.New())
	sess.Init(ctx)

	f := &fixture{router: server.New(config.Config{Addr: ":8080"}, server.Deps{
		Session:  sess,
		Cart:     mocks.NewMockCart(ctrl),
		Form:     booking.NewForm(bookingGW, sess, feed),
		Bookings: booking.NewManager(bookingGW, sess, feed),
		Account:  account.New(accountGW, sess, feed),
		Catalog:  mocks.NewMockCatalog(ctrl),
		Notify:   feed,
	}).Router()}

	listBookings := func() bookingsResponse {
		w := f.do(http.MethodGet, "/api/bookings", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp bookingsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	amina := models.User{ID: 5, Email: "amina@example.com", FirstName: "Amina"}
	juma := models.User{ID: 6, Email: "juma@example.com", FirstName: "Juma"}

	accountGW.EXPECT().Login(gomock.Any(), "amina@example.com", "secret1").
		Return(gateway.AuthResult{User: amina, Token: "jwt-5"}, nil)
	w := f.do(http.MethodPost, "/api/auth/login", `{"email":"amina@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	bookingGW.EXPECT().UserBookings(gomock.Any(), "jwt-5", int64(5)).
		Return([]models.Booking{{ID: 7, UserID: 5, Status: models.StatusPending}}, nil)
	w = f.do(http.MethodPost, "/api/bookings/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, listBookings().Bookings, 1)

	w = f.do(http.MethodPut, "/api/booking-form", `{"checkInDate":"2025-07-01","checkOutDate":"2025-07-04","numberOfGuests":2,"totalPrice":150000,"notes":"late arrival"}`)
	require.Equal(t, http.StatusOK, w.Code)

	accountGW.EXPECT().Login(gomock.Any(), "juma@example.com", "secret1").
		Return(gateway.AuthResult{User: juma, Token: "jwt-6"}, nil)
	w = f.do(http.MethodPost, "/api/auth/login", `{"email":"juma@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := listBookings()
	assert.Empty(t, got.Bookings)
	assert.Equal(t, 0, got.Counts[booking.FilterAll])

	w = f.do(http.MethodGet, "/api/booking-form", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "late arrival")
	assert.Contains(t, w.Body.String(), `"numberOfGuests":1`)

	bookingGW.EXPECT().UserBookings(gomock.Any(), "jwt-6", int64(6)).Return(nil, nil)
	w = f.do(http.MethodPost, "/api/bookings/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listBookings().Bookings)
}
