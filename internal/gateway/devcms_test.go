package gateway_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/devcms"
	"github.com/azaliaz/ruboni/internal/devcms/store"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
)

func newDevCMS(t *testing.T) *gateway.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	seed, err := store.LoadSeed("")
	require.NoError(t, err)
	stor, err := store.NewSeeded(seed)
	require.NoError(t, err)
	srv := httptest.NewServer(devcms.New(config.DevCMSConfig{Secret: "test"}, stor).Router())
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL+"/api", srv.URL+"/graphql", srv.Client())
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDevCMS_BookingLifecycle(t *testing.T) {
	c := newDevCMS(t)
	ctx := context.Background()

	auth, err := c.Register(ctx, gateway.RegisterInput{
		Email: "amina@example.com", Password: "secret1", FirstName: "Amina", LastName: "Mushi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "Amina Mushi", auth.User.DisplayName())

	_, err = c.Login(ctx, "amina@example.com", "wrong12")
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid identifier or password", apiErr.Message)

	created, err := c.CreateBooking(ctx, auth.Token, gateway.BookingInput{
		CheckInDate:     day("2025-07-01"),
		CheckOutDate:    day("2025-07-04"),
		NumberOfGuests:  2,
		TotalPrice:      540000,
		AccommodationID: "1",
		UserID:          auth.User.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, day("2025-07-04"), created.CheckOutDate)

	list, err := c.UserBookings(ctx, auth.Token, auth.User.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, auth.User.ID, list[0].UserID)

	confirmed, err := c.ConfirmBooking(ctx, auth.Token, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	byStatus, err := c.ListBookings(ctx, auth.Token, gateway.BookingFilter{Status: models.StatusConfirmed, AccommodationID: "1"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	loc, err := c.CreateBookingLocalization(ctx, auth.Token, created.ID, gateway.BookingInput{
		CheckInDate:    day("2025-07-01"),
		CheckOutDate:   day("2025-07-04"),
		NumberOfGuests: 2,
		TotalPrice:     540000,
		Locale:         "sw",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, loc.ID)

	other, err := c.Register(ctx, gateway.RegisterInput{Email: "juma@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = c.CancelBooking(ctx, other.Token, created.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.False(t, gateway.IsUnauthorized(err))

	cancelled, err := c.CancelBooking(ctx, auth.Token, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	require.NoError(t, c.DeleteBooking(ctx, auth.Token, created.ID))
	_, err = c.GetBooking(ctx, auth.Token, created.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestDevCMS_Catalog(t *testing.T) {
	c := newDevCMS(t)
	ctx := context.Background()

	lodge, err := c.Lodge(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ruboni_forest.jpg", lodge.Photo)
	assert.Len(t, lodge.Gallery, 2)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "/uploads/honey.jpg", products[0].Image)
	assert.Empty(t, products[1].Image)

	safari, err := c.Safari(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "3 Day(s)", safari.Duration)
	assert.Equal(t, "Boat transfer, two nights under canvas and guided treks.", safari.Description)

	viaGraphQL, err := c.LodgesGraphQL(ctx)
	require.NoError(t, err)
	assert.Len(t, viaGraphQL, 2)
	assert.Equal(t, "Ruboni Forest Lodge", viaGraphQL[0].Name)
}
