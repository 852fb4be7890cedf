package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", srv.URL+"/graphql", srv.Client())
}

func date(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func TestCreateBooking(t *testing.T) {
	var gotBody map[string]map[string]any
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"id":42,"attributes":{
			"checkInDate":"2025-07-01","checkOutDate":"2025-07-04",
			"numberOfGuests":2,"totalPrice":150000,"status":"pending",
			"user":{"data":{"id":5}},"createdAt":"2025-06-01T10:00:00.000Z"}}}`)
	})

	b, err := c.CreateBooking(context.Background(), "jwt-1", BookingInput{
		CheckInDate:    date("2025-07-01"),
		CheckOutDate:   date("2025-07-04"),
		NumberOfGuests: 2,
		TotalPrice:     150000,
		UserID:         5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer jwt-1", gotAuth)
	data := gotBody["data"]
	assert.Equal(t, "2025-07-01", data["checkInDate"])
	assert.Equal(t, "pending", data["status"])
	assert.EqualValues(t, 5, data["user"])
	assert.Equal(t, "", data["notes"])
	assert.NotContains(t, data, "accommodationId")

	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, int64(5), b.UserID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, date("2025-07-04"), b.CheckOutDate)
}

func TestAPIError(t *testing.T) {
	t.Run("backend message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"data":null,"error":{"status":400,"name":"ValidationError","message":"Lodge is fully booked"}}`)
		})
		_, err := c.CreateBooking(context.Background(), "jwt", BookingInput{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "ValidationError", apiErr.Name)
		assert.Equal(t, "Lodge is fully booked", err.Error())
	})

	t.Run("fallback message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "<html>bad gateway</html>")
		})
		err := c.DeleteBooking(context.Background(), "jwt", 7)
		assert.EqualError(t, err, "Failed to delete booking")
		assert.Equal(t, "Failed to delete booking", Message(err, "other"))
	})

	t.Run("transport failure", func(t *testing.T) {
		c := New("http://127.0.0.1:1/api", "", nil)
		_, err := c.Lodges(context.Background())
		assert.EqualError(t, err, "Failed to fetch lodges")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Error(t, apiErr.Unwrap())
	})

	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"status":401,"name":"UnauthorizedError","message":"Missing or invalid credentials"}}`)
		})
		_, err := c.UserBookings(context.Background(), "expired", 5)
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("forbidden is not unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":{"status":403,"name":"ForbiddenError","message":"Forbidden"}}`)
		})
		_, err := c.CancelBooking(context.Background(), "jwt", 7)
		assert.False(t, IsUnauthorized(err))
	})

	t.Run("oversized body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[`+strings.Repeat(" ", maxResponseBytes)+`]}`)
		})
		_, err := c.UserBookings(context.Background(), "jwt", 5)
		assert.EqualError(t, err, "Failed to fetch user bookings")
		assert.ErrorIs(t, err, ErrResponseTooLarge)
	})
}

func TestUserBookings_QueryAndFlatShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("filters[user][id][$eq]"))
		assert.Equal(t, "*", r.URL.Query().Get("populate"))
		_, _ = io.WriteString(w, `{"data":[
			{"id":7,"documentId":"abc","checkInDate":"2025-06-01","checkOutDate":"2025-06-03","numberOfGuests":1,"totalPrice":90000,"status":"pending","user":{"id":5}},
			{"id":8,"checkInDate":"2025-08-01","checkOutDate":"2025-08-05","numberOfGuests":3,"totalPrice":200000,"status":"confirmed","accommodationId":12}
		],"meta":{}}`)
	})
	got, err := c.UserBookings(context.Background(), "jwt", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, int64(5), got[0].UserID)
	assert.Equal(t, models.StatusConfirmed, got[1].Status)
	assert.Equal(t, "12", got[1].AccommodationID)
}

func TestListBookings_Filters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cancelled", q.Get("filters[status][$eq]"))
		assert.Equal(t, "3", q.Get("filters[accommodation][id][$eq]"))
		assert.Empty(t, q.Get("filters[user][id][$eq]"))
		_, _ = io.WriteString(w, `{"data":[]}`)
	})
	got, err := c.ListBookings(context.Background(), "jwt", BookingFilter{Status: models.StatusCancelled, AccommodationID: "3"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCancelBooking_SendsOnlyStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bookings/7", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"data":{"status":"cancelled"}}`, string(raw))
		_, _ = io.WriteString(w, `{"data":{"id":7,"status":"cancelled"}}`)
	})
	b, err := c.CancelBooking(context.Background(), "jwt", 7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)
}

func TestCreateBookingLocalization_DefaultLocale(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/7/localizations", r.URL.Path)
		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "en", body.Data["locale"])
		_, _ = io.WriteString(w, `{"data":{"id":70,"status":"pending"}}`)
	})
	b, err := c.CreateBookingLocalization(context.Background(), "jwt", 7, BookingInput{NumberOfGuests: 1, TotalPrice: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(70), b.ID)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/local", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "amina@example.com", body["identifier"])
		_, _ = io.WriteString(w, `{"jwt":"tok","user":{"id":5,"email":"amina@example.com","username":"amina@example.com","confirmed":true}}`)
	})
	res, err := c.Login(context.Background(), "amina@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, int64(5), res.User.ID)
	assert.True(t, res.User.Confirmed)
}

func TestRegister_UsernameIsEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, body["email"], body["username"])
		assert.Equal(t, "+255700000000", body["phone"])
		_, _ = io.WriteString(w, `{"jwt":"tok","user":{"id":9,"email":"neema@example.com"}}`)
	})
	res, err := c.Register(context.Background(), RegisterInput{Email: "neema@example.com", Password: "secret1", Phone: "+255700000000"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.User.ID)
}

func TestCatalog_MediaShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/lodges/1":
			_, _ = io.WriteString(w, `{"data":{"id":1,"attributes":{"name":"Ruboni Lodge","region":"Kagera",
				"photo":{"data":{"attributes":{"url":"/uploads/cover.jpg"}}},
				"photos":{"data":[{"attributes":{"url":"/uploads/a.jpg"}},{"attributes":{"url":"/uploads/b.jpg"}}]}}}}`)
		case "/api/products":
			_, _ = io.WriteString(w, `{"data":[{"id":3,"name":"Wild Honey","price":12000,"currency":"TZS","image":{"url":"/uploads/honey.jpg"}}]}`)
		case "/api/safaris":
			_, _ = io.WriteString(w, `{"data":[{"id":4,"safariName":"Chimp Trek","overview":"<p>Walk the <b>forest</b></p>","overralPrice":300000,"duration":2}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	lodge, err := c.Lodge(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ruboni Lodge", lodge.Name)
	assert.Equal(t, "/uploads/cover.jpg", lodge.Photo)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, lodge.Gallery)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "/uploads/honey.jpg", products[0].Image)

	safaris, err := c.Safaris(ctx)
	require.NoError(t, err)
	require.Len(t, safaris, 1)
	assert.Equal(t, "Chimp Trek", safaris[0].Title)
	assert.Equal(t, "Walk the forest", safaris[0].Description)
	assert.Equal(t, "2 Day(s)", safaris[0].Duration)

	_, err = c.Safari(ctx, 99)
	assert.EqualError(t, err, "Failed to fetch safari")
}

func TestGraphQL(t *testing.T) {
	t.Run("lodges", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/graphql", r.URL.Path)
			_, _ = io.WriteString(w, `{"data":{"lodges":{"data":[{"id":"1","attributes":{"name":"Ruboni Lodge","district":"Bukoba"}}]}}}`)
		})
		lodges, err := c.LodgesGraphQL(context.Background())
		require.NoError(t, err)
		require.Len(t, lodges, 1)
		assert.Equal(t, int64(1), lodges[0].ID)
		assert.Equal(t, "Bukoba", lodges[0].District)
	})

	t.Run("errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"errors":[{"message":"Cannot query field \"lodgez\""}]}`)
		})
		err := c.GraphQL(context.Background(), "{ lodgez { data { id } } }", nil, &struct{}{})
		assert.EqualError(t, err, `Cannot query field "lodgez"`)
	})

	t.Run("oversized body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":{}`+strings.Repeat(" ", maxResponseBytes)+`}`)
		})
		err := c.GraphQL(context.Background(), "{ lodges { data { id } } }", nil, &struct{}{})
		assert.ErrorIs(t, err, ErrResponseTooLarge)
	})
}
