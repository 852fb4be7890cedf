package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/azaliaz/ruboni/internal/account"
	"github.com/azaliaz/ruboni/internal/booking"
	"github.com/azaliaz/ruboni/internal/cart"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
)

var ErrBadID = errors.New("invalid id")

// respondErr maps store and gateway errors onto statuses. The body always
// carries a message the UI can show as is.
func respondErr(ctx *gin.Context, err error) {
	log := logger.Get()

	var verr *account.ValidationError
	var apiErr *gateway.APIError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, booking.ErrAuthRequired),
		errors.Is(err, cart.ErrAuthRequired),
		errors.Is(err, account.ErrAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrMissingDates),
		errors.Is(err, booking.ErrInvalidDates),
		errors.Is(err, booking.ErrInvalidGuests),
		errors.Is(err, booking.ErrInvalidPrice),
		errors.Is(err, booking.ErrUnknownFilter),
		errors.Is(err, account.ErrInvalidConfirmation),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, ErrBadID):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrBusy), errors.Is(err, booking.ErrClosed):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			status = apiErr.Status
		}
		ctx.JSON(status, gin.H{"error": apiErr.Message})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("unexpected error")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Something went wrong. Please try again."})
	}
}

func bindErr(ctx *gin.Context, err error) {
	log := logger.Get()
	log.Error().Err(err).Msg("unmarshal body failed")
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data", "fields": fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
}

func paramID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}
