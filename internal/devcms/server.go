// Package devcms is a local stand-in for the headless CMS. It speaks the
// same REST and GraphQL contract as the real backend and keeps everything
// in memory.
package devcms

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/devcms/store"
	"github.com/azaliaz/ruboni/internal/logger"
)

type Storage interface {
	CreateUser(u store.User, password string) (store.User, error)
	Authenticate(identifier, password string) (store.User, error)
	User(id int64) (store.User, error)
	ChangePassword(id int64, current, password string) (store.User, error)
	IssueResetCode(email string) (string, error)
	ResetPassword(code, password string) (store.User, error)
	ConfirmEmail(token string) (store.User, error)

	CreateBooking(b store.Booking) store.Booking
	Bookings(f store.BookingFilter) []store.Booking
	Booking(id int64) (store.Booking, error)
	UpdateBooking(id int64, patch func(*store.Booking)) (store.Booking, error)
	DeleteBooking(id int64) (store.Booking, error)

	Lodges() []store.Lodge
	Lodge(id int64) (store.Lodge, error)
	Products() []store.Product
	Product(id int64) (store.Product, error)
	Safaris() []store.Safari
	Safari(id int64) (store.Safari, error)
}

type Server struct {
	serv    *http.Server
	valid   *validator.Validate
	storage Storage
	secret  []byte
}

func New(cfg config.DevCMSConfig, stor Storage) *Server {
	server := http.Server{ //nolint:gosec // development only
		Addr:              cfg.Addr,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &Server{
		serv:    &server,
		valid:   validator.New(validator.WithRequiredStructEnabled()),
		storage: stor,
		secret:  []byte(cfg.Secret),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Static("/uploads", "./uploads")
	router.POST("/graphql", s.graphql)

	api := router.Group("/api")
	auth := api.Group("/auth")
	{
		auth.POST("/local", s.login)
		auth.POST("/local/register", s.register)
		auth.POST("/change-password", s.JWTAuthMiddleware(), s.changePassword)
		auth.POST("/forgot-password", s.forgotPassword)
		auth.POST("/reset-password", s.resetPassword)
		auth.GET("/email-confirmation", s.confirmEmail)
	}
	api.GET("/users/me", s.JWTAuthMiddleware(), s.me)

	bookings := api.Group("/bookings", s.JWTAuthMiddleware())
	{
		bookings.GET("", s.listBookings)
		bookings.POST("", s.createBooking)
		bookings.GET("/:id", s.getBooking)
		bookings.PUT("/:id", s.updateBooking)
		bookings.DELETE("/:id", s.deleteBooking)
		bookings.POST("/:id/localizations", s.createLocalization)
	}

	api.GET("/lodges", s.lodges)
	api.GET("/lodges/:id", s.lodge)
	api.GET("/products", s.products)
	api.GET("/products/:id", s.product)
	api.GET("/safaris", s.safaris)
	api.GET("/safaris/:id", s.safari)
	return router
}

func (s *Server) Run(_ context.Context) error {
	log := logger.Get()
	s.serv.Handler = s.Router()
	log.Info().Str("host", s.serv.Addr).Msg("dev cms started")
	if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
