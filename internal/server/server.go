package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azaliaz/ruboni/internal/account"
	"github.com/azaliaz/ruboni/internal/booking"
	"github.com/azaliaz/ruboni/internal/cart"
	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/logger"
	"github.com/azaliaz/ruboni/internal/notify"
)

//go:generate mockgen -source=server.go -destination=./mocks/server_mock.go -package=mocks

type Session interface {
	IsAuthenticated() bool
	IsLoading() bool
	User() (models.User, bool)
}

type Cart interface {
	AddToCartQuantity(ctx context.Context, product models.Product, n int)
	RemoveFromCart(ctx context.Context, productID int64)
	UpdateQuantity(ctx context.Context, productID int64, quantity int)
	ClearCart(ctx context.Context)
	Items() []models.CartItem
	TotalItems() int
	TotalPrice() float64
	Checkout(ctx context.Context) (cart.Snapshot, error)
}

type BookingForm interface {
	SetFields(fields booking.Fields) error
	View() booking.View
	Submit(ctx context.Context) (models.Booking, error)
	Clear()
}

type BookingManager interface {
	Load(ctx context.Context) error
	Cancel(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Filter(filter string) ([]models.Booking, error)
	Counts() map[string]int
	Reset()
}

type Account interface {
	Login(ctx context.Context, in account.LoginInput) (models.User, error)
	Signup(ctx context.Context, in account.SignupInput) (models.User, error)
	Logout(ctx context.Context)
	ChangePassword(ctx context.Context, in account.ChangePasswordInput) error
	ForgotPassword(ctx context.Context, in account.ForgotPasswordInput) error
	ResetPassword(ctx context.Context, in account.ResetPasswordInput) error
	ConfirmEmail(ctx context.Context, confirmation string) error
}

type Catalog interface {
	Lodges(ctx context.Context) ([]models.Lodge, error)
	LodgesGraphQL(ctx context.Context) ([]models.Lodge, error)
	Lodge(ctx context.Context, id int64) (models.Lodge, error)
	Products(ctx context.Context) ([]models.CatalogProduct, error)
	Product(ctx context.Context, id int64) (models.CatalogProduct, error)
	Safaris(ctx context.Context) ([]models.Safari, error)
	Safari(ctx context.Context, id int64) (models.Safari, error)
}

type Notifications interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
	Drain() []notify.Notice
}

// Deps are the client-side stores the HTTP surface drives.
type Deps struct {
	Session  Session
	Cart     Cart
	Form     BookingForm
	Bookings BookingManager
	Account  Account
	Catalog  Catalog
	Notify   Notifications
}

type Server struct {
	serv  *http.Server
	valid *validator.Validate
	deps  Deps
}

func New(cfg config.Config, deps Deps) *Server {
	server := http.Server{ //nolint:gosec // local client host
		Addr:              cfg.Addr,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &Server{
		serv:  &server,
		valid: validator.New(validator.WithRequiredStructEnabled()),
		deps:  deps,
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

// Router builds the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "Hello") })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/session", s.sessionInfo)
	api.GET("/notifications", s.notifications)

	auth := api.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/signup", s.signup)
		auth.POST("/logout", s.logout)
		auth.POST("/change-password", s.changePassword)
		auth.POST("/forgot-password", s.forgotPassword)
		auth.POST("/reset-password", s.resetPassword)
		auth.GET("/email-confirmation", s.confirmEmail)
	}

	crt := api.Group("/cart")
	{
		crt.GET("", s.cartInfo)
		crt.POST("/items", s.addToCart)
		crt.PATCH("/items/:id", s.updateQuantity)
		crt.DELETE("/items/:id", s.removeFromCart)
		crt.DELETE("", s.clearCart)
		crt.POST("/checkout", s.checkout)
	}

	form := api.Group("/booking-form")
	{
		form.GET("", s.formView)
		form.PUT("", s.formUpdate)
		form.POST("/submit", s.formSubmit)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", s.myBookings)
		bookings.POST("/reload", s.reloadBookings)
		bookings.POST("/:id/cancel", s.cancelBooking)
		bookings.POST("/:id/confirm", s.confirmBooking)
		bookings.DELETE("/:id", s.deleteBooking)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("/lodges", s.lodges)
		catalog.GET("/lodges/:id", s.lodge)
		catalog.GET("/products", s.products)
		catalog.GET("/products/:id", s.product)
		catalog.POST("/products/:id/cart", s.addProductToCart)
		catalog.GET("/safaris", s.safaris)
		catalog.GET("/safaris/:id", s.safari)
	}
	return router
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	s.serv.Handler = s.Router()
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
