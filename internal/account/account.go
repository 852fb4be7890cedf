// Package account runs the login, signup and password flows against the CMS
// and applies their results to the session.
package account

import (
	"context"
	"errors"

	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
)

var (
	ErrAuthRequired        = errors.New("You must be logged in to change your password.")
	ErrInvalidConfirmation = errors.New("Invalid confirmation link")
)

//go:generate mockgen -source=account.go -destination=mocks/account_mock.go -package=mocks

type Gateway interface {
	Login(ctx context.Context, identifier, password string) (gateway.AuthResult, error)
	Register(ctx context.Context, in gateway.RegisterInput) (gateway.AuthResult, error)
	ChangePassword(ctx context.Context, token, current, password, confirmation string) (gateway.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, code, password, confirmation string) (gateway.AuthResult, error)
	ConfirmEmail(ctx context.Context, confirmation string) error
}

type Session interface {
	Login(ctx context.Context, user models.User, token string)
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, user models.User)
	IsAuthenticated() bool
	Token() string
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

type Service struct {
	gw     Gateway
	sess   Session
	notify Notifier
}

func New(gw Gateway, sess Session, notify Notifier) *Service {
	return &Service{gw: gw, sess: sess, notify: notify}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupInput struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type ChangePasswordInput struct {
	CurrentPassword      string `json:"currentPassword" validate:"required"`
	Password             string `json:"password" validate:"required,min=6,nefield=CurrentPassword"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Code                 string `json:"code" validate:"required"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

func (s *Service) fail(err error, fallback string) error {
	log := logger.Get()
	msg := gateway.Message(err, fallback)
	log.Error().Err(err).Msg(fallback)
	s.notify.Error(msg)
	return err
}

func (s *Service) Login(ctx context.Context, in LoginInput) (models.User, error) {
	if err := validate(in); err != nil {
		return models.User{}, err
	}
	res, err := s.gw.Login(ctx, in.Email, in.Password)
	if err != nil {
		return models.User{}, s.fail(err, "Login failed")
	}
	s.sess.Login(ctx, res.User, res.Token)
	s.notify.Success("Welcome back, " + res.User.DisplayName() + "!")
	return res.User, nil
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (models.User, error) {
	if err := validate(in); err != nil {
		return models.User{}, err
	}
	res, err := s.gw.Register(ctx, gateway.RegisterInput{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
	})
	if err != nil {
		return models.User{}, s.fail(err, "Registration failed")
	}
	s.sess.Login(ctx, res.User, res.Token)
	s.notify.Success("Account created!")
	return res.User, nil
}

func (s *Service) Logout(ctx context.Context) {
	wasIn := s.sess.IsAuthenticated()
	s.sess.Logout(ctx)
	if wasIn {
		s.notify.Info("You have been logged out")
	}
}

// ChangePassword updates the stored profile, and the token as well when the backend rotates it.
func (s *Service) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	if !s.sess.IsAuthenticated() {
		return ErrAuthRequired
	}
	if err := validate(in); err != nil {
		return err
	}
	res, err := s.gw.ChangePassword(ctx, s.sess.Token(), in.CurrentPassword, in.Password, in.PasswordConfirmation)
	if err != nil {
		return s.fail(err, "Failed to change password")
	}
	if res.User.ID != 0 {
		s.sess.UpdateUser(ctx, res.User)
		if res.Token != "" {
			s.sess.Login(ctx, res.User, res.Token)
		}
	}
	s.notify.Success("Password changed successfully!")
	return nil
}

func (s *Service) ForgotPassword(ctx context.Context, in ForgotPasswordInput) error {
	if err := validate(in); err != nil {
		return err
	}
	if err := s.gw.ForgotPassword(ctx, in.Email); err != nil {
		return s.fail(err, "Failed to send reset email")
	}
	s.notify.Success("Reset email sent! Check your inbox.")
	return nil
}

// ResetPassword does not log the user in; they go back to the login page.
func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := validate(in); err != nil {
		return err
	}
	if _, err := s.gw.ResetPassword(ctx, in.Code, in.Password, in.PasswordConfirmation); err != nil {
		return s.fail(err, "Failed to reset password")
	}
	s.notify.Success("Password reset successfully! Redirecting to login...")
	return nil
}

func (s *Service) ConfirmEmail(ctx context.Context, confirmation string) error {
	if confirmation == "" {
		return ErrInvalidConfirmation
	}
	if err := s.gw.ConfirmEmail(ctx, confirmation); err != nil {
		return s.fail(err, "Email confirmation failed")
	}
	s.notify.Success("Email confirmed!")
	return nil
}
