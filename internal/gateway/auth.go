package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

type userWire struct {
	ID        flexID          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Confirmed bool            `json:"confirmed"`
	Avatar    json.RawMessage `json:"avatar"`
}

func (u userWire) model() models.User {
	return models.User{
		ID:        u.ID.Int64(),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Avatar:    firstMedia(u.Avatar),
		Confirmed: u.Confirmed,
	}
}

// AuthResult is what a successful login, signup or password change returns.
type AuthResult struct {
	User  models.User
	Token string
}

type authWire struct {
	JWT  string   `json:"jwt"`
	User userWire `json:"user"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

func (c *Client) auth(ctx context.Context, r request) (AuthResult, error) {
	raw, err := c.do(ctx, r)
	if err != nil {
		return AuthResult{}, err
	}
	var w authWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return AuthResult{}, &APIError{Message: r.fallback, Err: fmt.Errorf("decode auth response: %w", err)}
	}
	return AuthResult{User: w.User.model(), Token: w.JWT}, nil
}

func (c *Client) Login(ctx context.Context, identifier, password string) (AuthResult, error) {
	return c.auth(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/local",
		body:     map[string]string{"identifier": identifier, "password": password},
		fallback: "Login failed",
	})
}

// Register signs the user up. The email doubles as username.
func (c *Client) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	return c.auth(ctx, request{
		method: http.MethodPost,
		path:   "/auth/local/register",
		body: map[string]string{
			"username":  in.Email,
			"email":     in.Email,
			"password":  in.Password,
			"firstName": in.FirstName,
			"lastName":  in.LastName,
			"phone":     in.Phone,
		},
		fallback: "Registration failed",
	})
}

func (c *Client) ChangePassword(ctx context.Context, token, current, password, confirmation string) (AuthResult, error) {
	return c.auth(ctx, request{
		method: http.MethodPost,
		path:   "/auth/change-password",
		token:  token,
		body: map[string]string{
			"currentPassword":      current,
			"password":             password,
			"passwordConfirmation": confirmation,
		},
		fallback: "Failed to change password",
	})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/forgot-password",
		body:     map[string]string{"email": email},
		fallback: "Failed to send reset email",
	})
	return err
}

func (c *Client) ResetPassword(ctx context.Context, code, password, confirmation string) (AuthResult, error) {
	return c.auth(ctx, request{
		method: http.MethodPost,
		path:   "/auth/reset-password",
		body: map[string]string{
			"code":                 code,
			"password":             password,
			"passwordConfirmation": confirmation,
		},
		fallback: "Failed to reset password",
	})
}

func (c *Client) ConfirmEmail(ctx context.Context, confirmation string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/auth/email-confirmation",
		query:    url.Values{"confirmation": {confirmation}},
		fallback: "Failed to confirm email",
	})
	return err
}
