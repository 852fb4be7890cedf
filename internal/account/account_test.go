package account

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/account/mocks"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/notify"
	"github.com/azaliaz/ruboni/internal/session"
	"github.com/azaliaz/ruboni/internal/storage"
)

var amina = models.User{ID: 5, Email: "amina@example.com", FirstName: "Amina", LastName: "Juma"}

func newService(t *testing.T, ctrl *gomock.Controller) (*Service, *mocks.MockGateway, *session.Store, *notify.Feed) {
	t.Helper()
	gw := mocks.NewMockGateway(ctrl)
	sess := session.New(storage.New())
	sess.Init(context.Background())
	feed := notify.NewFeed(10)
	return New(gw, sess, feed), gw, sess, feed
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, gw, sess, feed := newService(t, ctrl)

	gw.EXPECT().Login(gomock.Any(), "amina@example.com", "secret1").
		Return(gateway.AuthResult{User: amina, Token: "jwt-5"}, nil)

	u, err := svc.Login(context.Background(), LoginInput{Email: "amina@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, amina, u)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "jwt-5", sess.Token())
	assert.Equal(t, "Welcome back, Amina Juma!", feed.Drain()[0].Message)
}

func TestLogin_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, gw, sess, feed := newService(t, ctrl)

	gw.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(gateway.AuthResult{}, &gateway.APIError{Status: 400, Message: "Invalid identifier or password"})

	_, err := svc.Login(context.Background(), LoginInput{Email: "amina@example.com", Password: "wrong12"})
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "Invalid identifier or password", feed.Drain()[0].Message)
}

func TestValidation_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name  string
		run   func() error
		field string
		msg   string
	}{
		{
			name:  "login bad email",
			run:   func() error { _, err := svc.Login(ctx, LoginInput{Email: "nope", Password: "secret1"}); return err },
			field: "Email",
			msg:   "Invalid email",
		},
		{
			name:  "login short password",
			run:   func() error { _, err := svc.Login(ctx, LoginInput{Email: "a@b.co", Password: "123"}); return err },
			field: "Password",
			msg:   "Password must be at least 6 characters",
		},
		{
			name: "signup mismatch",
			run: func() error {
				_, err := svc.Signup(ctx, SignupInput{
					FirstName: "Neema", LastName: "Mushi", Email: "neema@example.com",
					Password: "secret1", ConfirmPassword: "secret2",
				})
				return err
			},
			field: "ConfirmPassword",
			msg:   "Passwords must match",
		},
		{
			name:  "forgot password empty",
			run:   func() error { return svc.ForgotPassword(ctx, ForgotPasswordInput{}) },
			field: "Email",
			msg:   "Email is required",
		},
		{
			name: "reset mismatch",
			run: func() error {
				return svc.ResetPassword(ctx, ResetPasswordInput{Code: "c", Password: "secret1", PasswordConfirmation: "secret9"})
			},
			field: "PasswordConfirmation",
			msg:   "Passwords don't match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Fields[tt.field])
		})
	}
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, gw, sess, _ := newService(t, ctrl)

	gw.EXPECT().Register(gomock.Any(), gateway.RegisterInput{
		Email: "neema@example.com", Password: "secret1", FirstName: "Neema", LastName: "Mushi", Phone: "+255700000001",
	}).Return(gateway.AuthResult{User: models.User{ID: 9, Email: "neema@example.com"}, Token: "jwt-9"}, nil)

	_, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Neema", LastName: "Mushi", Email: "neema@example.com", Phone: "+255700000001",
		Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-9", sess.Token())
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("requires login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _, _ := newService(t, ctrl)
		err := svc.ChangePassword(ctx, ChangePasswordInput{CurrentPassword: "secret1", Password: "secret2", PasswordConfirmation: "secret2"})
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("same as current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, sess, _ := newService(t, ctrl)
		sess.Login(ctx, amina, "jwt-5")
		err := svc.ChangePassword(ctx, ChangePasswordInput{CurrentPassword: "secret1", Password: "secret1", PasswordConfirmation: "secret1"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "New password must be different from current password", verr.Fields["Password"])
	})

	t.Run("updates user and token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, gw, sess, feed := newService(t, ctrl)
		sess.Login(ctx, amina, "jwt-5")

		refreshed := amina
		refreshed.Confirmed = true
		gw.EXPECT().ChangePassword(gomock.Any(), "jwt-5", "secret1", "secret2", "secret2").
			Return(gateway.AuthResult{User: refreshed, Token: "jwt-5b"}, nil)

		require.NoError(t, svc.ChangePassword(ctx, ChangePasswordInput{CurrentPassword: "secret1", Password: "secret2", PasswordConfirmation: "secret2"}))
		u, _ := sess.User()
		assert.True(t, u.Confirmed)
		assert.Equal(t, "jwt-5b", sess.Token())
		assert.Equal(t, "Password changed successfully!", feed.Drain()[0].Message)
	})
}

func TestChangePassword_UsesSessionMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockGateway(ctrl)
	sess := mocks.NewMockSession(ctrl)
	n := mocks.NewMockNotifier(ctrl)
	svc := New(gw, sess, n)

	sess.EXPECT().IsAuthenticated().Return(true)
	sess.EXPECT().Token().Return("jwt-5")
	gw.EXPECT().ChangePassword(gomock.Any(), "jwt-5", "secret1", "secret2", "secret2").
		Return(gateway.AuthResult{User: amina}, nil)
	sess.EXPECT().UpdateUser(gomock.Any(), amina).Times(1)
	sess.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	n.EXPECT().Success("Password changed successfully!")

	require.NoError(t, svc.ChangePassword(context.Background(), ChangePasswordInput{
		CurrentPassword: "secret1", Password: "secret2", PasswordConfirmation: "secret2",
	}))
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, sess, feed := newService(t, ctrl)
	ctx := context.Background()
	sess.Login(ctx, amina, "jwt-5")

	svc.Logout(ctx)
	svc.Logout(ctx)
	assert.False(t, sess.IsAuthenticated())
	assert.Len(t, feed.Drain(), 1)
}

func TestPasswordRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, gw, sess, feed := newService(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ForgotPassword(gomock.Any(), "amina@example.com").Return(nil)
	gw.EXPECT().ResetPassword(gomock.Any(), "code-1", "secret2", "secret2").
		Return(gateway.AuthResult{User: amina, Token: "jwt-new"}, nil)
	gw.EXPECT().ConfirmEmail(gomock.Any(), "bad").Return(&gateway.APIError{Status: 400, Message: "Invalid token"})

	require.NoError(t, svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "amina@example.com"}))
	require.NoError(t, svc.ResetPassword(ctx, ResetPasswordInput{Code: "code-1", Password: "secret2", PasswordConfirmation: "secret2"}))
	assert.False(t, sess.IsAuthenticated())

	assert.ErrorIs(t, svc.ConfirmEmail(ctx, ""), ErrInvalidConfirmation)
	assert.Error(t, svc.ConfirmEmail(ctx, "bad"))

	notices := feed.Drain()
	require.Len(t, notices, 3)
	assert.Equal(t, "Reset email sent! Check your inbox.", notices[0].Message)
	assert.Equal(t, "Invalid token", notices[2].Message)
}
