package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/account"
	"github.com/azaliaz/ruboni/internal/domain/models"
)

func (s *Server) sessionInfo(ctx *gin.Context) {
	user, ok := s.deps.Session.User()
	resp := gin.H{
		"isAuthenticated": s.deps.Session.IsAuthenticated(),
		"isLoading":       s.deps.Session.IsLoading(),
	}
	if ok {
		resp["user"] = user
	}
	ctx.JSON(http.StatusOK, resp)
}

func (s *Server) notifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.deps.Notify.Drain())
}

func (s *Server) login(ctx *gin.Context) {
	var req account.LoginInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	prev, _ := s.deps.Session.User()
	user, err := s.deps.Account.Login(ctx.Request.Context(), req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	s.forgetPrevious(prev, user)
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) signup(ctx *gin.Context) {
	var req account.SignupInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	prev, _ := s.deps.Session.User()
	user, err := s.deps.Account.Signup(ctx.Request.Context(), req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	s.forgetPrevious(prev, user)
	ctx.JSON(http.StatusCreated, gin.H{"user": user})
}

// forgetPrevious drops the bookings and form state of the account that was
// signed in before, unless the same account signed in again.
func (s *Server) forgetPrevious(prev, next models.User) {
	if prev.ID != 0 && prev.ID == next.ID {
		return
	}
	s.deps.Bookings.Reset()
	s.deps.Form.Clear()
}

// logout also forgets the fetched bookings and form of the previous user.
func (s *Server) logout(ctx *gin.Context) {
	s.deps.Account.Logout(ctx.Request.Context())
	s.deps.Bookings.Reset()
	s.deps.Form.Clear()
	ctx.Status(http.StatusNoContent)
}

func (s *Server) changePassword(ctx *gin.Context) {
	var req account.ChangePasswordInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.deps.Account.ChangePassword(ctx.Request.Context(), req); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (s *Server) forgotPassword(ctx *gin.Context) {
	var req account.ForgotPasswordInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.deps.Account.ForgotPassword(ctx.Request.Context(), req); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

func (s *Server) resetPassword(ctx *gin.Context) {
	var req account.ResetPasswordInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.deps.Account.ResetPassword(ctx.Request.Context(), req); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (s *Server) confirmEmail(ctx *gin.Context) {
	if err := s.deps.Account.ConfirmEmail(ctx.Request.Context(), ctx.Query("confirmation")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
