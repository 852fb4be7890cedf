package devcms

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/devcms/store"
	"github.com/azaliaz/ruboni/internal/logger"
)

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type changePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword" validate:"required"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Code                 string `json:"code" validate:"required"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

func userJSON(u store.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"documentId": u.DocumentID,
		"username":   u.Username,
		"email":      u.Email,
		"provider":   "local",
		"confirmed":  u.Confirmed,
		"blocked":    false,
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"phone":      u.Phone,
		"createdAt":  u.CreatedAt,
	}
}

// bind decodes and validates the body, answering 400 itself on failure.
func (s *Server) bind(ctx *gin.Context, req any) bool {
	log := logger.Get()
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		validationFailed(ctx, "Invalid request body")
		return false
	}
	if err := s.valid.Struct(req); err != nil {
		log.Debug().Err(err).Msg("request rejected")
		validationFailed(ctx, err.Error())
		return false
	}
	return true
}

func (s *Server) issue(ctx *gin.Context, u store.User) {
	log := logger.Get()
	token, err := s.createJWTToken(u.ID)
	if err != nil {
		log.Error().Err(err).Msg("create jwt failed")
		internalErr(ctx)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"jwt": token, "user": userJSON(u)})
}

func (s *Server) login(ctx *gin.Context) {
	var req loginRequest
	if !s.bind(ctx, &req) {
		return
	}
	u, err := s.storage.Authenticate(req.Identifier, req.Password)
	if err != nil {
		validationFailed(ctx, store.ErrInvalidCredentials.Error())
		return
	}
	s.issue(ctx, u)
}

func (s *Server) register(ctx *gin.Context) {
	var req registerRequest
	if !s.bind(ctx, &req) {
		return
	}
	u, err := s.storage.CreateUser(store.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			fail(ctx, http.StatusBadRequest, "ApplicationError", err.Error())
			return
		}
		internalErr(ctx)
		return
	}
	s.issue(ctx, u)
}

func (s *Server) me(ctx *gin.Context) {
	u, err := s.storage.User(callerID(ctx))
	if err != nil {
		notFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, userJSON(u))
}

func (s *Server) changePassword(ctx *gin.Context) {
	var req changePasswordRequest
	if !s.bind(ctx, &req) {
		return
	}
	if req.Password != req.PasswordConfirmation {
		validationFailed(ctx, "Passwords do not match")
		return
	}
	u, err := s.storage.ChangePassword(callerID(ctx), req.CurrentPassword, req.Password)
	switch {
	case errors.Is(err, store.ErrInvalidCurrentPass), errors.Is(err, store.ErrSamePassword):
		validationFailed(ctx, err.Error())
		return
	case err != nil:
		internalErr(ctx)
		return
	}
	s.issue(ctx, u)
}

func (s *Server) forgotPassword(ctx *gin.Context) {
	var req forgotPasswordRequest
	if !s.bind(ctx, &req) {
		return
	}
	if _, err := s.storage.IssueResetCode(req.Email); err != nil {
		internalErr(ctx)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) resetPassword(ctx *gin.Context) {
	var req resetPasswordRequest
	if !s.bind(ctx, &req) {
		return
	}
	if req.Password != req.PasswordConfirmation {
		validationFailed(ctx, "Passwords do not match")
		return
	}
	u, err := s.storage.ResetPassword(req.Code, req.Password)
	if err != nil {
		validationFailed(ctx, store.ErrInvalidCode.Error())
		return
	}
	s.issue(ctx, u)
}

func (s *Server) confirmEmail(ctx *gin.Context) {
	if _, err := s.storage.ConfirmEmail(ctx.Query("confirmation")); err != nil {
		validationFailed(ctx, store.ErrInvalidToken.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
