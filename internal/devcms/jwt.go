package devcms

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/azaliaz/ruboni/internal/logger"
)

const tokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// JWTAuthMiddleware rejects requests without a valid bearer token and
// stores the caller id under "uid".
func (s *Server) JWTAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log := logger.Get()

		tokenParts := strings.Split(ctx.GetHeader("Authorization"), " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			unauthorized(ctx)
			return
		}
		uid, err := s.validToken(tokenParts[1])
		if err != nil {
			log.Error().Err(err).Msg("validate jwt failed")
			unauthorized(ctx)
			return
		}
		if _, err := s.storage.User(uid); err != nil {
			unauthorized(ctx)
			return
		}
		ctx.Set("uid", uid)
		ctx.Next()
	}
}

func (s *Server) validToken(tokenStr string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}
	uid, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uid, nil
}

func (s *Server) createJWTToken(uid int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: strconv.FormatInt(uid, 10),
	})
	return token.SignedString(s.secret)
}

func callerID(ctx *gin.Context) int64 {
	return ctx.GetInt64("uid")
}
