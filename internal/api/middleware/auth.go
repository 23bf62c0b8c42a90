package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
	ContextKeyEmail    = "email"
)

var (
	errMissingToken = errors.New("missing bearer token")
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		key: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// caller's identity in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.key, strings.TrimSpace(tokenString))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("jwthelper.ParseToken -> %w", err)))
			return
		}

		ctx.Set(ContextKeyUsername, claims.Subject)
		ctx.Set(ContextKeyRole, claims.Role)
		ctx.Set(ContextKeyEmail, claims.Email)

		ctx.Next()
	}
}

// GetPrincipal returns the identity stored by VerifyJWT.
func GetPrincipal(ctx *gin.Context) (domain.Principal, bool) {
	username := ctx.GetString(ContextKeyUsername)
	if username == "" {
		return domain.Principal{}, false
	}

	return domain.Principal{
		Username: username,
		Role:     ctx.GetString(ContextKeyRole),
	}, true
}
