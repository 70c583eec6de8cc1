package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// principalContextKey is where the auth middleware stores the caller identity
// extracted from the bearer token.
const principalContextKey = "principal"

// RequestID tags every request and response with an X-Request-Id header so
// log lines from a single call can be correlated. An id supplied by the
// client is kept.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)

		return next(ctx)
	}
}

// AuthMiddleware validates HMAC-signed bearer tokens and resolves the caller
// identity from the subject claim.
type AuthMiddleware struct {
	signingKey []byte
}

// NewAuthMiddleware creates the middleware with the shared signing key.
func NewAuthMiddleware(signingKey string) *AuthMiddleware {
	return &AuthMiddleware{signingKey: []byte(signingKey)}
}

// RequirePrincipal rejects requests without a valid bearer token and stores
// the token subject in the request context for handlers to read.
func (m *AuthMiddleware) RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(ctx, "missing bearer token")
		}

		principal, err := m.parseSubject(token)
		if err != nil {
			return unauthorized(ctx, "invalid bearer token")
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

func (m *AuthMiddleware) parseSubject(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return m.signingKey, nil
		})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.Subject, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// principalFrom returns the caller identity stored by the auth middleware,
// or an empty string on unauthenticated routes.
func principalFrom(ctx echo.Context) string {
	principal, _ := ctx.Get(principalContextKey).(string)
	return principal
}
