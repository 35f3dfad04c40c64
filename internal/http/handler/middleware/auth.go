package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	tokenIssuer "gotodo/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const UserIDKey contextKey = "user_id"

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware gates every todo endpoint: it extracts the bearer token,
// verifies it and attaches the authenticated user id to the request
// context. It is the sole authorization mechanism in front of the stores.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ""
		if reqIDCtx := r.Context().Value(RequestIDKey); reqIDCtx != nil {
			requestID = reqIDCtx.(string)
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respond(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			respond(w, msgInvalidToken, http.StatusForbidden)
			return
		}

		claims, err := m.validator.Validate(parts[1])
		if err != nil {
			respond(w, msgInvalidToken, http.StatusForbidden)
			m.logs.Errorw("token validation failed", "error", err, "request_id", requestID)
			return
		}

		userID, err := tokenIssuer.Subject(claims)
		if err != nil {
			respond(w, msgInvalidToken, http.StatusForbidden)
			m.logs.Errorw("token subject missing or malformed", "error", err, "request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated caller id attached by Auth.
func UserID(ctx context.Context) (uint64, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint64)
	return userID, ok
}

func respond(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
