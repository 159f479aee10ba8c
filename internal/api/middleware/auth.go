package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

type guestKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// GuestClaims claims токена гостя
type GuestClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth проверяет Bearer токен (HS256) и кладет гостя в контекст запроса
func JWTAuth(secret string, log Logger) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			var claims GuestClaims
			token, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if claims.Subject == "" {
				log.Warn("%s %s - token without subject", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			guest := domain.Guest{
				ID:    claims.Subject,
				Name:  claims.Name,
				Email: claims.Email,
			}

			next.ServeHTTP(w, r.WithContext(WithGuest(r.Context(), guest)))
		})
	}
}

// WithGuest кладет гостя в контекст
func WithGuest(ctx context.Context, guest domain.Guest) context.Context {
	return context.WithValue(ctx, guestKey{}, guest)
}

// GuestFromContext возвращает гостя, положенного JWTAuth
func GuestFromContext(ctx context.Context) (domain.Guest, bool) {
	guest, ok := ctx.Value(guestKey{}).(domain.Guest)
	if !ok || guest.ID == "" {
		return domain.Guest{}, false
	}
	return guest, true
}
