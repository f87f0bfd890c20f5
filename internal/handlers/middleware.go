package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/security"
	"github.com/Zumgugger/vielseitig/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	UserContextKey  ContextKey = "user"
	AdminContextKey ContextKey = "admin"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService  *service.AuthService
	loginLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, loginLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// RequireUser requires a valid teacher login session
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "not authenticated", nil)
			return
		}

		user, err := m.authService.ValidateUserSession(cookie.Value)
		if err != nil {
			m.rejectSession(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin requires a valid administrator login session
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "not authenticated", nil)
			return
		}

		admin, err := m.authService.ValidateAdminSession(cookie.Value)
		if err != nil {
			m.rejectSession(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next(w, r.WithContext(ctx))
	}
}

func (m *Middleware) rejectSession(w http.ResponseWriter, r *http.Request, err error) {
	http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
	if errors.Is(err, service.ErrLoginSessionNotFound) || errors.Is(err, service.ErrLoginSessionExpired) {
		respondWithError(w, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error", err)
}

// RateLimit rejects requests from clients that exceed the limiter's rate
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.loginLimiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests, try again later", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the teacher from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetAdminFromContext retrieves the administrator from the request context
func GetAdminFromContext(ctx context.Context) *models.Admin {
	admin, ok := ctx.Value(AdminContextKey).(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}
