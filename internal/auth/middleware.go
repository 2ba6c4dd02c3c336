package auth

import (
	"net/http"
	"strings"
)

// Known OAuth scopes used by the insight service.
const (
	ScopeInsightsRead  = "insights:read"
	ScopeWorkoutsWrite = "workouts:write"
)

// Skipper allows callers to bypass authentication for specific requests.
type Skipper func(r *http.Request) bool

// Middleware provides HTTP middleware for bearer-token validation.
type Middleware struct {
	cfg     Config
	skipper Skipper
}

// NewMiddleware constructs a middleware with an optional skipper.
func NewMiddleware(cfg Config, skipper Skipper) Middleware {
	return Middleware{cfg: cfg, skipper: skipper}
}

// Wrap attaches authentication handling to an http.Handler.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skipper != nil && m.skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.parseRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		ctx := WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m Middleware) parseRequest(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingToken
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return nil, ErrInvalidToken
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return Parse(token, m.cfg)
}
