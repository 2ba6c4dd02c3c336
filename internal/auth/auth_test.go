package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "test.identity"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestParseValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testIssuer,
		"scopes":    []string{ScopeInsightsRead},
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Parse(token, Config{Secret: testSecret, Issuer: testIssuer})

	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "tenant-1", claims.TenantID)
	require.True(t, claims.HasScope(ScopeInsightsRead))
	require.False(t, claims.HasScope(ScopeWorkoutsWrite))
}

func TestParseScopesAsSpaceSeparatedString(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testIssuer,
		"scopes":    ScopeInsightsRead + " " + ScopeWorkoutsWrite,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Parse(token, Config{Secret: testSecret, Issuer: testIssuer})

	require.NoError(t, err)
	require.True(t, claims.HasScope(ScopeInsightsRead))
	require.True(t, claims.HasScope(ScopeWorkoutsWrite))
}

func TestParseRejectsMissingTenant(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := Parse(token, Config{Secret: testSecret, Issuer: testIssuer})

	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseEnforcesAudienceWhenConfigured(t *testing.T) {
	cfg := Config{Secret: testSecret, Issuer: testIssuer, Audience: "insight-api"}

	foreign := signToken(t, jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testIssuer,
		"aud":       "activity-api",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	_, err := Parse(foreign, cfg)
	require.ErrorIs(t, err, ErrInvalidToken)

	missing := signToken(t, jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testIssuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	_, err = Parse(missing, cfg)
	require.ErrorIs(t, err, ErrInvalidToken)

	matching := signToken(t, jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testIssuer,
		"aud":       "insight-api",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	claims, err := Parse(matching, cfg)
	require.NoError(t, err)
	require.Equal(t, "tenant-1", claims.TenantID)

	// Audience stays opt-in: tokens without aud still verify when the
	// service does not pin one.
	claims, err = Parse(missing, Config{Secret: testSecret, Issuer: testIssuer})
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
}

func TestParseRejectsEmptyToken(t *testing.T) {
	_, err := Parse("  ", Config{Secret: testSecret, Issuer: testIssuer})
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestMiddlewareSkipsHealthz(t *testing.T) {
	m := NewMiddleware(Config{Secret: testSecret, Issuer: testIssuer}, func(r *http.Request) bool {
		return r.URL.Path == "/healthz"
	})

	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/insights/current", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareInjectsClaims(t *testing.T) {
	m := NewMiddleware(Config{Secret: testSecret, Issuer: testIssuer}, nil)

	var got *Claims
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, jwt.MapClaims{
		"sub":       "user-9",
		"tenant_id": "tenant-9",
		"iss":       testIssuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	require.Equal(t, "user-9", got.Subject)
}
