package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "cardshop-backend/internal/auth/domain"
	authdto "cardshop-backend/internal/auth/dto"
	"cardshop-backend/internal/auth/usecase"
	userdomain "cardshop-backend/internal/user/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results and records the device key it
// was called with
type stubAuthUsecase struct {
	user      *userdomain.User
	pair      *authdto.TokenPair
	claims    *usecase.Claims
	err       error
	deviceKey string
}

func (s *stubAuthUsecase) Register(_ context.Context, _, _ string) (*userdomain.User, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) Login(_ context.Context, _, _, deviceKey string) (*authdto.TokenPair, error) {
	s.deviceKey = deviceKey
	return s.pair, s.err
}

func (s *stubAuthUsecase) RefreshTokens(_ context.Context, _, deviceKey string) (*authdto.TokenPair, error) {
	s.deviceKey = deviceKey
	return s.pair, s.err
}

func (s *stubAuthUsecase) Logout(_ context.Context, _ string) error {
	return s.err
}

func (s *stubAuthUsecase) ValidateToken(_ string) (*usecase.Claims, error) {
	return s.claims, s.err
}

func newTestRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(stub)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
	r.GET("/protected", AuthMiddleware(stub), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func testPair() *authdto.TokenPair {
	return &authdto.TokenPair{
		AccessToken: "access",
		RefreshToken: &authdomain.RefreshToken{
			Token:     "refresh",
			UserID:    "u1",
			DeviceKey: "agent",
			ExpiresAt: time.Now().Add(720 * time.Hour),
		},
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("created user is public-shaped", func(t *testing.T) {
		stub := &stubAuthUsecase{user: &userdomain.User{
			ID:          "u1",
			PhoneNumber: "+71234567890",
			Password:    "$2a$10$hash",
		}}
		r := newTestRouter(stub)

		body := `{"phone_number":"+71234567890","password":"secret1234","password_repeat":"secret1234"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"phone_number":"+71234567890"`)
		assert.NotContains(t, w.Body.String(), "hash", "password hash must never leave the API")
	})

	t.Run("mismatched passwords are rejected at the boundary", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{})

		body := `{"phone_number":"+71234567890","password":"secret1234","password_repeat":"different1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate registration maps to 409", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{err: usecase.ErrUserExists})

		body := `{"phone_number":"+71234567890","password":"secret1234","password_repeat":"secret1234"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("returns the token pair and uses the user agent as device key", func(t *testing.T) {
		stub := &stubAuthUsecase{pair: testPair()}
		r := newTestRouter(stub)

		body := `{"phone_number":"+71234567890","password":"secret1234"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0 test")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Mozilla/5.0 test", stub.deviceKey)
		assert.Contains(t, w.Body.String(), `"access_token":"access"`)
		assert.Contains(t, w.Body.String(), `"refresh_token":"refresh"`)
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{err: usecase.ErrInvalidCredentials})

		body := `{"phone_number":"+71234567890","password":"secret1234"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefreshHandler(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want int
	}{
		{"unknown token", usecase.ErrInvalidToken, http.StatusUnauthorized},
		{"expired session", usecase.ErrSessionExpired, http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubAuthUsecase{err: tc.err})

			body := `{"refresh_token":"gone"}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	t.Run("success is empty", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{})

		body := `{"refresh_token":"refresh"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown token maps to 401", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{err: usecase.ErrInvalidToken})

		body := `{"refresh_token":"gone"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("passes claims through", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{claims: &usecase.Claims{UserID: "u1"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer sometoken")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})

	t.Run("missing header", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{claims: &usecase.Claims{UserID: "u1"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{claims: &usecase.Claims{UserID: "u1"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token sometoken")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := newTestRouter(&stubAuthUsecase{err: usecase.ErrInvalidToken})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
