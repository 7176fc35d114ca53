package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

func actorEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"userId": actor.UserID,
			"role":   actor.Role,
		})
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantRole   string
	}{
		{name: "client", userID: "42", role: "client", wantStatus: http.StatusOK, wantRole: "client"},
		{name: "b2b", userID: "42", role: "b2b", wantStatus: http.StatusOK, wantRole: "b2b"},
		{name: "chef", userID: "7", role: "chef", wantStatus: http.StatusOK, wantRole: "chef"},
		{name: "admin", userID: "1", role: "admin", wantStatus: http.StatusOK, wantRole: "admin"},
		{name: "missing role", userID: "42", wantStatus: http.StatusUnauthorized},
		{name: "missing user", role: "client", wantStatus: http.StatusUnauthorized},
		{name: "non numeric user", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative user", userID: "-5", wantStatus: http.StatusUnauthorized},
		{name: "unknown role", userID: "42", role: "root", wantStatus: http.StatusUnauthorized},
		{name: "system role from outside", userID: "42", role: "system", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(actorEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, handlers.CodeUnauthorized, body.Code)
				return
			}
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantRole, body["role"])
		})
	}
}

func TestGetActor_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetActor(req.Context())
	assert.False(t, ok)

	ctx := WithActor(req.Context(), domain.Actor{UserID: 3, Role: domain.RoleChef})
	actor, ok := GetActor(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), actor.UserID)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	})
}

func TestRateLimiter(t *testing.T) {
	// rps почти ноль: токены не восстанавливаются за время теста
	rl := NewRateLimiter(0.001, 2)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := rl.Limit(ok)

	do := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, userID)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("1"))
	assert.Equal(t, http.StatusOK, do("1"))
	assert.Equal(t, http.StatusTooManyRequests, do("1"))

	// другой пользователь со своим бюджетом
	assert.Equal(t, http.StatusOK, do("2"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("user:1")
	now = now.Add(visitorTTL + time.Second)
	rl.getLimiter("user:2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "user:1")
	assert.Contains(t, rl.visitors, "user:2")
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "ip:10.0.0.1", clientKey(req))

	req.Header.Set(HeaderUserID, "9")
	assert.Equal(t, "user:9", clientKey(req))
}
