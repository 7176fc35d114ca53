package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
)

// visitorTTL через сколько простоя лимитер пользователя удаляется
const visitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов на пользователя (X-User-ID), без него - на IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter создает лимитер: rps запросов в секунду, burst - размер всплеска
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	// Чистим простаивающих
	for k, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, k)
		}
	}

	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: limiter, lastSeen: now}
	return limiter
}

// Limit middleware для mux
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientKey(r)).Allow() {
			handlers.RespondError(w, http.StatusTooManyRequests, handlers.CodeRateLimited, "слишком много запросов, повторите позже")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if userID := r.Header.Get(HeaderUserID); userID != "" {
		return "user:" + userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
