package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
)

// RateLimiter aplica uma janela deslizante de requisições por chave.
// A chave pode ser um IP (tráfego anônimo) ou o identificador do usuário.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	limit   int
	window  time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}

	go rl.sweep()

	return rl
}

// sweep remove chaves inativas para que o mapa não cresça sem limite.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, stamps := range rl.entries {
			live := stamps[:0]
			for _, t := range stamps {
				if t.After(cutoff) {
					live = append(live, t)
				}
			}
			if len(live) == 0 {
				delete(rl.entries, key)
			} else {
				rl.entries[key] = live
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	var live []time.Time
	for _, t := range rl.entries[key] {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}

	if len(live) >= rl.limit {
		rl.entries[key] = live
		return false
	}

	rl.entries[key] = append(live, now)
	return true
}

func tooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, contracts.ErrorResponse{
		Error:   "RATE_LIMIT_EXCEEDED",
		Message: "Muitas requisições. Tente novamente em alguns minutos.",
	})
	c.Abort()
}

// RateLimit limita requisições por IP de origem.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser limita requisições por usuário autenticado,
// caindo para o IP quando a rota ainda não identificou o usuário.
func RateLimitByUser(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, ok := c.Get("user_id"); ok {
			if id, ok := userID.(string); ok && id != "" {
				key = id
			}
		}

		if !limiter.Allow(key) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
