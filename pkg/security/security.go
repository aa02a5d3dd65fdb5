package security

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	allowedHeaders = "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With"
	allowedMethods = "POST, OPTIONS, GET, PUT, DELETE, PATCH"
)

// CORS 中间件。仅回显白名单中的 Origin，带凭证；
// 白名单包含 "*" 时放行任意来源（此时不带凭证）。
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAny := false
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAny = true
			continue
		}
		originSet[strings.TrimSuffix(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Add("Vary", "Origin")

		origin := c.Request.Header.Get("Origin")
		if _, ok := originSet[origin]; ok {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
		} else if allowAny && origin != "" {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 设置基础安全响应头
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}
		c.Next()
	}
}

// limiterStore 按客户端 IP 维护令牌桶，空闲条目定期回收
type limiterStore struct {
	mu       sync.Mutex
	visitors map[string]*visitorEntry
	rate     rate.Limit
	burst    int
}

type visitorEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(maxRequests int, window time.Duration) *limiterStore {
	return &limiterStore{
		visitors: make(map[string]*visitorEntry),
		rate:     rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	entry, ok := s.visitors[ip]
	if !ok {
		entry = &visitorEntry{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.visitors[ip] = entry
	}
	entry.lastSeen = time.Now()
	s.mu.Unlock()

	return entry.limiter.Allow()
}

func (s *limiterStore) sweep(olderThan time.Duration) {
	s.mu.Lock()
	for ip, entry := range s.visitors {
		if time.Since(entry.lastSeen) > olderThan {
			delete(s.visitors, ip)
		}
	}
	s.mu.Unlock()
}

// RateLimiter 按 IP 限流。窗口内超过 maxRequests 次返回 429。
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	store := newLimiterStore(maxRequests, window)

	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			store.sweep(expiry)
		}
	}()

	return func(c *gin.Context) {
		if !store.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
