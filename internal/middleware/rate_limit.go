package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/internal/domain/dto"
	"github.com/munchbox/shipment-service/internal/i18n"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
)

// visitor tracks rate limit state for a single identifier.
type visitor struct {
	tokens    int
	lastReset time.Time
}

// rateLimiterShard is a single shard of the rate limiter.
type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// ShardedRateLimiter distributes visitors across multiple shards to reduce
// lock contention under concurrent load.
type ShardedRateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
}

// NewRateLimiter creates a new sharded rate limiter with the specified rate and window.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a new sharded rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{
			visitors: make(map[string]*visitor),
		}
	}

	rl := &ShardedRateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

// getShard returns the shard for the given identifier using FNV hash.
func (rl *ShardedRateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// checkRateLimit is the core rate limiting logic shared by both limiters.
func (rl *ShardedRateLimiter) checkRateLimit(identifier string) (allowed bool, remaining int) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, exists := shard.visitors[identifier]
	now := time.Now()

	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

func (rl *ShardedRateLimiter) handle(c *gin.Context, identifier string) {
	allowed, remaining := rl.checkRateLimit(identifier)

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

	if !allowed {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)
		c.Header("Retry-After", rl.window.String())
		errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
			WithRequestID(requestID)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
		return
	}

	c.Next()
}

// RateLimit returns a middleware that limits requests per IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.handle(c, "ip:"+c.ClientIP())
	}
}

// SubjectRateLimit returns a middleware that limits requests per authenticated
// subject, falling back to IP-based limiting for anonymous requests.
func (rl *ShardedRateLimiter) SubjectRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := "ip:" + c.ClientIP()
		if subject := GetSubject(c); subject != "" {
			identifier = "subject:" + subject
		}
		rl.handle(c, identifier)
	}
}

// cleanup periodically removes expired visitors from all shards.
func (rl *ShardedRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupExpired removes expired visitors from all shards.
func (rl *ShardedRateLimiter) cleanupExpired() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop gracefully shuts down the rate limiter.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats returns current rate limiter statistics.
func (rl *ShardedRateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
