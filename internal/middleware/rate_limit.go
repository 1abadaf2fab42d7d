package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL      = 3 * time.Minute
	limiterCleanupEvery = time.Minute
)

type IPRateLimiter struct {
	ips         sync.Map
	mu          sync.Mutex
	r           rate.Limit
	b           int
	lastCleanup atomic.Int64
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{r: r, b: b}
	i.lastCleanup.Store(time.Now().UnixNano())
	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := time.Now()
	i.maybeCleanup(now)

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(now.UnixNano())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(now.UnixNano())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.lastSeen.Store(now.UnixNano())
	i.ips.Store(ip, c)
	return c.limiter
}

// maybeCleanup 在请求路径上顺带清理长时间未出现的 IP，不额外启动 goroutine
func (i *IPRateLimiter) maybeCleanup(now time.Time) {
	last := i.lastCleanup.Load()
	if now.UnixNano()-last < int64(limiterCleanupEvery) {
		return
	}
	if !i.lastCleanup.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	i.ips.Range(func(key, value interface{}) bool {
		c := value.(*client)
		if now.Sub(time.Unix(0, c.lastSeen.Load())) > limiterIdleTTL {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware 创建一个动态限流中间件，速率与突发量每次请求从系统设置读取
func RateLimitMiddleware(appService *service.AppService, rpsKey string, burstKey string) gin.HandlerFunc {
	// 同一个 group 内共用一个 IPRateLimiter 实例
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := appService.GetFloat64(rpsKey)
		currentBurst := appService.GetInt(burstKey)

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(c.ClientIP())

		// 配置变更后动态调整
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
