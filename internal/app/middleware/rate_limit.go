/*
 * @Description: 表单提交频率限制中间件
 * @Author: blogly-dev
 * @Date: 2026-10-14 09:50:21
 * @LastEditTime: 2026-10-15 15:36:48
 * @LastEditors: blogly-dev
 */
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/blogly-dev/blogly/pkg/response"
)

// ipRateLimiter 为每个IP地址维护一个令牌桶
type ipRateLimiter struct {
	limiters map[string]*limiterInfo
	mu       sync.Mutex
	// 每个IP每分钟允许的提交数
	requestsPerMinute int
	// 突发提交数
	burst int
	// 多久没访问的IP会被清理
	idleTTL time.Duration
}

// limiterInfo 存储限流器及其最后访问时间
type limiterInfo struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

func newIPRateLimiter(requestsPerMinute, burst int) *ipRateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &ipRateLimiter{
		limiters:          make(map[string]*limiterInfo),
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
		idleTTL:           10 * time.Minute,
	}
}

// allow 判断 ip 此刻能否再提交一次，顺便淘汰长时间未访问的IP
func (i *ipRateLimiter) allow(ip string, now time.Time) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	for key, info := range i.limiters {
		if now.Sub(info.lastAccessed) > i.idleTTL {
			delete(i.limiters, key)
		}
	}

	info, exists := i.limiters[ip]
	if !exists {
		info = &limiterInfo{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(i.requestsPerMinute)), i.burst),
		}
		i.limiters[ip] = info
	}
	info.lastAccessed = now
	return info.limiter.AllowN(now, 1)
}

// FormRateLimit 限制每个IP提交表单（POST）的频率，GET 请求不受影响
func FormRateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(requestsPerMinute, burst)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if !limiter.allow(getClientIP(c), time.Now()) {
			response.ErrorPage(c, http.StatusTooManyRequests, "提交过于频繁，请稍后再试")
			c.Abort()
			return
		}
		c.Next()
	}
}

// getClientIP 获取客户端真实IP地址
func getClientIP(c *gin.Context) string {
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	// X-Forwarded-For 格式为：client, proxy1, proxy2
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}

	if ip, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return ip
	}
	return c.Request.RemoteAddr
}
