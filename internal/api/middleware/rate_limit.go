package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DeusBlu/sports-season-system/pkg/redis"
	"github.com/DeusBlu/sports-season-system/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的限流中间件。
// 认证后的请求以 user_id 维度限流，否则退化为客户端 IP；
// rdb 为空（降级模式）时直接放行。
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		subject := c.GetString(CtxKeyUserID)
		if subject == "" {
			subject = c.ClientIP()
		}
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), subject)

		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// 限流器故障时放行，不拦截正常业务
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
