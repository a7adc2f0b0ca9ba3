package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DeusBlu/sports-season-system/internal/api/middleware"
	"github.com/DeusBlu/sports-season-system/pkg/response"
)

// mustGetUserID 从上下文取出认证中间件写入的用户 ID。
// 取不到说明路由挂载有误，直接以 401 收尾。
func mustGetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.CtxKeyUserID)
	if userID == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return userID, true
}

// getPermissions 取出认证中间件写入的权限列表，未认证时返回空
func getPermissions(c *gin.Context) []string {
	val, exists := c.Get(middleware.CtxKeyPermissions)
	if !exists {
		return nil
	}
	permissions, ok := val.([]string)
	if !ok {
		return nil
	}
	return permissions
}
