package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lucasliu251/TrashBox-Server/internal/session"
)

const openIDKey = "openid"

// SessionAuth 解析 Authorization: Bearer <token> 并把 openid 放进上下文。
// 不带令牌放行不拦截：/users/me 仍接受 ?openid= 回退，由 handler 决定。
func SessionAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			if openid, err := sessions.Resolve(c.Request.Context(), token); err == nil {
				c.Set(openIDKey, openid)
			}
		}
		c.Next()
	}
}

// OpenIDFrom 取会话解析出的 openid，未认证时为空串
func OpenIDFrom(c *gin.Context) string {
	return c.GetString(openIDKey)
}
