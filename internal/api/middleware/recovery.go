package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Lucasliu251/TrashBox-Server/pkg/logger"
	"github.com/Lucasliu251/TrashBox-Server/pkg/response"
)

// Recovery 兜底：panic 转 500 包体，同时上报 sentry（若已初始化）
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.Recover(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Code:    http.StatusInternalServerError,
			Message: fmt.Sprintf("Internal Server Error: %v", recovered),
		})
	})
}
