package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/Lucasliu251/TrashBox-Server/docs"
	"github.com/Lucasliu251/TrashBox-Server/internal/api/handler"
	"github.com/Lucasliu251/TrashBox-Server/internal/api/middleware"
	"github.com/Lucasliu251/TrashBox-Server/internal/config"
	"github.com/Lucasliu251/TrashBox-Server/internal/session"
)

const serviceName = "trashbox-server"

// New 组装路由与中间件
func New(cfg *config.Config, h *handler.Handler, sessions session.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.RateLimit(cfg.RateLimit),
		gzip.Gzip(gzip.DefaultCompression),
		otelgin.Middleware(serviceName),
	)

	// 存活探测
	r.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Server is running..."})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("/onboarding", h.Onboarding)
			users.GET("/me", middleware.SessionAuth(sessions), h.Me)
		}

		posts := api.Group("/posts")
		{
			posts.POST("/", h.CreatePost)
			posts.GET("/", h.ListPosts)
		}
	}

	return r
}
