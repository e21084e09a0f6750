/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-14 10:12:33
 * @LastEditTime: 2026-10-15 18:20:51
 * @LastEditors: blogly-dev
 */
package router

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/internal/app/middleware"
	"github.com/blogly-dev/blogly/internal/pkg/version"
	post_handler "github.com/blogly-dev/blogly/pkg/handler/post"
	tag_handler "github.com/blogly-dev/blogly/pkg/handler/tag"
	user_handler "github.com/blogly-dev/blogly/pkg/handler/user"
	"github.com/blogly-dev/blogly/pkg/response"
)

// NoCacheMiddleware 禁止浏览器缓存页面，避免提交表单后看到旧数据
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}

// Pinger 用于健康检查，*sql.DB 满足该接口
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthzTimeout = 2 * time.Second

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	db Pinger

	userHandler *user_handler.Handler
	postHandler *post_handler.Handler
	tagHandler  *tag_handler.Handler

	formsPerMinute int
	formsBurst     int
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	db Pinger,
	userHandler *user_handler.Handler,
	postHandler *post_handler.Handler,
	tagHandler *tag_handler.Handler,
	formsPerMinute int,
	formsBurst int,
) *Router {
	return &Router{
		db:             db,
		userHandler:    userHandler,
		postHandler:    postHandler,
		tagHandler:     tagHandler,
		formsPerMinute: formsPerMinute,
		formsBurst:     formsBurst,
	}
}

// Setup 在 engine 上注册全部路由。模板需要事先通过 LoadTemplates 加载。
func (r *Router) Setup(engine *gin.Engine) {
	engine.GET("/healthz", r.healthz)

	pages := engine.Group("/")
	pages.Use(NoCacheMiddleware(), middleware.FormRateLimit(r.formsPerMinute, r.formsBurst))

	pages.GET("/", r.userHandler.Home)
	r.registerUserRoutes(pages)
	r.registerPostRoutes(pages)
	r.registerTagRoutes(pages)

	engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
}

func (r *Router) registerUserRoutes(g *gin.RouterGroup) {
	users := g.Group("/users")
	{
		users.GET("", r.userHandler.List)
		users.GET("/new", r.userHandler.NewForm)
		users.POST("/new", r.userHandler.Create)
		users.GET("/:id", r.userHandler.Show)
		users.GET("/:id/edit", r.userHandler.EditForm)
		users.POST("/:id/edit", r.userHandler.Update)
		users.POST("/:id/delete", r.userHandler.Delete)

		// 文章总是挂在某个用户下创建
		users.GET("/:id/posts/new", r.postHandler.NewForm)
		users.POST("/:id/posts/new", r.postHandler.Create)
	}
}

func (r *Router) registerPostRoutes(g *gin.RouterGroup) {
	posts := g.Group("/posts")
	{
		posts.GET("/:id", r.postHandler.Show)
		posts.GET("/:id/edit", r.postHandler.EditForm)
		posts.POST("/:id/edit", r.postHandler.Update)
		posts.POST("/:id/delete", r.postHandler.Delete)
	}
}

func (r *Router) registerTagRoutes(g *gin.RouterGroup) {
	tags := g.Group("/tags")
	{
		tags.GET("", r.tagHandler.List)
		tags.GET("/new", r.tagHandler.NewForm)
		tags.POST("/new", r.tagHandler.Create)
		tags.GET("/:id", r.tagHandler.Show)
		tags.GET("/:id/edit", r.tagHandler.EditForm)
		tags.POST("/:id/edit", r.tagHandler.Update)
		tags.POST("/:id/delete", r.tagHandler.Delete)
	}
}

// healthz 检查数据库连接，不可用时返回 503
func (r *Router) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthzTimeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		log.Printf("❌ 健康检查失败，数据库不可用: %v", err)
		response.Fail(c, http.StatusServiceUnavailable, "数据库不可用")
		return
	}
	response.Success(c, gin.H{
		"status": "ok",
		"build":  version.Get(),
	}, "ok")
}
