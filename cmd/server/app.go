/*
 * @Description: 应用装配与启动
 * @Author: blogly-dev
 * @Date: 2026-10-15 20:05:12
 * @LastEditTime: 2026-10-16 22:41:37
 * @LastEditors: blogly-dev
 */
// blogly/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/internal/app/bootstrap"
	"github.com/blogly-dev/blogly/internal/app/middleware"
	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
	ent_impl "github.com/blogly-dev/blogly/internal/infra/persistence/ent"
	"github.com/blogly-dev/blogly/internal/infra/router"
	"github.com/blogly-dev/blogly/internal/pkg/version"
	"github.com/blogly-dev/blogly/pkg/config"
	post_handler "github.com/blogly-dev/blogly/pkg/handler/post"
	tag_handler "github.com/blogly-dev/blogly/pkg/handler/tag"
	user_handler "github.com/blogly-dev/blogly/pkg/handler/user"
	post_service "github.com/blogly-dev/blogly/pkg/service/post"
	tag_service "github.com/blogly-dev/blogly/pkg/service/tag"
	user_service "github.com/blogly-dev/blogly/pkg/service/user"
	"github.com/blogly-dev/blogly/web"
)

const shutdownTimeout = 10 * time.Second

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg          *config.Config
	engine       *gin.Engine
	sqlDB        *sql.DB
	drv          dialect.Driver
	bootstrapper *bootstrap.Bootstrapper

	userSvc *user_service.Service
	postSvc *post_service.Service
	tagSvc  *tag_service.Service
}

func (a *App) PrintBanner() {
	banner := `

      ██████╗ ██╗      ██████╗  ██████╗ ██╗  ██╗   ██╗
      ██╔══██╗██║     ██╔═══██╗██╔════╝ ██║  ╚██╗ ██╔╝
      ██████╔╝██║     ██║   ██║██║  ███╗██║   ╚████╔╝
      ██╔══██╗██║     ██║   ██║██║   ██║██║    ╚██╔╝
      ██████╔╝███████╗╚██████╔╝╚██████╔╝███████╗██║
      ╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝ ╚══════╝╚═╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" Blogly: %s", version.Get())
	log.Println("--------------------------------------------------------")
}

// NewApp 从默认配置文件构建应用
func NewApp(templates fs.FS) (*App, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return NewAppWithConfig(cfg, templates)
}

// NewAppWithConfig 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewAppWithConfig(cfg *config.Config, templates fs.FS) (*App, func(), error) {
	// --- Phase 1: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	drv, err := database.NewDriver(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
	}

	defaultImageURL := cfg.GetString(config.KeyDefaultImageURL)

	// --- Phase 2: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(sqlDB, drv, defaultImageURL)
	if err := bootstrapper.InitializeDatabase(context.Background()); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// --- Phase 3: 初始化数据仓库层 ---
	repos := ent_impl.NewRepositories(drv, drv.Dialect())
	txManager := ent_impl.NewEntTransactionManager(drv)

	// --- Phase 4: 初始化业务逻辑层 ---
	userSvc := user_service.NewService(repos.User, repos.Post, txManager, defaultImageURL)
	postSvc := post_service.NewService(repos.Post, repos.User, repos.Tag, txManager)
	tagSvc := tag_service.NewService(repos.Tag, repos.Post, txManager)

	// --- Phase 5: 初始化表现层 ---
	userHandler := user_handler.NewHandler(userSvc)
	postHandler := post_handler.NewHandler(postSvc, userSvc, tagSvc)
	tagHandler := tag_handler.NewHandler(tagSvc, postSvc)

	appRouter := router.NewRouter(
		sqlDB,
		userHandler,
		postHandler,
		tagHandler,
		cfg.GetInt(config.KeyFormsPerMinute),
		cfg.GetInt(config.KeyFormsBurst),
	)

	// --- Phase 6: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	if err := router.LoadTemplates(engine, templates, web.TemplatePattern); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("加载页面模板失败: %w", err)
	}
	appRouter.Setup(engine)

	app := &App{
		cfg:          cfg,
		engine:       engine,
		sqlDB:        sqlDB,
		drv:          drv,
		bootstrapper: bootstrapper,
		userSvc:      userSvc,
		postSvc:      postSvc,
		tagSvc:       tagSvc,
	}
	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

// SeedDemoData 写入演示数据，数据库非空时什么也不做
func (a *App) SeedDemoData(ctx context.Context) error {
	return a.bootstrapper.SeedDemoData(ctx, a.userSvc, a.postSvc, a.tagSvc)
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}

// Serve 在 ctx 结束前持续提供服务
func (a *App) Serve(ctx context.Context) error {
	port := a.cfg.GetString(config.KeyServerPort)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("应用程序启动成功，正在监听端口: %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("收到退出信号，正在关闭 HTTP 服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭 HTTP 服务失败: %w", err)
	}
	return <-errCh
}
