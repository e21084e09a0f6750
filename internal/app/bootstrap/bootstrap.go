// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"entgo.io/ent/dialect"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	post_service "github.com/blogly-dev/blogly/pkg/service/post"
	tag_service "github.com/blogly-dev/blogly/pkg/service/tag"
	user_service "github.com/blogly-dev/blogly/pkg/service/user"
)

type Bootstrapper struct {
	db              *sql.DB
	drv             dialect.Driver
	defaultImageURL string
}

func NewBootstrapper(db *sql.DB, drv dialect.Driver, defaultImageURL string) *Bootstrapper {
	return &Bootstrapper{
		db:              db,
		drv:             drv,
		defaultImageURL: defaultImageURL,
	}
}

// InitializeDatabase 同步表结构，再处理存量数据
func (b *Bootstrapper) InitializeDatabase(ctx context.Context) error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := database.Migrate(ctx, b.drv); err != nil {
		return err
	}

	// 数据迁移失败不影响启动，表结构已经就绪
	migrationSvc := database.NewMigrationService(b.db, b.drv.Dialect(), b.defaultImageURL)
	if err := migrationSvc.RunMigrations(ctx); err != nil {
		log.Printf("⚠️ 警告：数据迁移失败: %v", err)
	}

	b.checkUserTable(ctx)

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

func (b *Bootstrapper) countUsers(ctx context.Context) (int, error) {
	var n int
	err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+database.TableUsers).Scan(&n)
	return n, err
}

func (b *Bootstrapper) checkUserTable(ctx context.Context) {
	n, err := b.countUsers(ctx)
	if err != nil {
		log.Printf("❌ 错误: 查询 users 表记录数量失败: %v", err)
		return
	}
	if n == 0 {
		log.Println("users 表为空，可以使用 -seed 参数写入演示数据。")
	}
}

// demoUsers 是 -seed 写入的演示数据，每个用户带几篇文章，文章引用 demoTags 中的标签名
var demoUsers = []struct {
	first, last, image string
	posts              []struct {
		title, content string
		tags           []string
	}
}{
	{
		first: "Alan", last: "Alda",
		posts: []struct {
			title, content string
			tags           []string
		}{
			{"First Post!", "Oh, hai.", []string{"Fun"}},
			{"Yet Another Post", "Eh, *nothing* to say.", []string{"Fun", "Even More"}},
		},
	},
	{
		first: "Joel", last: "Burton",
		posts: []struct {
			title, content string
			tags           []string
		}{
			{"Gin Goodness", "Yes, this is a post about **Go** now.", []string{"Even More"}},
		},
	},
	{first: "Jane", last: "Smith"},
}

var demoTags = []string{"Fun", "Even More", "Bloop", "Zope"}

// SeedDemoData 在数据库为空时通过服务层写入演示数据，已有用户时跳过
func (b *Bootstrapper) SeedDemoData(
	ctx context.Context,
	userSvc *user_service.Service,
	postSvc *post_service.Service,
	tagSvc *tag_service.Service,
) error {
	log.Println("--- 开始写入演示数据 ---")

	n, err := b.countUsers(ctx)
	if err != nil {
		return fmt.Errorf("查询用户数量失败: %w", err)
	}
	if n > 0 {
		log.Printf("--- users 表已有 %d 条数据，跳过演示数据。---", n)
		return nil
	}

	tagIDs := make(map[string]uint, len(demoTags))
	for _, name := range demoTags {
		t, err := tagSvc.Create(ctx, &model.CreateTagRequest{Name: name})
		if err != nil {
			return fmt.Errorf("创建标签 %q 失败: %w", name, err)
		}
		tagIDs[name] = t.ID
	}

	for _, du := range demoUsers {
		u, err := userSvc.Create(ctx, &model.CreateUserRequest{
			FirstName: du.first,
			LastName:  du.last,
			ImageURL:  du.image,
		})
		if err != nil {
			return fmt.Errorf("创建用户 %s %s 失败: %w", du.first, du.last, err)
		}

		for _, dp := range du.posts {
			ids := make([]uint, 0, len(dp.tags))
			for _, name := range dp.tags {
				ids = append(ids, tagIDs[name])
			}
			if _, err := postSvc.Create(ctx, u.ID, &model.CreatePostRequest{
				Title:   dp.title,
				Content: dp.content,
				TagIDs:  ids,
			}); err != nil {
				return fmt.Errorf("创建文章 %q 失败: %w", dp.title, err)
			}
		}
	}

	log.Printf("✅ 演示数据写入完成：%d 个用户，%d 个标签", len(demoUsers), len(demoTags))
	return nil
}
