package bootstrap

import (
	"context"
	"database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogly-dev/blogly/internal/infra/persistence/dbtest"
	persistence "github.com/blogly-dev/blogly/internal/infra/persistence/ent"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	post_service "github.com/blogly-dev/blogly/pkg/service/post"
	tag_service "github.com/blogly-dev/blogly/pkg/service/tag"
	user_service "github.com/blogly-dev/blogly/pkg/service/user"
)

type services struct {
	user *user_service.Service
	post *post_service.Service
	tag  *tag_service.Service
}

func setup(t *testing.T) (*Bootstrapper, *sql.DB, services) {
	t.Helper()
	db := dbtest.Open(t)
	drv := entsql.OpenDB(dialect.SQLite, db)
	b := NewBootstrapper(db, drv, constant.DefaultImageURL)
	require.NoError(t, b.InitializeDatabase(context.Background()))

	repos := persistence.NewRepositories(drv, drv.Dialect())
	tm := persistence.NewEntTransactionManager(drv)
	return b, db, services{
		user: user_service.NewService(repos.User, repos.Post, tm, constant.DefaultImageURL),
		post: post_service.NewService(repos.Post, repos.User, repos.Tag, tm),
		tag:  tag_service.NewService(repos.Tag, repos.Post, tm),
	}
}

func TestInitializeDatabase_Idempotent(t *testing.T) {
	b, _, _ := setup(t)
	assert.NoError(t, b.InitializeDatabase(context.Background()))
}

func TestInitializeDatabase_KeepsImageClearedByEdit(t *testing.T) {
	b, db, svcs := setup(t)
	ctx := context.Background()

	u, err := svcs.user.Create(ctx, &model.CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", ImageURL: "https://x/a.png"})
	require.NoError(t, err)
	_, err = svcs.user.Update(ctx, u.ID, &model.UpdateUserRequest{FirstName: "Ada", LastName: "Lovelace", ImageURL: ""})
	require.NoError(t, err)

	var stored sql.NullString
	require.NoError(t, db.QueryRow("SELECT image_url FROM users WHERE id = ?", u.ID).Scan(&stored))
	assert.True(t, stored.Valid, "清空的头像应存为空字符串而不是 NULL")
	assert.Equal(t, "", stored.String)

	// 重启后再次执行初始化，编辑时清空的头像不能被补成默认值
	require.NoError(t, b.InitializeDatabase(ctx))

	got, err := svcs.user.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.ImageURL)
}

func TestInitializeDatabase_BackfillsLegacyNullImage(t *testing.T) {
	b, db, svcs := setup(t)
	ctx := context.Background()

	_, err := db.Exec("INSERT INTO users (first_name, last_name, image_url) VALUES ('Old', 'Row', NULL)")
	require.NoError(t, err)

	require.NoError(t, b.InitializeDatabase(ctx))

	users, err := svcs.user.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, constant.DefaultImageURL, users[0].ImageURL)
}

func TestSeedDemoData(t *testing.T) {
	b, _, svcs := setup(t)
	ctx := context.Background()

	require.NoError(t, b.SeedDemoData(ctx, svcs.user, svcs.post, svcs.tag))

	users, err := svcs.user.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(demoUsers))
	assert.Equal(t, "Alda", users[0].LastName)
	assert.Equal(t, constant.DefaultImageURL, users[0].ImageURL)

	tags, err := svcs.tag.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, len(demoTags))

	posts, err := svcs.post.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	detail, err := svcs.post.GetDetail(ctx, posts[1].ID)
	require.NoError(t, err)
	assert.Len(t, detail.Tags, 2)

	// 第二次执行不会重复写入
	require.NoError(t, b.SeedDemoData(ctx, svcs.user, svcs.post, svcs.tag))
	users, err = svcs.user.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(demoUsers))
}
