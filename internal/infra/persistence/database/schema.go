/*
 * @Description: 表结构定义，交给 ent 的 Atlas 迁移器创建和更新
 * @Author: blogly-dev
 * @Date: 2026-10-12 15:31:55
 * @LastEditTime: 2026-10-14 10:03:27
 * @LastEditors: blogly-dev
 */
package database

import (
	"context"
	"fmt"
	"log"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// 表名与列名，仓储层拼 SQL 时使用
const (
	TableUsers    = "users"
	TablePosts    = "posts"
	TableTags     = "tags"
	TablePostTags = "post_tags"

	ColID        = "id"
	ColFirstName = "first_name"
	ColLastName  = "last_name"
	ColImageURL  = "image_url"
	ColTitle     = "title"
	ColContent   = "content"
	ColCreatedAt = "created_at"
	ColUserID    = "user_id"
	ColName      = "name"
	ColPostID    = "post_id"
	ColTagID     = "tag_id"
)

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: ColID, Type: field.TypeUint, Increment: true},
		{Name: ColFirstName, Type: field.TypeString, Size: 50},
		{Name: ColLastName, Type: field.TypeString, Size: 50},
		{Name: ColImageURL, Type: field.TypeString, Size: 2048, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       TableUsers,
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}

	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: ColID, Type: field.TypeUint, Increment: true},
		{Name: ColTitle, Type: field.TypeString, Size: 100},
		{Name: ColContent, Type: field.TypeString, Size: 2147483647},
		{Name: ColCreatedAt, Type: field.TypeTime},
		{Name: ColUserID, Type: field.TypeUint},
	}
	// PostsTable holds the schema information for the "posts" table.
	// 外键不做级联，删除用户时由仓储层显式清理文章。
	PostsTable = &schema.Table{
		Name:       TablePosts,
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "posts_users_posts",
				Columns:    []*schema.Column{PostsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "post_user_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[4]},
			},
		},
	}

	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: ColID, Type: field.TypeUint, Increment: true},
		{Name: ColName, Type: field.TypeString, Size: 50},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       TableTags,
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}

	// PostTagsColumns holds the columns for the "post_tags" table.
	PostTagsColumns = []*schema.Column{
		{Name: ColPostID, Type: field.TypeUint},
		{Name: ColTagID, Type: field.TypeUint},
	}
	// PostTagsTable holds the schema information for the "post_tags" table.
	PostTagsTable = &schema.Table{
		Name:       TablePostTags,
		Columns:    PostTagsColumns,
		PrimaryKey: []*schema.Column{PostTagsColumns[0], PostTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "post_tags_post_id",
				Columns:    []*schema.Column{PostTagsColumns[0]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "post_tags_tag_id",
				Columns:    []*schema.Column{PostTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UsersTable,
		PostsTable,
		TagsTable,
		PostTagsTable,
	}
)

func init() {
	PostsTable.ForeignKeys[0].RefTable = UsersTable
	PostTagsTable.ForeignKeys[0].RefTable = PostsTable
	PostTagsTable.ForeignKeys[1].RefTable = TagsTable
}

// Migrate 创建或更新全部表结构。重复执行是安全的。
func Migrate(ctx context.Context, drv dialect.Driver) error {
	log.Println("⚡ 开始数据库表结构迁移...")
	m, err := schema.NewMigrate(drv,
		schema.WithForeignKeys(true),
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
	)
	if err != nil {
		return fmt.Errorf("创建迁移器失败: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	log.Println("✅ 数据库表结构迁移成功")
	return nil
}
