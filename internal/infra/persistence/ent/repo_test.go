package ent

import (
	"context"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogly-dev/blogly/internal/infra/persistence/dbtest"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

func newRepos(t *testing.T) (repository.Repositories, dialect.Driver) {
	t.Helper()
	drv := dbtest.NewDriver(t)
	return NewRepositories(drv, drv.Dialect()), drv
}

func mustUser(t *testing.T, repos repository.Repositories, first, last string) *model.User {
	t.Helper()
	u := &model.User{FirstName: first, LastName: last, ImageURL: "https://example.com/" + first + ".png"}
	require.NoError(t, repos.User.Create(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func mustPost(t *testing.T, repos repository.Repositories, userID uint, title string) *model.Post {
	t.Helper()
	p := &model.Post{Title: title, Content: title + " content", UserID: userID}
	require.NoError(t, repos.Post.Create(context.Background(), p))
	require.NotZero(t, p.ID)
	return p
}

func mustTag(t *testing.T, repos repository.Repositories, name string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name}
	require.NoError(t, repos.Tag.Create(context.Background(), tag))
	require.NotZero(t, tag.ID)
	return tag
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()

	u := mustUser(t, repos, "Alan", "Alda")

	got, err := repos.User.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	noImage := &model.User{FirstName: "Joel", LastName: "Burton"}
	require.NoError(t, repos.User.Create(ctx, noImage))
	got, err = repos.User.FindByID(ctx, noImage.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ImageURL)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repos, _ := newRepos(t)

	_, err := repos.User.FindByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrNotFound))

	var nf *constant.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, constant.EntityUser, nf.Entity)
	assert.Equal(t, uint(42), nf.ID)
}

func TestUserRepository_ListOrderedByLastThenFirst(t *testing.T) {
	repos, _ := newRepos(t)

	mustUser(t, repos, "Jane", "Smith")
	mustUser(t, repos, "Bob", "Adams")
	mustUser(t, repos, "Amy", "Smith")

	users, err := repos.User.List(context.Background())
	require.NoError(t, err)

	var names []string
	for _, u := range users {
		names = append(names, u.FullName())
	}
	assert.Equal(t, []string{"Bob Adams", "Amy Smith", "Jane Smith"}, names)
}

func TestUserRepository_ListEmpty(t *testing.T) {
	repos, _ := newRepos(t)

	users, err := repos.User.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_Update(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")

	u.FirstName = "Alan J."
	u.ImageURL = ""
	require.NoError(t, repos.User.Update(ctx, u))

	got, err := repos.User.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alan J.", got.FirstName)
	assert.Equal(t, "Alda", got.LastName)
	assert.Empty(t, got.ImageURL)

	err = repos.User.Update(ctx, &model.User{ID: 999, FirstName: "x", LastName: "y"})
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()

	alice := mustUser(t, repos, "Alice", "A")
	bob := mustUser(t, repos, "Bob", "B")
	p1 := mustPost(t, repos, alice.ID, "first")
	p2 := mustPost(t, repos, alice.ID, "second")
	p3 := mustPost(t, repos, bob.ID, "bob's")
	tag := mustTag(t, repos, "fun")

	require.NoError(t, repos.PostTag.SetPosts(ctx, tag.ID, []uint{p1.ID, p2.ID, p3.ID}))

	require.NoError(t, repos.User.Delete(ctx, alice.ID))

	_, err := repos.User.FindByID(ctx, alice.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
	for _, id := range []uint{p1.ID, p2.ID} {
		_, err := repos.Post.FindByID(ctx, id)
		assert.True(t, errors.Is(err, constant.ErrNotFound), "post %d should be gone", id)
	}

	// 其他用户的文章与标签都保留
	remaining, err := repos.Post.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, p3.ID, remaining[0].ID)

	_, err = repos.Tag.FindByID(ctx, tag.ID)
	require.NoError(t, err)

	pairs, err := repos.PostTag.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.PostTag{{PostID: p3.ID, TagID: tag.ID}}, pairs)

	err = repos.User.Delete(ctx, alice.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestPostRepository_CreateRequiresUser(t *testing.T) {
	repos, _ := newRepos(t)

	err := repos.Post.Create(context.Background(), &model.Post{Title: "t", Content: "c", UserID: 7})
	require.Error(t, err)
	var nf *constant.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, constant.EntityUser, nf.Entity)
}

func TestPostRepository_CreatedAtRoundTrip(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")

	before := time.Now()
	p := mustPost(t, repos, u.ID, "hello")

	got, err := repos.Post.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "hello content", got.Content)
	assert.Equal(t, u.ID, got.UserID)
	assert.WithinDuration(t, before, got.CreatedAt, 5*time.Second)

	fixed := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	q := &model.Post{Title: "old", Content: "c", UserID: u.ID, CreatedAt: fixed}
	require.NoError(t, repos.Post.Create(ctx, q))
	got, err = repos.Post.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(got.CreatedAt), "got %v", got.CreatedAt)
}

func TestPostRepository_UpdateKeepsAuthorAndDate(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")
	p := mustPost(t, repos, u.ID, "hello")
	orig, err := repos.Post.FindByID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, repos.Post.Update(ctx, &model.Post{ID: p.ID, Title: "new", Content: "", UserID: 999}))

	got, err := repos.Post.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Empty(t, got.Content)
	assert.Equal(t, u.ID, got.UserID)
	assert.True(t, orig.CreatedAt.Equal(got.CreatedAt))

	err = repos.Post.Update(ctx, &model.Post{ID: 12345})
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestPostRepository_ListByUserAndTag(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	alice := mustUser(t, repos, "Alice", "A")
	bob := mustUser(t, repos, "Bob", "B")
	a1 := mustPost(t, repos, alice.ID, "a1")
	b1 := mustPost(t, repos, bob.ID, "b1")
	a2 := mustPost(t, repos, alice.ID, "a2")
	tag := mustTag(t, repos, "go")
	require.NoError(t, repos.PostTag.SetTags(ctx, a2.ID, []uint{tag.ID}))
	require.NoError(t, repos.PostTag.SetTags(ctx, b1.ID, []uint{tag.ID}))

	byAlice, err := repos.Post.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a1.ID, a2.ID}, postIDs(byAlice))

	byTag, err := repos.Post.ListByTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b1.ID, a2.ID}, postIDs(byTag))

	found, err := repos.Post.FindByIDs(ctx, []uint{a2.ID, 999, a1.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{a1.ID, a2.ID}, postIDs(found))

	none, err := repos.Post.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepository_DeleteKeepsTags(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")
	p := mustPost(t, repos, u.ID, "hello")
	keep := mustPost(t, repos, u.ID, "keep")
	tag := mustTag(t, repos, "fun")
	require.NoError(t, repos.PostTag.SetPosts(ctx, tag.ID, []uint{p.ID, keep.ID}))

	require.NoError(t, repos.Post.Delete(ctx, p.ID))

	_, err := repos.Post.FindByID(ctx, p.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
	_, err = repos.Tag.FindByID(ctx, tag.ID)
	require.NoError(t, err)
	_, err = repos.User.FindByID(ctx, u.ID)
	require.NoError(t, err)

	pairs, err := repos.PostTag.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.PostTag{{PostID: keep.ID, TagID: tag.ID}}, pairs)

	err = repos.Post.Delete(ctx, p.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestTagRepository_CRUD(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()

	fun := mustTag(t, repos, "Fun")
	dup := mustTag(t, repos, "Fun")
	assert.NotEqual(t, fun.ID, dup.ID)

	tags, err := repos.Tag.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	fun.Name = "Serious"
	require.NoError(t, repos.Tag.Update(ctx, fun))
	got, err := repos.Tag.FindByID(ctx, fun.ID)
	require.NoError(t, err)
	assert.Equal(t, "Serious", got.Name)

	err = repos.Tag.Update(ctx, &model.Tag{ID: 404, Name: "x"})
	assert.True(t, errors.Is(err, constant.ErrNotFound))

	byIDs, err := repos.Tag.FindByIDs(ctx, []uint{dup.ID, 77})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.Equal(t, dup.ID, byIDs[0].ID)
}

func TestTagRepository_DeleteKeepsPosts(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")
	p := mustPost(t, repos, u.ID, "hello")
	fun := mustTag(t, repos, "fun")
	other := mustTag(t, repos, "other")
	require.NoError(t, repos.PostTag.SetTags(ctx, p.ID, []uint{fun.ID, other.ID}))

	require.NoError(t, repos.Tag.Delete(ctx, fun.ID))

	_, err := repos.Post.FindByID(ctx, p.ID)
	require.NoError(t, err)
	tags, err := repos.Tag.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, other.ID, tags[0].ID)

	err = repos.Tag.Delete(ctx, fun.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestPostTagRepository_SetTagsReplacesAndFilters(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")
	p := mustPost(t, repos, u.ID, "hello")
	a := mustTag(t, repos, "a")
	b := mustTag(t, repos, "b")
	c := mustTag(t, repos, "c")

	tests := []struct {
		name string
		ids  []uint
		want []uint
	}{
		{"initial set", []uint{a.ID, b.ID}, []uint{a.ID, b.ID}},
		{"replace", []uint{c.ID}, []uint{c.ID}},
		{"unknown ids are ignored", []uint{999, b.ID, 1000}, []uint{b.ID}},
		{"duplicates collapse", []uint{a.ID, a.ID, c.ID, a.ID}, []uint{a.ID, c.ID}},
		{"empty clears", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repos.PostTag.SetTags(ctx, p.ID, tt.ids))
			tags, err := repos.Tag.ListByPost(ctx, p.ID)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, tagIDs(tags))
		})
	}

	err := repos.PostTag.SetTags(ctx, 555, []uint{a.ID})
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestPostTagRepository_SetPostsIsSymmetric(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	u := mustUser(t, repos, "Alan", "Alda")
	p1 := mustPost(t, repos, u.ID, "one")
	p2 := mustPost(t, repos, u.ID, "two")
	tag := mustTag(t, repos, "fun")

	require.NoError(t, repos.PostTag.SetPosts(ctx, tag.ID, []uint{p2.ID, p1.ID, 31337}))

	posts, err := repos.Post.ListByTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{p1.ID, p2.ID}, postIDs(posts))

	for _, p := range []*model.Post{p1, p2} {
		tags, err := repos.Tag.ListByPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{tag.ID}, tagIDs(tags))
	}

	require.NoError(t, repos.PostTag.SetPosts(ctx, tag.ID, []uint{}))
	pairs, err := repos.PostTag.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	err = repos.PostTag.SetPosts(ctx, 555, []uint{p1.ID})
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func postIDs(posts []*model.Post) []uint {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func tagIDs(tags []*model.Tag) []uint {
	ids := make([]uint, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}
