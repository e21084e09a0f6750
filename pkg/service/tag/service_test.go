package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogly-dev/blogly/internal/infra/persistence/dbtest"
	persistence "github.com/blogly-dev/blogly/internal/infra/persistence/ent"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

func newService(t *testing.T) (*Service, repository.Repositories, []*model.Post) {
	t.Helper()
	drv := dbtest.NewDriver(t)
	repos := persistence.NewRepositories(drv, drv.Dialect())
	tm := persistence.NewEntTransactionManager(drv)
	ctx := context.Background()

	u := &model.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.User.Create(ctx, u))

	var posts []*model.Post
	for _, title := range []string{"one", "two", "three"} {
		p := &model.Post{Title: title, Content: title, UserID: u.ID}
		require.NoError(t, repos.Post.Create(ctx, p))
		posts = append(posts, p)
	}
	return NewService(repos.Tag, repos.Post, tm), repos, posts
}

func titles(posts []*model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestService_CreateWithPosts(t *testing.T) {
	svc, _, posts := newService(t)
	ctx := context.Background()

	tag, err := svc.Create(ctx, &model.CreateTagRequest{Name: "fun", PostIDs: []uint{posts[2].ID, posts[0].ID, 404}})
	require.NoError(t, err)

	detail, err := svc.GetDetail(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "fun", detail.Tag.Name)
	assert.Equal(t, []string{"one", "three"}, titles(detail.Posts))
	assert.True(t, detail.HasPost(posts[0].ID))
	assert.False(t, detail.HasPost(posts[1].ID))
}

func TestService_CreateValidation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), &model.CreateTagRequest{Name: "  "})
	assert.True(t, errors.Is(err, constant.ErrValidation))
}

func TestService_DuplicateNamesAllowed(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateTagRequest{Name: "fun"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.CreateTagRequest{Name: "fun"})
	require.NoError(t, err)

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestService_UpdateAndSetPosts(t *testing.T) {
	svc, _, posts := newService(t)
	ctx := context.Background()
	tag, err := svc.Create(ctx, &model.CreateTagRequest{Name: "fun", PostIDs: []uint{posts[0].ID}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tag.ID, &model.UpdateTagRequest{Name: "serious", PostIDs: []uint{posts[1].ID}})
	require.NoError(t, err)
	assert.Equal(t, "serious", updated.Name)

	detail, err := svc.GetDetail(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, titles(detail.Posts))

	require.NoError(t, svc.SetPosts(ctx, tag.ID, nil))
	detail, err = svc.GetDetail(ctx, tag.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Posts)

	_, err = svc.Update(ctx, 99, &model.UpdateTagRequest{Name: "x"})
	assert.True(t, errors.Is(err, constant.ErrNotFound))
	assert.True(t, errors.Is(svc.SetPosts(ctx, 99, nil), constant.ErrNotFound))
}

func TestService_DeleteKeepsPosts(t *testing.T) {
	svc, repos, posts := newService(t)
	ctx := context.Background()
	tag, err := svc.Create(ctx, &model.CreateTagRequest{Name: "fun", PostIDs: []uint{posts[0].ID, posts[1].ID}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tag.ID))

	_, err = svc.Get(ctx, tag.ID)
	assert.True(t, errors.Is(err, constant.ErrNotFound))

	all, err := repos.Post.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pairs, err := repos.PostTag.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
