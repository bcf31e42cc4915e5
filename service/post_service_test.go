package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/service"
	"socialgraph/storage"
)

func TestPostsCreate(t *testing.T) {
	s := storage.NewStore()
	posts := service.NewPosts(s, zap.NewNop().Sugar())
	author := seedUser(t, s, "author")

	created, err := posts.Create(core.PostCreate{Title: "t", Content: "c", UserID: author.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, ok := s.PostByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestPostsCreate_UnknownUserStoresNothing(t *testing.T) {
	s := storage.NewStore()
	posts := service.NewPosts(s, zap.NewNop().Sugar())

	_, err := posts.Create(core.PostCreate{Title: "t", Content: "c", UserID: "does-not-exist"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrBadRequest))
	assert.EqualError(t, err, "user doesnt exist")
	assert.Equal(t, 0, s.Posts.Len())
}

func TestPostsChange_UnknownID(t *testing.T) {
	s := storage.NewStore()
	posts := service.NewPosts(s, zap.NewNop().Sugar())

	title := "t"
	_, err := posts.Change("missing", core.PostUpdate{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrBadRequest))
	assert.EqualError(t, err, "post not found or wrong id")
}

func TestPostsDelete(t *testing.T) {
	s := storage.NewStore()
	posts := service.NewPosts(s, zap.NewNop().Sugar())
	author := seedUser(t, s, "author")
	created, err := posts.Create(core.PostCreate{Title: "t", Content: "c", UserID: author.ID})
	require.NoError(t, err)

	removed, err := posts.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = posts.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrBadRequest))
}
