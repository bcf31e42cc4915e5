package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/core"
)

func TestNewStore_SeedsMemberTypes(t *testing.T) {
	s := NewStore()

	mts := s.MemberTypes.FindMany(nil)
	require.Len(t, mts, 2)
	assert.Equal(t, "basic", mts[0].ID)
	assert.Equal(t, 0, mts[0].Discount)
	assert.Equal(t, 3, mts[0].MonthPostsLimit)
	assert.Equal(t, "business", mts[1].ID)
}

func TestCreateUser_RoundTrip(t *testing.T) {
	s := NewStore()

	created := s.CreateUser(core.UserCreate{FirstName: "A", LastName: "B", Email: "a@b.com"})
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.SubscribedToUserIDs)
	assert.Empty(t, created.SubscribedToUserIDs)

	got, ok := s.UserByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestFindMany_InsertionOrder(t *testing.T) {
	s := NewStore()

	var want []string
	for i := 0; i < 5; i++ {
		u := s.CreateUser(core.UserCreate{
			FirstName: fmt.Sprintf("user%d", i),
			LastName:  "x",
			Email:     fmt.Sprintf("u%d@example.com", i),
		})
		want = append(want, u.ID)
	}

	users := s.Users.FindMany(nil)
	require.Len(t, users, 5)
	for i, u := range users {
		assert.Equal(t, want[i], u.ID)
	}
}

func TestFilters(t *testing.T) {
	s := NewStore()

	u1 := s.CreateUser(core.UserCreate{FirstName: "a", LastName: "a", Email: "a@x.com"})
	u2 := s.CreateUser(core.UserCreate{FirstName: "b", LastName: "b", Email: "b@x.com"})
	u3 := s.CreateUser(core.UserCreate{FirstName: "c", LastName: "c", Email: "c@x.com"})

	_, err := s.SetSubscriptions(u3.ID, []string{u1.ID})
	require.NoError(t, err)

	t.Run("equals", func(t *testing.T) {
		got, ok := s.Users.FindOne(ByKey("email", "b@x.com"))
		require.True(t, ok)
		assert.Equal(t, u2.ID, got.ID)
	})

	t.Run("equals no match", func(t *testing.T) {
		_, ok := s.Users.FindOne(ByKey("email", "nobody@x.com"))
		assert.False(t, ok)
	})

	t.Run("one of", func(t *testing.T) {
		got := s.UsersByIDs([]string{u1.ID, u3.ID, "missing"})
		require.Len(t, got, 2)
		assert.Equal(t, u1.ID, got[0].ID)
		assert.Equal(t, u3.ID, got[1].ID)
	})

	t.Run("contains", func(t *testing.T) {
		subs := s.SubscribersOf(u1.ID)
		require.Len(t, subs, 1)
		assert.Equal(t, u3.ID, subs[0].ID)
	})

	t.Run("contains empty", func(t *testing.T) {
		assert.Empty(t, s.SubscribersOf(u2.ID))
	})

	t.Run("unknown field", func(t *testing.T) {
		got := s.Users.FindMany(ByKey("nope", "x"))
		assert.Empty(t, got)
	})
}

func TestChangePost_PartialMerge(t *testing.T) {
	s := NewStore()

	u := s.CreateUser(core.UserCreate{FirstName: "a", LastName: "a", Email: "a@x.com"})
	p := s.CreatePost(core.PostCreate{Title: "old title", Content: "body", UserID: u.ID})

	title := "new title"
	changed, err := s.ChangePost(p.ID, core.PostUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "new title", changed.Title)
	assert.Equal(t, "body", changed.Content)
	assert.Equal(t, u.ID, changed.UserID)
}

func TestChange_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.ChangeUser("missing", core.UserUpdate{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.EqualError(t, err, "user not found")

	_, err = s.ChangeMemberType("silver", core.MemberTypeUpdate{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.EqualError(t, err, "member type not found")
}

func TestDelete_ReturnsRemovedAndReindexes(t *testing.T) {
	s := NewStore()

	u1 := s.CreateUser(core.UserCreate{FirstName: "a", LastName: "a", Email: "a@x.com"})
	u2 := s.CreateUser(core.UserCreate{FirstName: "b", LastName: "b", Email: "b@x.com"})
	u3 := s.CreateUser(core.UserCreate{FirstName: "c", LastName: "c", Email: "c@x.com"})

	removed, err := s.Users.Delete(u2.ID)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, removed.ID)

	_, ok := s.UserByID(u2.ID)
	assert.False(t, ok)

	// Later entries stay reachable by id after the splice.
	got, ok := s.UserByID(u3.ID)
	require.True(t, ok)
	assert.Equal(t, "c", got.FirstName)

	users := s.Users.FindMany(nil)
	require.Len(t, users, 2)
	assert.Equal(t, u1.ID, users[0].ID)
	assert.Equal(t, u3.ID, users[1].ID)
}

func TestDelete_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Posts.Delete("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestChangeMemberType_PatchesFields(t *testing.T) {
	s := NewStore()

	discount := 10
	changed, err := s.ChangeMemberType("basic", core.MemberTypeUpdate{Discount: &discount})
	require.NoError(t, err)
	assert.Equal(t, 10, changed.Discount)
	assert.Equal(t, 3, changed.MonthPostsLimit)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := s.CreateUser(core.UserCreate{
				FirstName: fmt.Sprintf("u%d", i),
				LastName:  "x",
				Email:     fmt.Sprintf("u%d@x.com", i),
			})
			s.Users.FindMany(nil)
			_, _ = s.UserByID(u.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, s.Users.Len())
}
