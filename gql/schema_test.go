package gql_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/gql"
	"socialgraph/loader"
	"socialgraph/service"
	"socialgraph/storage"
)

// countingStore counts the store lookups the loader bundle issues so
// the batching property is observable per query.
type countingStore struct {
	*storage.Store
	usersByIDs        int
	memberTypesByIDs  int
	profilesByUserIDs int
	postsByUserIDs    int
	allUsers          int
}

func (c *countingStore) UsersByIDs(ids []string) []core.User {
	c.usersByIDs++
	return c.Store.UsersByIDs(ids)
}

func (c *countingStore) MemberTypesByIDs(ids []string) []core.MemberType {
	c.memberTypesByIDs++
	return c.Store.MemberTypesByIDs(ids)
}

func (c *countingStore) ProfilesByUserIDs(userIDs []string) []core.Profile {
	c.profilesByUserIDs++
	return c.Store.ProfilesByUserIDs(userIDs)
}

func (c *countingStore) PostsByUserIDs(userIDs []string) []core.Post {
	c.postsByUserIDs++
	return c.Store.PostsByUserIDs(userIDs)
}

func (c *countingStore) AllUsers() []core.User {
	c.allUsers++
	return c.Store.AllUsers()
}

type fixture struct {
	store    *storage.Store
	counting *countingStore
	gql      *gql.GraphQL
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := storage.NewStore()
	logger := zap.NewNop().Sugar()
	g, err := gql.New(s,
		service.NewUsers(s, logger),
		service.NewPosts(s, logger),
		service.NewProfiles(s, logger),
		service.NewMemberTypes(s, logger),
		logger)
	require.NoError(t, err)
	return &fixture{store: s, counting: &countingStore{Store: s}, gql: g}
}

// run executes a query with a fresh per-request bundle, the way the
// HTTP handler does.
func (f *fixture) run(query string, variables map[string]interface{}) *graphql.Result {
	ctx := loader.NewContext(context.Background(), loader.NewBundle(f.counting))
	return f.gql.Execute(ctx, query, variables, "")
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()
	require.Empty(t, result.Errors)
	m, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return m
}

func (f *fixture) seedUser(t *testing.T, first string) core.User {
	t.Helper()
	return f.store.CreateUser(core.UserCreate{FirstName: first, LastName: "x", Email: first + "@x.com"})
}

func TestQueryUsersWithRelations_BatchesPerKind(t *testing.T) {
	f := newFixture(t)

	u1 := f.seedUser(t, "a")
	u2 := f.seedUser(t, "b")
	u3 := f.seedUser(t, "c")
	f.store.CreateProfile(core.ProfileCreate{
		Avatar: "a", Sex: "f", Birthday: 1990, Country: "NL",
		Street: "s", City: "c", MemberTypeID: core.MemberTypeBasic, UserID: u1.ID,
	})
	f.store.CreatePost(core.PostCreate{Title: "t1", Content: "c", UserID: u1.ID})
	f.store.CreatePost(core.PostCreate{Title: "t2", Content: "c", UserID: u2.ID})
	_, err := f.store.SetSubscriptions(u2.ID, []string{u1.ID})
	require.NoError(t, err)
	_, err = f.store.SetSubscriptions(u3.ID, []string{u1.ID})
	require.NoError(t, err)

	result := f.run(`{
		users {
			id
			profile { memberTypeId }
			posts { title }
			userSubscribedTo { id }
			subscribedToUser { id }
		}
	}`, nil)

	users := data(t, result)["users"].([]interface{})
	require.Len(t, users, 3)

	first := users[0].(map[string]interface{})
	assert.Equal(t, u1.ID, first["id"])
	assert.Equal(t, core.MemberTypeBasic, first["profile"].(map[string]interface{})["memberTypeId"])
	assert.Len(t, first["posts"].([]interface{}), 1)
	assert.Len(t, first["subscribedToUser"].([]interface{}), 2)

	second := users[1].(map[string]interface{})
	assert.Nil(t, second["profile"])
	followed := second["userSubscribedTo"].([]interface{})
	require.Len(t, followed, 1)
	assert.Equal(t, u1.ID, followed[0].(map[string]interface{})["id"])

	// One store lookup per related-entity kind for the whole result
	// set, regardless of the number of users.
	assert.Equal(t, 1, f.counting.profilesByUserIDs)
	assert.Equal(t, 1, f.counting.postsByUserIDs)
	assert.LessOrEqual(t, f.counting.usersByIDs, 1)
	assert.Equal(t, 1, f.counting.allUsers, "one reverse-subscription pass")
}

func TestQueryUser_AbsentIsNull(t *testing.T) {
	f := newFixture(t)
	result := f.run(`{ user(id: "missing") { id } }`, nil)
	assert.Nil(t, data(t, result)["user"])
}

func TestQueryMemberTypes_Seeded(t *testing.T) {
	f := newFixture(t)
	result := f.run(`{ memberTypes { id discount monthPostsLimit } }`, nil)
	types := data(t, result)["memberTypes"].([]interface{})
	require.Len(t, types, 2)
	basic := types[0].(map[string]interface{})
	assert.Equal(t, core.MemberTypeBasic, basic["id"])
	assert.Equal(t, 3, basic["monthPostsLimit"])
}

func TestMemberTypeField_MissingProfile(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a")

	result := f.run(`{ users { memberType { id } } }`, nil)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "profile not found", result.Errors[0].Message)
}

func TestMutationCreateUser(t *testing.T) {
	f := newFixture(t)

	result := f.run(`mutation {
		createUser(data: { firstName: "Ada", lastName: "L", email: "ada@l.org" }) {
			id firstName subscribedToUserIds
		}
	}`, nil)

	created := data(t, result)["createUser"].(map[string]interface{})
	assert.Equal(t, "Ada", created["firstName"])
	assert.NotEmpty(t, created["id"])
	assert.Empty(t, created["subscribedToUserIds"])
	assert.Len(t, f.store.AllUsers(), 1)
}

func TestMutationCreatePost_UnknownUser(t *testing.T) {
	f := newFixture(t)

	result := f.run(`mutation {
		createPost(data: { title: "t", content: "c", userId: "missing" }) { id }
	}`, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "user doesnt exist", result.Errors[0].Message)
	assert.Equal(t, 0, f.store.Posts.Len())
}

func TestMutationUpdateUser_PartialMerge(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t, "old")

	result := f.run(`mutation($id: String!) {
		updateUser(id: $id, data: { firstName: "new" }) { firstName lastName }
	}`, map[string]interface{}{"id": u.ID})

	updated := data(t, result)["updateUser"].(map[string]interface{})
	assert.Equal(t, "new", updated["firstName"])
	assert.Equal(t, "x", updated["lastName"], "unspecified fields are retained")
}

func TestMutationSubscribeAndDelete(t *testing.T) {
	f := newFixture(t)
	u1 := f.seedUser(t, "a")
	u2 := f.seedUser(t, "b")

	result := f.run(`mutation($userId: String!, $targetUserId: String!) {
		subscribeTo(userId: $userId, targetUserId: $targetUserId) { subscribedToUserIds }
	}`, map[string]interface{}{"userId": u1.ID, "targetUserId": u2.ID})

	subscribed := data(t, result)["subscribeTo"].(map[string]interface{})
	assert.Equal(t, []interface{}{u2.ID}, subscribed["subscribedToUserIds"])

	result = f.run(`mutation($id: String!) { deleteUser(id: $id) { id } }`,
		map[string]interface{}{"id": u2.ID})
	require.Empty(t, result.Errors)

	// The cascade scrubbed the subscription.
	got, _ := f.store.UserByID(u1.ID)
	assert.Empty(t, got.SubscribedToUserIDs)
}

func TestMutationUpdateMemberType(t *testing.T) {
	f := newFixture(t)

	result := f.run(`mutation {
		updateMemberType(id: "business", data: { discount: 42 }) { id discount monthPostsLimit }
	}`, nil)

	updated := data(t, result)["updateMemberType"].(map[string]interface{})
	assert.Equal(t, 42, updated["discount"])
	assert.Equal(t, 100, updated["monthPostsLimit"])
}
