package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialgraph/api"
	"socialgraph/config"
	"socialgraph/gql"
	"socialgraph/service"
	"socialgraph/storage"
)

const fixtureYAML = `
users:
  - alias: ada
    firstName: Ada
    lastName: Lovelace
    email: ada@example.com
  - alias: grace
    firstName: Grace
    lastName: Hopper
    email: grace@example.com
profiles:
  - user: ada
    avatar: a.png
    sex: f
    birthday: 1815
    country: UK
    street: St James Square
    city: London
    memberTypeId: basic
posts:
  - user: ada
    title: Notes
    content: On the analytical engine.
subscriptions:
  - user: grace
    subscribesTo: ada
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	s := storage.NewStore()
	logger := zap.NewNop().Sugar()
	users := service.NewUsers(s, logger)
	posts := service.NewPosts(s, logger)
	profiles := service.NewProfiles(s, logger)
	memberTypes := service.NewMemberTypes(s, logger)
	g, err := gql.New(s, users, posts, profiles, memberTypes, logger)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.API.Port = 8080
	cfg.Log.Level = "info"

	a := api.NewAPI(s, users, posts, profiles, memberTypes, g, cfg, logger)
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv, s
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, fixtureYAML)

	f, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Len(t, f.Users, 2)
	assert.Equal(t, "ada", f.Users[0].Alias)
	assert.Equal(t, "basic", f.Profiles[0].MemberTypeID)
	assert.Equal(t, "ada", f.Subscriptions[0].SubscribesTo)
}

func TestLoadFixture_Invalid(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = LoadFixture("../../../etc/passwd")
	assert.Error(t, err)

	path := writeFixture(t, "users:\n  - firstName: NoAlias\n")
	_, err = LoadFixture(path)
	assert.Error(t, err)
}

func TestSeederRun(t *testing.T) {
	srv, store := newTestServer(t)
	path := writeFixture(t, fixtureYAML)

	f, err := LoadFixture(path)
	require.NoError(t, err)

	seeder := &Seeder{Server: srv.URL, Client: &http.Client{Timeout: 5 * time.Second}}
	require.NoError(t, seeder.Run(f))

	allUsers := store.AllUsers()
	require.Len(t, allUsers, 2)
	assert.Len(t, store.AllProfiles(), 1)
	assert.Len(t, store.AllPosts(), 1)

	var grace, ada string
	for _, u := range allUsers {
		switch u.FirstName {
		case "Grace":
			grace = u.ID
		case "Ada":
			ada = u.ID
		}
	}
	got, ok := store.UserByID(grace)
	require.True(t, ok)
	assert.Equal(t, []string{ada}, got.SubscribedToUserIDs)
}

func TestSeederRun_UnknownAlias(t *testing.T) {
	srv, _ := newTestServer(t)
	path := writeFixture(t, `
users:
  - alias: ada
    firstName: Ada
    lastName: L
    email: ada@example.com
posts:
  - user: nobody
    title: t
    content: c
`)
	f, err := LoadFixture(path)
	require.NoError(t, err)

	seeder := &Seeder{Server: srv.URL, Client: &http.Client{Timeout: 5 * time.Second}}
	err = seeder.Run(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown user alias")
}
