// Package api exposes the REST and GraphQL surface over the entity
// services.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"socialgraph/config"
	"socialgraph/core"
	"socialgraph/loader"
)

// ReadStore is the read surface the handlers and the per-request
// loader bundles run against. *storage.Store implements it.
type ReadStore interface {
	loader.Source

	UserByID(id string) (core.User, bool)
	PostByID(id string) (core.Post, bool)
	ProfileByID(id string) (core.Profile, bool)
	MemberTypeByID(id string) (core.MemberType, bool)
	AllPosts() []core.Post
	AllProfiles() []core.Profile
	AllMemberTypes() []core.MemberType
}

// UserService handles user mutations and the subscription graph.
type UserService interface {
	Create(p core.UserCreate) core.User
	Change(id string, up core.UserUpdate) (core.User, error)
	Delete(id string) (core.User, error)
	Subscribe(userID, targetID string) (core.User, error)
	Unsubscribe(userID, targetID string) (core.User, error)
}

// PostService handles post mutations.
type PostService interface {
	Create(p core.PostCreate) (core.Post, error)
	Change(id string, up core.PostUpdate) (core.Post, error)
	Delete(id string) (core.Post, error)
}

// ProfileService handles profile mutations.
type ProfileService interface {
	Create(p core.ProfileCreate) (core.Profile, error)
	Change(id string, up core.ProfileUpdate) (core.Profile, error)
	Delete(id string) (core.Profile, error)
}

// MemberTypeService handles member type patches.
type MemberTypeService interface {
	Change(id string, up core.MemberTypeUpdate) (core.MemberType, error)
}

// GraphQLExecutor runs one GraphQL request against the schema.
type GraphQLExecutor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result
}

// API holds the HTTP server.
type API struct {
	router      *mux.Router
	server      *http.Server
	store       ReadStore
	users       UserService
	posts       PostService
	profiles    ProfileService
	memberTypes MemberTypeService
	graphql     GraphQLExecutor
	config      *config.Config
	logger      *zap.SugaredLogger
	validate    *validator.Validate
}

// NewAPI creates the API server and wires its routes.
func NewAPI(store ReadStore, users UserService, posts PostService, profiles ProfileService,
	memberTypes MemberTypeService, executor GraphQLExecutor,
	cfg *config.Config, logger *zap.SugaredLogger) *API {
	a := &API{
		router:      mux.NewRouter(),
		store:       store,
		users:       users,
		posts:       posts,
		profiles:    profiles,
		memberTypes: memberTypes,
		graphql:     executor,
		config:      cfg,
		logger:      logger,
		validate:    validator.New(),
	}
	a.setupRoutes()
	return a
}

// setupRoutes sets up the API routes.
func (a *API) setupRoutes() {
	a.router.Use(a.corsMiddleware)
	a.router.Use(a.loggingMiddleware)

	a.router.HandleFunc("/api/users", a.listUsers).Methods("GET")
	a.router.HandleFunc("/api/users", a.createUser).Methods("POST")
	a.router.HandleFunc("/api/users/{id}", a.getUser).Methods("GET")
	a.router.HandleFunc("/api/users/{id}", a.updateUser).Methods("PATCH")
	a.router.HandleFunc("/api/users/{id}", a.deleteUser).Methods("DELETE")
	a.router.HandleFunc("/api/users/{id}/subscribe-to", a.subscribeTo).Methods("POST")
	a.router.HandleFunc("/api/users/{id}/unsubscribe-from", a.unsubscribeFrom).Methods("POST")

	a.router.HandleFunc("/api/posts", a.listPosts).Methods("GET")
	a.router.HandleFunc("/api/posts", a.createPost).Methods("POST")
	a.router.HandleFunc("/api/posts/{id}", a.getPost).Methods("GET")
	a.router.HandleFunc("/api/posts/{id}", a.updatePost).Methods("PATCH")
	a.router.HandleFunc("/api/posts/{id}", a.deletePost).Methods("DELETE")

	a.router.HandleFunc("/api/profiles", a.listProfiles).Methods("GET")
	a.router.HandleFunc("/api/profiles", a.createProfile).Methods("POST")
	a.router.HandleFunc("/api/profiles/{id}", a.getProfile).Methods("GET")
	a.router.HandleFunc("/api/profiles/{id}", a.updateProfile).Methods("PATCH")
	a.router.HandleFunc("/api/profiles/{id}", a.deleteProfile).Methods("DELETE")

	a.router.HandleFunc("/api/member-types", a.listMemberTypes).Methods("GET")
	a.router.HandleFunc("/api/member-types/{id}", a.getMemberType).Methods("GET")
	a.router.HandleFunc("/api/member-types/{id}", a.updateMemberType).Methods("PATCH")

	a.router.HandleFunc("/graphql", a.serveGraphQL).Methods("POST")
	a.router.HandleFunc("/health", a.healthCheck).Methods("GET")
	a.router.Handle("/metrics", promhttp.Handler())
}

// Router returns the configured handler, used by tests.
func (a *API) Router() http.Handler {
	return a.router
}

// Start starts the API server.
func (a *API) Start() error {
	addr := fmt.Sprintf(":%d", a.config.API.Port)
	a.server = &http.Server{
		Addr:    addr,
		Handler: a.router,
	}
	if a.config.API.TLS {
		return a.server.ListenAndServeTLS(a.config.API.CertFile, a.config.API.KeyFile)
	}
	return a.server.ListenAndServe()
}

// Stop stops the API server.
func (a *API) Stop(ctx context.Context) error {
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}

// healthCheck reports liveness.
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
