// Package gql builds the GraphQL schema over the entity services.
//
// Relationship fields do not hit the store directly: each resolver
// enqueues its key on the request's loader bundle and returns a thunk,
// so sibling fields across a result set coalesce into one store lookup
// per related-entity kind. The executor forces the thunks only after
// the whole selection level has been resolved.
package gql

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/loader"
	"socialgraph/metrics"
	"socialgraph/service"
	"socialgraph/storage"
)

// GraphQL holds the executable schema and its collaborators.
type GraphQL struct {
	schema graphql.Schema
	logger *zap.SugaredLogger
}

// New builds the schema. The store serves reads; mutations go through
// the services so integrity rules and cascades apply identically to
// REST and GraphQL callers.
func New(store *storage.Store, users *service.Users, posts *service.Posts,
	profiles *service.Profiles, memberTypes *service.MemberTypes,
	logger *zap.SugaredLogger) (*GraphQL, error) {

	memberTypeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.String},
			"discount":        &graphql.Field{Type: graphql.Int},
			"monthPostsLimit": &graphql.Field{Type: graphql.Int},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.String},
			"title":   &graphql.Field{Type: graphql.String},
			"content": &graphql.Field{Type: graphql.String},
			"userId":  &graphql.Field{Type: graphql.String},
		},
	})

	profileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"avatar":       &graphql.Field{Type: graphql.String},
			"sex":          &graphql.Field{Type: graphql.String},
			"birthday":     &graphql.Field{Type: graphql.Int},
			"country":      &graphql.Field{Type: graphql.String},
			"street":       &graphql.Field{Type: graphql.String},
			"city":         &graphql.Field{Type: graphql.String},
			"memberTypeId": &graphql.Field{Type: graphql.String},
			"userId":       &graphql.Field{Type: graphql.String},
		},
	})

	// userType references itself through the subscription fields, so
	// its field set is a thunk.
	var userType *graphql.Object
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":                  &graphql.Field{Type: graphql.String},
				"firstName":           &graphql.Field{Type: graphql.String},
				"lastName":            &graphql.Field{Type: graphql.String},
				"email":               &graphql.Field{Type: graphql.String},
				"subscribedToUserIds": &graphql.Field{Type: graphql.NewList(graphql.String)},
				"posts": &graphql.Field{
					Type: graphql.NewList(postType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(core.User)
						if !ok {
							return nil, nil
						}
						b, err := bundleFrom(p)
						if err != nil {
							return nil, err
						}
						thunk := b.PostsByUserID.Load(u.ID)
						return func() (interface{}, error) {
							list, _ := thunk()
							return list, nil
						}, nil
					},
				},
				"profile": &graphql.Field{
					Type: profileType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(core.User)
						if !ok {
							return nil, nil
						}
						b, err := bundleFrom(p)
						if err != nil {
							return nil, err
						}
						thunk := b.ProfileByUserID.Load(u.ID)
						return func() (interface{}, error) {
							profile, ok := thunk()
							if !ok {
								return nil, nil
							}
							return profile, nil
						}, nil
					},
				},
				"memberType": &graphql.Field{
					Type: memberTypeType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(core.User)
						if !ok {
							return nil, nil
						}
						b, err := bundleFrom(p)
						if err != nil {
							return nil, err
						}
						// The member type hangs off the profile, so the
						// profile load has to settle first.
						profileThunk := b.ProfileByUserID.Load(u.ID)
						return func() (interface{}, error) {
							profile, ok := profileThunk()
							if !ok {
								return nil, core.NotFound("profile not found")
							}
							mt, ok := b.MemberTypeByID.Get(profile.MemberTypeID)
							if !ok {
								return nil, nil
							}
							return mt, nil
						}, nil
					},
				},
				"userSubscribedTo": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(core.User)
						if !ok {
							return nil, nil
						}
						b, err := bundleFrom(p)
						if err != nil {
							return nil, err
						}
						thunks := make([]loader.Thunk[core.User], 0, len(u.SubscribedToUserIDs))
						for _, id := range u.SubscribedToUserIDs {
							thunks = append(thunks, b.UserByID.Load(id))
						}
						return func() (interface{}, error) {
							out := make([]core.User, 0, len(thunks))
							for _, t := range thunks {
								if target, ok := t(); ok {
									out = append(out, target)
								}
							}
							return out, nil
						}, nil
					},
				},
				"subscribedToUser": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(core.User)
						if !ok {
							return nil, nil
						}
						b, err := bundleFrom(p)
						if err != nil {
							return nil, err
						}
						thunk := b.SubscribersOf.Load(u.ID)
						return func() (interface{}, error) {
							list, _ := thunk()
							return list, nil
						}, nil
					},
				},
			}
		}),
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.AllUsers(), nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := store.UserByID(stringArg(p, "id"))
					if !ok {
						return nil, nil
					}
					return user, nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.AllPosts(), nil
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, ok := store.PostByID(stringArg(p, "id"))
					if !ok {
						return nil, nil
					}
					return post, nil
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.AllProfiles(), nil
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile, ok := store.ProfileByID(stringArg(p, "id"))
					if !ok {
						return nil, nil
					}
					return profile, nil
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(memberTypeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.AllMemberTypes(), nil
				},
			},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					mt, ok := store.MemberTypeByID(stringArg(p, "id"))
					if !ok {
						return nil, nil
					}
					return mt, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(userType, postType, profileType, memberTypeType, users, posts, profiles, memberTypes),
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return nil, err
	}
	return &GraphQL{schema: schema, logger: logger}, nil
}

// Execute runs one request against the schema with a fresh loader
// bundle already attached to ctx by the caller.
func (g *GraphQL) Execute(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result {
	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         g.schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	})
	metrics.GraphQLDuration.Observe(time.Since(start).Seconds())
	if len(result.Errors) > 0 {
		g.logger.Debugw("graphql request finished with errors", "errors", len(result.Errors))
	}
	return result
}
