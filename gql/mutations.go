package gql

import (
	"github.com/graphql-go/graphql"

	"socialgraph/core"
	"socialgraph/service"
)

var userInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var postInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"userId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var profileInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"sex":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"country":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"city":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"userId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var userUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var postUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var profileUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProfileUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sex":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"country":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var memberTypeUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MemberTypeUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"discount":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"monthPostsLimit": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

func mutationFields(userType, postType, profileType, memberTypeType *graphql.Object,
	users *service.Users, posts *service.Posts, profiles *service.Profiles,
	memberTypes *service.MemberTypes) graphql.Fields {

	dataArg := func(input graphql.Input) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
		}
	}
	idAndDataArgs := func(input graphql.Input) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
		}
	}
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
	subscriptionArgs := graphql.FieldConfigArgument{
		"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"targetUserId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	return graphql.Fields{
		"createUser": &graphql.Field{
			Type: userType,
			Args: dataArg(userInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var payload core.UserCreate
				if err := decodeArg(p.Args["data"], &payload); err != nil {
					return nil, err
				}
				return users.Create(payload), nil
			},
		},
		"createPost": &graphql.Field{
			Type: postType,
			Args: dataArg(postInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var payload core.PostCreate
				if err := decodeArg(p.Args["data"], &payload); err != nil {
					return nil, err
				}
				return posts.Create(payload)
			},
		},
		"createProfile": &graphql.Field{
			Type: profileType,
			Args: dataArg(profileInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var payload core.ProfileCreate
				if err := decodeArg(p.Args["data"], &payload); err != nil {
					return nil, err
				}
				return profiles.Create(payload)
			},
		},
		"updateUser": &graphql.Field{
			Type: userType,
			Args: idAndDataArgs(userUpdateInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var up core.UserUpdate
				if err := decodeArg(p.Args["data"], &up); err != nil {
					return nil, err
				}
				return users.Change(stringArg(p, "id"), up)
			},
		},
		"updatePost": &graphql.Field{
			Type: postType,
			Args: idAndDataArgs(postUpdateInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var up core.PostUpdate
				if err := decodeArg(p.Args["data"], &up); err != nil {
					return nil, err
				}
				return posts.Change(stringArg(p, "id"), up)
			},
		},
		"updateProfile": &graphql.Field{
			Type: profileType,
			Args: idAndDataArgs(profileUpdateInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var up core.ProfileUpdate
				if err := decodeArg(p.Args["data"], &up); err != nil {
					return nil, err
				}
				return profiles.Change(stringArg(p, "id"), up)
			},
		},
		"updateMemberType": &graphql.Field{
			Type: memberTypeType,
			Args: idAndDataArgs(memberTypeUpdateInputType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var up core.MemberTypeUpdate
				if err := decodeArg(p.Args["data"], &up); err != nil {
					return nil, err
				}
				return memberTypes.Change(stringArg(p, "id"), up)
			},
		},
		"subscribeTo": &graphql.Field{
			Type: userType,
			Args: subscriptionArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return users.Subscribe(stringArg(p, "userId"), stringArg(p, "targetUserId"))
			},
		},
		"unsubscribeFrom": &graphql.Field{
			Type: userType,
			Args: subscriptionArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return users.Unsubscribe(stringArg(p, "userId"), stringArg(p, "targetUserId"))
			},
		},
		"deleteUser": &graphql.Field{
			Type: userType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return users.Delete(stringArg(p, "id"))
			},
		},
		"deletePost": &graphql.Field{
			Type: postType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return posts.Delete(stringArg(p, "id"))
			},
		},
		"deleteProfile": &graphql.Field{
			Type: profileType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return profiles.Delete(stringArg(p, "id"))
			},
		},
	}
}
