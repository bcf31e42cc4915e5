// Package service orchestrates validated mutations and multi-entity
// cascades on top of the entity store.
//
// The store stays free of entity-specific logic: integrity rules run
// here against a live read immediately before each mutation, and the
// user delete cascade is an explicit, named sequence of store calls.
// Cascades are not atomic across store calls; an interruption mid-way
// leaves the store with partial cleanup. That is an accepted
// limitation of the volatile, non-transactional store.
package service

import (
	"socialgraph/core"
)

// Store is the mutable store surface the services operate on.
// *storage.Store implements it; tests substitute failure-injecting
// wrappers.
type Store interface {
	UserByID(id string) (core.User, bool)
	HasUser(id string) bool
	HasMemberType(id string) bool
	ProfileOfUser(userID string) (core.Profile, bool)
	PostsOfUser(userID string) []core.Post
	SubscribersOf(userID string) []core.User

	CreateUser(p core.UserCreate) core.User
	CreatePost(p core.PostCreate) core.Post
	CreateProfile(p core.ProfileCreate) core.Profile

	ChangeUser(id string, up core.UserUpdate) (core.User, error)
	ChangePost(id string, up core.PostUpdate) (core.Post, error)
	ChangeProfile(id string, up core.ProfileUpdate) (core.Profile, error)
	ChangeMemberType(id string, up core.MemberTypeUpdate) (core.MemberType, error)
	SetSubscriptions(id string, subscribedTo []string) (core.User, error)

	DeleteUser(id string) (core.User, error)
	DeletePost(id string) (core.Post, error)
	DeleteProfile(id string) (core.Profile, error)
}
