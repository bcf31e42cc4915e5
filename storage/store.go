package storage

import (
	"socialgraph/core"
)

// Store aggregates the four entity collections. All state access in
// the service routes through it.
type Store struct {
	Users       *Collection[core.User]
	Posts       *Collection[core.Post]
	Profiles    *Collection[core.Profile]
	MemberTypes *Collection[core.MemberType]
}

// NewStore creates an empty store and seeds the fixed member type
// enumeration.
func NewStore() *Store {
	s := &Store{
		Users: NewCollection(core.KindUser, "user", func(u core.User, id string) core.User {
			u.ID = id
			if u.SubscribedToUserIDs == nil {
				u.SubscribedToUserIDs = []string{}
			}
			return u
		}),
		Posts: NewCollection(core.KindPost, "post", func(p core.Post, id string) core.Post {
			p.ID = id
			return p
		}),
		Profiles: NewCollection(core.KindProfile, "profile", func(p core.Profile, id string) core.Profile {
			p.ID = id
			return p
		}),
		MemberTypes: NewCollection(core.KindMemberType, "member type", func(m core.MemberType, id string) core.MemberType {
			m.ID = id
			return m
		}),
	}
	for _, mt := range core.DefaultMemberTypes() {
		s.MemberTypes.Insert(mt)
	}
	return s
}

// CreateUser stores a new user from the payload.
func (s *Store) CreateUser(p core.UserCreate) core.User {
	return s.Users.Create(core.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	})
}

// CreatePost stores a new post from the payload.
func (s *Store) CreatePost(p core.PostCreate) core.Post {
	return s.Posts.Create(core.Post{
		Title:   p.Title,
		Content: p.Content,
		UserID:  p.UserID,
	})
}

// CreateProfile stores a new profile from the payload.
func (s *Store) CreateProfile(p core.ProfileCreate) core.Profile {
	return s.Profiles.Create(core.Profile{
		Avatar:       p.Avatar,
		Sex:          p.Sex,
		Birthday:     p.Birthday,
		Country:      p.Country,
		Street:       p.Street,
		City:         p.City,
		MemberTypeID: p.MemberTypeID,
		UserID:       p.UserID,
	})
}

// ChangeUser merges the partial update into the user with the given id.
func (s *Store) ChangeUser(id string, up core.UserUpdate) (core.User, error) {
	return s.Users.Change(id, func(u core.User) core.User {
		up.ApplyTo(&u)
		return u
	})
}

// ChangePost merges the partial update into the post with the given id.
func (s *Store) ChangePost(id string, up core.PostUpdate) (core.Post, error) {
	return s.Posts.Change(id, func(p core.Post) core.Post {
		up.ApplyTo(&p)
		return p
	})
}

// ChangeProfile merges the partial update into the profile with the
// given id.
func (s *Store) ChangeProfile(id string, up core.ProfileUpdate) (core.Profile, error) {
	return s.Profiles.Change(id, func(p core.Profile) core.Profile {
		up.ApplyTo(&p)
		return p
	})
}

// ChangeMemberType merges the partial update into the member type with
// the given id.
func (s *Store) ChangeMemberType(id string, up core.MemberTypeUpdate) (core.MemberType, error) {
	return s.MemberTypes.Change(id, func(m core.MemberType) core.MemberType {
		up.ApplyTo(&m)
		return m
	})
}

// SetSubscriptions replaces the subscription list of the user with the
// given id. The caller (subscribe/unsubscribe, delete cascade) is
// responsible for the list invariants.
func (s *Store) SetSubscriptions(id string, subscribedTo []string) (core.User, error) {
	return s.Users.Change(id, func(u core.User) core.User {
		u.SubscribedToUserIDs = subscribedTo
		return u
	})
}

// DeleteUser removes the user with the given id and returns it.
func (s *Store) DeleteUser(id string) (core.User, error) {
	return s.Users.Delete(id)
}

// DeletePost removes the post with the given id and returns it.
func (s *Store) DeletePost(id string) (core.Post, error) {
	return s.Posts.Delete(id)
}

// DeleteProfile removes the profile with the given id and returns it.
func (s *Store) DeleteProfile(id string) (core.Profile, error) {
	return s.Profiles.Delete(id)
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (core.User, bool) {
	return s.Users.FindOne(ByKey("id", id))
}

// PostByID returns the post with the given id.
func (s *Store) PostByID(id string) (core.Post, bool) {
	return s.Posts.FindOne(ByKey("id", id))
}

// ProfileByID returns the profile with the given id.
func (s *Store) ProfileByID(id string) (core.Profile, bool) {
	return s.Profiles.FindOne(ByKey("id", id))
}

// MemberTypeByID returns the member type with the given id.
func (s *Store) MemberTypeByID(id string) (core.MemberType, bool) {
	return s.MemberTypes.FindOne(ByKey("id", id))
}

// ProfileOfUser returns the profile owned by the given user.
func (s *Store) ProfileOfUser(userID string) (core.Profile, bool) {
	return s.Profiles.FindOne(ByKey("userId", userID))
}

// UsersByIDs returns the users whose ids appear in ids, in store order.
// Used by batched loads; one lookup regardless of len(ids).
func (s *Store) UsersByIDs(ids []string) []core.User {
	return s.Users.FindMany(AnyOf("id", ids))
}

// MemberTypesByIDs returns the member types whose ids appear in ids.
func (s *Store) MemberTypesByIDs(ids []string) []core.MemberType {
	return s.MemberTypes.FindMany(AnyOf("id", ids))
}

// ProfilesByUserIDs returns the profiles owned by any of the users.
func (s *Store) ProfilesByUserIDs(userIDs []string) []core.Profile {
	return s.Profiles.FindMany(AnyOf("userId", userIDs))
}

// PostsByUserIDs returns the posts authored by any of the users.
func (s *Store) PostsByUserIDs(userIDs []string) []core.Post {
	return s.Posts.FindMany(AnyOf("userId", userIDs))
}

// PostsOfUser returns the posts authored by the given user.
func (s *Store) PostsOfUser(userID string) []core.Post {
	return s.Posts.FindMany(ByKey("userId", userID))
}

// AllUsers returns every user in store order.
func (s *Store) AllUsers() []core.User {
	return s.Users.FindMany(nil)
}

// AllPosts returns every post in store order.
func (s *Store) AllPosts() []core.Post {
	return s.Posts.FindMany(nil)
}

// AllProfiles returns every profile in store order.
func (s *Store) AllProfiles() []core.Profile {
	return s.Profiles.FindMany(nil)
}

// AllMemberTypes returns every member type in store order.
func (s *Store) AllMemberTypes() []core.MemberType {
	return s.MemberTypes.FindMany(nil)
}

// SubscribersOf returns the users whose subscription list contains the
// given user id (reverse-subscription lookup).
func (s *Store) SubscribersOf(userID string) []core.User {
	return s.Users.FindMany(InList("subscribedToUserIds", userID))
}

// HasUser reports whether a user with the given id exists.
func (s *Store) HasUser(id string) bool {
	_, ok := s.UserByID(id)
	return ok
}

// HasMemberType reports whether a member type with the given id exists.
func (s *Store) HasMemberType(id string) bool {
	_, ok := s.MemberTypeByID(id)
	return ok
}
