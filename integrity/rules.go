// Package integrity holds the cross-entity validation rules run before
// mutations are committed to the store.
//
// Each rule is a pure predicate over a live read of the store: rules
// never mutate state, and each is evaluated immediately before the
// mutation it guards. Reason strings are stable and machine-checkable;
// the transport layers render them without rewording.
package integrity

import (
	"socialgraph/core"
)

// View is the read-only store surface the rules check against.
// *storage.Store implements it.
type View interface {
	HasUser(id string) bool
	HasMemberType(id string) bool
	ProfileOfUser(userID string) (core.Profile, bool)
	UserByID(id string) (core.User, bool)
}

// ValidateCreatePost checks that the post's author exists.
func ValidateCreatePost(v View, p core.PostCreate) error {
	if !v.HasUser(p.UserID) {
		return core.BadRequest("user doesnt exist")
	}
	return nil
}

// ValidateCreateProfile checks the member type reference, the user
// reference, and the one-profile-per-user constraint, in that order.
func ValidateCreateProfile(v View, p core.ProfileCreate) error {
	if !v.HasMemberType(p.MemberTypeID) {
		return core.BadRequest("member type is incorrect")
	}
	if !v.HasUser(p.UserID) {
		return core.BadRequest("user id is incorrect")
	}
	if _, exists := v.ProfileOfUser(p.UserID); exists {
		return core.BadRequest("profile already exists")
	}
	return nil
}

// ValidateChangeProfile checks the member type reference when the
// partial update carries one; an absent member type passes unchecked.
func ValidateChangeProfile(v View, up core.ProfileUpdate) error {
	if up.MemberTypeID != nil && !v.HasMemberType(*up.MemberTypeID) {
		return core.BadRequest("member type is incorrect")
	}
	return nil
}

// ValidateSubscribe checks that both users exist, that the
// subscription is not a self-reference, and that it does not already
// exist.
func ValidateSubscribe(v View, userID, targetID string) error {
	user, ok := v.UserByID(userID)
	if !ok {
		return core.NotFound("user not found")
	}
	if !v.HasUser(targetID) {
		return core.NotFound("user not found")
	}
	if userID == targetID {
		return core.BadRequest("cannot subscribe to self")
	}
	for _, id := range user.SubscribedToUserIDs {
		if id == targetID {
			return core.BadRequest("user is already subscribed")
		}
	}
	return nil
}

// ValidateUnsubscribe checks that the acting user exists and is
// currently subscribed to the target.
func ValidateUnsubscribe(v View, userID, targetID string) error {
	user, ok := v.UserByID(userID)
	if !ok {
		return core.NotFound("user not found")
	}
	for _, id := range user.SubscribedToUserIDs {
		if id == targetID {
			return nil
		}
	}
	return core.BadRequest("user is not subscribed")
}
