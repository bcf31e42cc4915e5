package service

import (
	"errors"

	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/integrity"
	"socialgraph/metrics"
)

// Users handles user mutations, the subscription graph, and the
// user delete cascade.
type Users struct {
	store  Store
	logger *zap.SugaredLogger
}

// NewUsers creates the user service.
func NewUsers(store Store, logger *zap.SugaredLogger) *Users {
	return &Users{store: store, logger: logger}
}

// Create stores a new user. Creation is total: a fresh user has no
// relations to violate.
func (s *Users) Create(p core.UserCreate) core.User {
	return s.store.CreateUser(p)
}

// Change merges the partial update into the user.
func (s *Users) Change(id string, up core.UserUpdate) (core.User, error) {
	user, err := s.store.ChangeUser(id, up)
	if errors.Is(err, core.ErrNotFound) {
		return core.User{}, core.BadRequest("user not found or wrong id")
	}
	return user, err
}

// Delete removes the user and every reference to it: the user's
// profile, the user's posts, and the user's id in every other user's
// subscription list, then the user itself. If the user does not exist
// the cascade fails up front and performs no partial work. The
// sequence of store calls is not atomic; an interruption mid-cascade
// leaves the remaining cleanup undone.
func (s *Users) Delete(id string) (core.User, error) {
	if !s.store.HasUser(id) {
		return core.User{}, core.BadRequest("user not found or wrong id")
	}

	if profile, ok := s.store.ProfileOfUser(id); ok {
		if _, err := s.store.DeleteProfile(profile.ID); err != nil {
			return core.User{}, err
		}
		metrics.CascadeCleanups.WithLabelValues(core.KindProfile).Inc()
	}

	for _, post := range s.store.PostsOfUser(id) {
		if _, err := s.store.DeletePost(post.ID); err != nil {
			return core.User{}, err
		}
		metrics.CascadeCleanups.WithLabelValues(core.KindPost).Inc()
	}

	for _, subscriber := range s.store.SubscribersOf(id) {
		remaining := make([]string, 0, len(subscriber.SubscribedToUserIDs)-1)
		for _, sub := range subscriber.SubscribedToUserIDs {
			if sub != id {
				remaining = append(remaining, sub)
			}
		}
		if _, err := s.store.SetSubscriptions(subscriber.ID, remaining); err != nil {
			return core.User{}, err
		}
		metrics.CascadeCleanups.WithLabelValues(core.KindUser).Inc()
	}

	removed, err := s.store.DeleteUser(id)
	if err != nil {
		return core.User{}, err
	}
	s.logger.Infow("user deleted", "id", id)
	return removed, nil
}

// Subscribe appends targetID to the acting user's subscription list.
func (s *Users) Subscribe(userID, targetID string) (core.User, error) {
	if err := integrity.ValidateSubscribe(s.store, userID, targetID); err != nil {
		return core.User{}, err
	}
	user, _ := s.store.UserByID(userID)
	return s.store.SetSubscriptions(userID, append(user.SubscribedToUserIDs, targetID))
}

// Unsubscribe removes targetID from the acting user's subscription
// list.
func (s *Users) Unsubscribe(userID, targetID string) (core.User, error) {
	if err := integrity.ValidateUnsubscribe(s.store, userID, targetID); err != nil {
		return core.User{}, err
	}
	user, _ := s.store.UserByID(userID)
	remaining := make([]string, 0, len(user.SubscribedToUserIDs))
	for _, sub := range user.SubscribedToUserIDs {
		if sub != targetID {
			remaining = append(remaining, sub)
		}
	}
	return s.store.SetSubscriptions(userID, remaining)
}
