package service

import (
	"errors"

	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/integrity"
)

// Profiles handles profile mutations.
type Profiles struct {
	store  Store
	logger *zap.SugaredLogger
}

// NewProfiles creates the profile service.
func NewProfiles(store Store, logger *zap.SugaredLogger) *Profiles {
	return &Profiles{store: store, logger: logger}
}

// Create validates the member type reference, the user reference, and
// the one-profile-per-user constraint, then stores the profile.
func (s *Profiles) Create(p core.ProfileCreate) (core.Profile, error) {
	if err := integrity.ValidateCreateProfile(s.store, p); err != nil {
		return core.Profile{}, err
	}
	return s.store.CreateProfile(p), nil
}

// Change validates the member type reference when present and merges
// the partial update into the profile.
func (s *Profiles) Change(id string, up core.ProfileUpdate) (core.Profile, error) {
	if err := integrity.ValidateChangeProfile(s.store, up); err != nil {
		return core.Profile{}, err
	}
	profile, err := s.store.ChangeProfile(id, up)
	if errors.Is(err, core.ErrNotFound) {
		return core.Profile{}, core.BadRequest("profile not found or wrong id")
	}
	return profile, err
}

// Delete removes the profile.
func (s *Profiles) Delete(id string) (core.Profile, error) {
	profile, err := s.store.DeleteProfile(id)
	if errors.Is(err, core.ErrNotFound) {
		return core.Profile{}, core.BadRequest("profile not found or wrong id")
	}
	return profile, err
}
