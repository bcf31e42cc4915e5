package service

import (
	"errors"

	"go.uber.org/zap"

	"socialgraph/core"
)

// MemberTypes handles member type patches. Member types are seeded at
// startup and cannot be created or deleted through the public surface.
type MemberTypes struct {
	store  Store
	logger *zap.SugaredLogger
}

// NewMemberTypes creates the member type service.
func NewMemberTypes(store Store, logger *zap.SugaredLogger) *MemberTypes {
	return &MemberTypes{store: store, logger: logger}
}

// Change merges the partial update into the member type.
func (s *MemberTypes) Change(id string, up core.MemberTypeUpdate) (core.MemberType, error) {
	mt, err := s.store.ChangeMemberType(id, up)
	if errors.Is(err, core.ErrNotFound) {
		return core.MemberType{}, core.BadRequest("member type not found or wrong id")
	}
	return mt, err
}
