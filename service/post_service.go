package service

import (
	"errors"

	"go.uber.org/zap"

	"socialgraph/core"
	"socialgraph/integrity"
)

// Posts handles post mutations.
type Posts struct {
	store  Store
	logger *zap.SugaredLogger
}

// NewPosts creates the post service.
func NewPosts(store Store, logger *zap.SugaredLogger) *Posts {
	return &Posts{store: store, logger: logger}
}

// Create validates the author reference and stores the post. Nothing
// is stored when validation fails.
func (s *Posts) Create(p core.PostCreate) (core.Post, error) {
	if err := integrity.ValidateCreatePost(s.store, p); err != nil {
		return core.Post{}, err
	}
	return s.store.CreatePost(p), nil
}

// Change merges the partial update into the post.
func (s *Posts) Change(id string, up core.PostUpdate) (core.Post, error) {
	post, err := s.store.ChangePost(id, up)
	if errors.Is(err, core.ErrNotFound) {
		return core.Post{}, core.BadRequest("post not found or wrong id")
	}
	return post, err
}

// Delete removes the post.
func (s *Posts) Delete(id string) (core.Post, error) {
	post, err := s.store.DeletePost(id)
	if errors.Is(err, core.ErrNotFound) {
		return core.Post{}, core.BadRequest("post not found or wrong id")
	}
	return post, err
}
