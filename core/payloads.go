package core

// UserCreate is the payload for creating a user. A fresh user starts
// with an empty subscription list.
type UserCreate struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// PostCreate is the payload for creating a post. UserID must reference
// a live user; the integrity rules check this before the store call.
type PostCreate struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

// ProfileCreate is the payload for creating a profile.
type ProfileCreate struct {
	Avatar       string `json:"avatar" validate:"required"`
	Sex          string `json:"sex" validate:"required"`
	Birthday     int    `json:"birthday"`
	Country      string `json:"country" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	MemberTypeID string `json:"memberTypeId" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
}

// UserUpdate is a partial update for a user. Nil fields are retained.
// The subscription list is not updatable here; it is only mutated
// through subscribe/unsubscribe and the delete cascade, which keeps
// the list invariants enforceable in one place.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// ApplyTo merges the set fields into u.
func (c UserUpdate) ApplyTo(u *User) {
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
}

// PostUpdate is a partial update for a post. The owning user cannot be
// reassigned.
type PostUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ApplyTo merges the set fields into p.
func (c PostUpdate) ApplyTo(p *Post) {
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Content != nil {
		p.Content = *c.Content
	}
}

// ProfileUpdate is a partial update for a profile. The owning user
// cannot be reassigned; MemberTypeID is validated against the store
// when present.
type ProfileUpdate struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int    `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeID *string `json:"memberTypeId"`
}

// ApplyTo merges the set fields into p.
func (c ProfileUpdate) ApplyTo(p *Profile) {
	if c.Avatar != nil {
		p.Avatar = *c.Avatar
	}
	if c.Sex != nil {
		p.Sex = *c.Sex
	}
	if c.Birthday != nil {
		p.Birthday = *c.Birthday
	}
	if c.Country != nil {
		p.Country = *c.Country
	}
	if c.Street != nil {
		p.Street = *c.Street
	}
	if c.City != nil {
		p.City = *c.City
	}
	if c.MemberTypeID != nil {
		p.MemberTypeID = *c.MemberTypeID
	}
}

// MemberTypeUpdate is a partial update for a member type.
type MemberTypeUpdate struct {
	Discount        *int `json:"discount"`
	MonthPostsLimit *int `json:"monthPostsLimit"`
}

// ApplyTo merges the set fields into m.
func (c MemberTypeUpdate) ApplyTo(m *MemberType) {
	if c.Discount != nil {
		m.Discount = *c.Discount
	}
	if c.MonthPostsLimit != nil {
		m.MonthPostsLimit = *c.MonthPostsLimit
	}
}
