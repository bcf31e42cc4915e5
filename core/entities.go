package core

// Entity kind names, used for metrics labels and loader batch keys.
const (
	KindUser       = "user"
	KindPost       = "post"
	KindProfile    = "profile"
	KindMemberType = "memberType"
)

// User is a member of the network. SubscribedToUserIDs is the
// denormalized adjacency list of users this user follows: ordered,
// duplicate-free, and never containing the owner's own id.
type User struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

// EntityID returns the user's id.
func (u User) EntityID() string { return u.ID }

// Field returns the named scalar field value.
func (u User) Field(name string) (string, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	}
	return "", false
}

// ListField returns the named sequence field value.
func (u User) ListField(name string) ([]string, bool) {
	if name == "subscribedToUserIds" {
		return u.SubscribedToUserIDs, true
	}
	return nil, false
}

// Post is authored by exactly one user.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// EntityID returns the post's id.
func (p Post) EntityID() string { return p.ID }

// Field returns the named scalar field value.
func (p Post) Field(name string) (string, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "content":
		return p.Content, true
	case "userId":
		return p.UserID, true
	}
	return "", false
}

// ListField returns the named sequence field value.
func (p Post) ListField(string) ([]string, bool) { return nil, false }

// Profile holds a user's extended attributes. At most one profile
// exists per user; MemberTypeID references a seeded member type.
type Profile struct {
	ID           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int    `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeID string `json:"memberTypeId"`
	UserID       string `json:"userId"`
}

// EntityID returns the profile's id.
func (p Profile) EntityID() string { return p.ID }

// Field returns the named scalar field value.
func (p Profile) Field(name string) (string, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "avatar":
		return p.Avatar, true
	case "sex":
		return p.Sex, true
	case "country":
		return p.Country, true
	case "street":
		return p.Street, true
	case "city":
		return p.City, true
	case "memberTypeId":
		return p.MemberTypeID, true
	case "userId":
		return p.UserID, true
	}
	return "", false
}

// ListField returns the named sequence field value.
func (p Profile) ListField(string) ([]string, bool) { return nil, false }

// MemberType is one of a small fixed enumeration seeded at startup.
// Member types are never created or deleted through the public
// surface; only Discount and MonthPostsLimit are mutable.
type MemberType struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// EntityID returns the member type's id.
func (m MemberType) EntityID() string { return m.ID }

// Field returns the named scalar field value.
func (m MemberType) Field(name string) (string, bool) {
	if name == "id" {
		return m.ID, true
	}
	return "", false
}

// ListField returns the named sequence field value.
func (m MemberType) ListField(string) ([]string, bool) { return nil, false }

// Seeded member type ids.
const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// DefaultMemberTypes returns the member types seeded into a fresh store.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{ID: MemberTypeBasic, Discount: 0, MonthPostsLimit: 3},
		{ID: MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100},
	}
}
