package loader

import (
	"socialgraph/core"
)

// Source is the store surface batch fetches run against.
// *storage.Store implements it; tests substitute call-counting fakes.
type Source interface {
	UsersByIDs(ids []string) []core.User
	MemberTypesByIDs(ids []string) []core.MemberType
	ProfilesByUserIDs(userIDs []string) []core.Profile
	PostsByUserIDs(userIDs []string) []core.Post
	AllUsers() []core.User
}

// Bundle holds one loader per related-entity kind for a single
// request. Construct with NewBundle at request scope and discard when
// the request completes.
type Bundle struct {
	UserByID        *Loader[string, core.User]
	MemberTypeByID  *Loader[string, core.MemberType]
	ProfileByUserID *Loader[string, core.Profile]
	PostsByUserID   *Loader[string, []core.Post]
	SubscribersOf   *Loader[string, []core.User]
}

// NewBundle creates the per-request loader set backed by src.
func NewBundle(src Source) *Bundle {
	return &Bundle{
		UserByID: New("user", func(ids []string) map[string]core.User {
			out := make(map[string]core.User, len(ids))
			for _, u := range src.UsersByIDs(ids) {
				out[u.ID] = u
			}
			return out
		}),
		MemberTypeByID: New("memberType", func(ids []string) map[string]core.MemberType {
			out := make(map[string]core.MemberType, len(ids))
			for _, mt := range src.MemberTypesByIDs(ids) {
				out[mt.ID] = mt
			}
			return out
		}),
		ProfileByUserID: New("profileByUser", func(userIDs []string) map[string]core.Profile {
			out := make(map[string]core.Profile, len(userIDs))
			for _, p := range src.ProfilesByUserIDs(userIDs) {
				out[p.UserID] = p
			}
			return out
		}),
		PostsByUserID: New("postsByUser", func(userIDs []string) map[string][]core.Post {
			out := make(map[string][]core.Post, len(userIDs))
			// Every requested author resolves, possibly to an empty
			// list, so absence is not conflated with "no posts".
			for _, id := range userIDs {
				out[id] = []core.Post{}
			}
			for _, p := range src.PostsByUserIDs(userIDs) {
				out[p.UserID] = append(out[p.UserID], p)
			}
			return out
		}),
		SubscribersOf: New("subscribers", func(userIDs []string) map[string][]core.User {
			wanted := make(map[string]struct{}, len(userIDs))
			out := make(map[string][]core.User, len(userIDs))
			for _, id := range userIDs {
				wanted[id] = struct{}{}
				out[id] = []core.User{}
			}
			// Reverse-subscription lookup: one pass over the user
			// collection regardless of batch size.
			for _, u := range src.AllUsers() {
				for _, target := range u.SubscribedToUserIDs {
					if _, ok := wanted[target]; ok {
						out[target] = append(out[target], u)
					}
				}
			}
			return out
		}),
	}
}
