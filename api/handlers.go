package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialgraph/core"
)

// subscribeBody names the acting user; the path id is the target.
type subscribeBody struct {
	UserID string `json:"userId" validate:"required"`
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.store.AllUsers(), http.StatusOK)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var payload core.UserCreate
	if err := a.decodeBody(r, &payload); err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, a.users.Create(payload), http.StatusCreated)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := a.store.UserByID(mux.Vars(r)["id"])
	if !ok {
		a.respondError(w, core.NotFound("user not found"))
		return
	}
	a.respondJSON(w, user, http.StatusOK)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	var up core.UserUpdate
	if err := a.decodeBody(r, &up); err != nil {
		a.respondError(w, err)
		return
	}
	user, err := a.users.Change(mux.Vars(r)["id"], up)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, user, http.StatusOK)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.users.Delete(mux.Vars(r)["id"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, user, http.StatusOK)
}

func (a *API) subscribeTo(w http.ResponseWriter, r *http.Request) {
	var body subscribeBody
	if err := a.decodeBody(r, &body); err != nil {
		a.respondError(w, err)
		return
	}
	user, err := a.users.Subscribe(body.UserID, mux.Vars(r)["id"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, user, http.StatusOK)
}

func (a *API) unsubscribeFrom(w http.ResponseWriter, r *http.Request) {
	var body subscribeBody
	if err := a.decodeBody(r, &body); err != nil {
		a.respondError(w, err)
		return
	}
	user, err := a.users.Unsubscribe(body.UserID, mux.Vars(r)["id"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, user, http.StatusOK)
}

func (a *API) listPosts(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.store.AllPosts(), http.StatusOK)
}

func (a *API) createPost(w http.ResponseWriter, r *http.Request) {
	var payload core.PostCreate
	if err := a.decodeBody(r, &payload); err != nil {
		a.respondError(w, err)
		return
	}
	post, err := a.posts.Create(payload)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, post, http.StatusCreated)
}

func (a *API) getPost(w http.ResponseWriter, r *http.Request) {
	post, ok := a.store.PostByID(mux.Vars(r)["id"])
	if !ok {
		a.respondError(w, core.NotFound("post not found"))
		return
	}
	a.respondJSON(w, post, http.StatusOK)
}

func (a *API) updatePost(w http.ResponseWriter, r *http.Request) {
	var up core.PostUpdate
	if err := a.decodeBody(r, &up); err != nil {
		a.respondError(w, err)
		return
	}
	post, err := a.posts.Change(mux.Vars(r)["id"], up)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, post, http.StatusOK)
}

func (a *API) deletePost(w http.ResponseWriter, r *http.Request) {
	post, err := a.posts.Delete(mux.Vars(r)["id"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, post, http.StatusOK)
}

func (a *API) listProfiles(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.store.AllProfiles(), http.StatusOK)
}

func (a *API) createProfile(w http.ResponseWriter, r *http.Request) {
	var payload core.ProfileCreate
	if err := a.decodeBody(r, &payload); err != nil {
		a.respondError(w, err)
		return
	}
	profile, err := a.profiles.Create(payload)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, profile, http.StatusCreated)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := a.store.ProfileByID(mux.Vars(r)["id"])
	if !ok {
		a.respondError(w, core.NotFound("profile not found"))
		return
	}
	a.respondJSON(w, profile, http.StatusOK)
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	var up core.ProfileUpdate
	if err := a.decodeBody(r, &up); err != nil {
		a.respondError(w, err)
		return
	}
	profile, err := a.profiles.Change(mux.Vars(r)["id"], up)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, profile, http.StatusOK)
}

func (a *API) deleteProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profiles.Delete(mux.Vars(r)["id"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, profile, http.StatusOK)
}

func (a *API) listMemberTypes(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.store.AllMemberTypes(), http.StatusOK)
}

func (a *API) getMemberType(w http.ResponseWriter, r *http.Request) {
	mt, ok := a.store.MemberTypeByID(mux.Vars(r)["id"])
	if !ok {
		a.respondError(w, core.NotFound("member type not found"))
		return
	}
	a.respondJSON(w, mt, http.StatusOK)
}

func (a *API) updateMemberType(w http.ResponseWriter, r *http.Request) {
	var up core.MemberTypeUpdate
	if err := a.decodeBody(r, &up); err != nil {
		a.respondError(w, err)
		return
	}
	mt, err := a.memberTypes.Change(mux.Vars(r)["id"], up)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, mt, http.StatusOK)
}
