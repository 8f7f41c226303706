package userhandlers

import "net/http"

// Handlers serves the user and group HTTP endpoints.
type Handlers interface {
	HandleCreateUser(w http.ResponseWriter, r *http.Request)
	HandleListUsers(w http.ResponseWriter, r *http.Request)
	HandleGetUser(w http.ResponseWriter, r *http.Request)
	HandleMe(w http.ResponseWriter, r *http.Request)

	HandleCreateGroup(w http.ResponseWriter, r *http.Request)
	HandleListGroups(w http.ResponseWriter, r *http.Request)
	HandleGetGroup(w http.ResponseWriter, r *http.Request)
	HandleAddMember(w http.ResponseWriter, r *http.Request)
	HandleListMembers(w http.ResponseWriter, r *http.Request)
	HandleMyGroups(w http.ResponseWriter, r *http.Request)
}
