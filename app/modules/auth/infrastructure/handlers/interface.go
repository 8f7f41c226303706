package authhandlers

import "net/http"

// Handlers serves the auth HTTP endpoints and the bearer-token middleware.
type Handlers interface {
	HandleLogin(w http.ResponseWriter, r *http.Request)
	RequireAuth(next http.Handler) http.Handler
}
