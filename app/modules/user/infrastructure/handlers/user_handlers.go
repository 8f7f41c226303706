package userhandlers

import (
	"net/http"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
)

// HandleCreateUser registers a new account. It is the only public user route.
func (h *UserHandlers) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userservice.CreateUserRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "User registered",
		attr.ExtractCorrelationID(r.Context()),
		attr.UserID(user.ID),
	)
	httpapi.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandlers) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "userID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, user)
}

// HandleMe returns the authenticated caller's account.
func (h *UserHandlers) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	user, err := h.service.GetUser(r.Context(), caller.ID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, user)
}
