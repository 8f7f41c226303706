package userhandlers

import (
	"net/http"

	"github.com/google/uuid"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
)

// AddMemberRequest names the user to add. An empty body adds the caller.
type AddMemberRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (h *UserHandlers) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req userservice.CreateGroupRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	group, err := h.service.CreateGroup(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, group)
}

func (h *UserHandlers) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, groups)
}

func (h *UserHandlers) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "groupID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	group, err := h.service.GetGroup(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, group)
}

// HandleAddMember adds a user to a group.
func (h *UserHandlers) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := httpapi.URLParamUUID(r, "groupID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	var req AddMemberRequest
	if r.ContentLength != 0 {
		if err := httpapi.DecodeJSON(w, r, &req); err != nil {
			httpapi.WriteError(w, r, h.logger, err)
			return
		}
	}
	userID := caller.ID
	if req.UserID != nil {
		userID = *req.UserID
	}

	if err := h.service.AddUserToGroup(r.Context(), userID, groupID); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Membership added",
		attr.ExtractCorrelationID(r.Context()),
		attr.UserID(userID),
		attr.GroupID(groupID),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandlers) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpapi.URLParamUUID(r, "groupID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	members, err := h.service.MembersOfGroup(r.Context(), groupID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, members)
}

// HandleMyGroups lists the caller's groups.
func (h *UserHandlers) HandleMyGroups(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	groups, err := h.service.GroupsForUser(r.Context(), caller.ID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, groups)
}
