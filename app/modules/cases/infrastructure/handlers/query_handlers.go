package casehandlers

import (
	"net/http"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
)

func (h *CaseHandlers) HandleGroupCases(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpapi.URLParamUUID(r, "groupID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	cases, err := h.service.CasesForGroup(r.Context(), groupID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, cases)
}

func (h *CaseHandlers) HandleMyTags(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	tags, err := h.service.TagsForUser(r.Context(), caller.ID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, tags)
}

// HandleMyPredictions lists the caller's wagers. ?outcome= takes unjudged,
// RIGHT, WRONG or INDETERMINATE; absent lists everything.
func (h *CaseHandlers) HandleMyPredictions(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	filter, err := caseservice.ParseOutcomeFilter(r.URL.Query().Get("outcome"))
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	predictions, err := h.service.Predictions(r.Context(), caller.ID, filter)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, predictions)
}
