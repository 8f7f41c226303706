package casehandlers

import (
	"net/http"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
)

// AddDiagnosisRequest proposes a diagnosis with the caller's confidence in it.
type AddDiagnosisRequest struct {
	Diagnosis  string `json:"diagnosis"`
	Confidence *int   `json:"confidence"`
}

// AddWagerRequest carries a confidence between 0 and 100.
type AddWagerRequest struct {
	Confidence *int `json:"confidence"`
}

// JudgeRequest carries RIGHT, WRONG or INDETERMINATE in any letter case.
type JudgeRequest struct {
	Outcome *casedomain.Outcome `json:"outcome"`
}

// TextRequest is the body for comments and tags.
type TextRequest struct {
	Text string `json:"text"`
}

var errConfidenceRequired = &apperrors.ValidationError{Field: "confidence", Message: "is required"}

func (h *CaseHandlers) HandleAddDiagnosis(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req AddDiagnosisRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	if req.Confidence == nil {
		httpapi.WriteError(w, r, h.logger, errConfidenceRequired)
		return
	}

	d, err := h.service.AddDiagnosis(r.Context(), caller, caseID, req.Diagnosis, *req.Confidence)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, d)
}

func (h *CaseHandlers) HandleAddWager(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	diagnosisID, err := httpapi.URLParamUUID(r, "diagnosisID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req AddWagerRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	if req.Confidence == nil {
		httpapi.WriteError(w, r, h.logger, errConfidenceRequired)
		return
	}

	wager, err := h.service.AddWager(r.Context(), caller, diagnosisID, *req.Confidence)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, wager)
}

func (h *CaseHandlers) HandleJudgeOutcome(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	diagnosisID, err := httpapi.URLParamUUID(r, "diagnosisID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req JudgeRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	if req.Outcome == nil {
		httpapi.WriteError(w, r, h.logger, &apperrors.ValidationError{Field: "outcome", Message: "is required"})
		return
	}

	j, err := h.service.JudgeOutcome(r.Context(), caller, diagnosisID, *req.Outcome)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, j)
}

func (h *CaseHandlers) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req TextRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	c, err := h.service.AddComment(r.Context(), caller, caseID, req.Text)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, c)
}

func (h *CaseHandlers) HandleAddTag(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req TextRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.AddTag(r.Context(), caller, caseID, req.Text); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
