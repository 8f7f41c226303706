package casehandlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
)

// CreateCaseResponse carries the id of a new case.
type CreateCaseResponse struct {
	ID uuid.UUID `json:"id"`
}

// ImportResponse reports how many cases an import wrote.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ChangeGroupRequest reassigns a case; a null group_id removes the group.
type ChangeGroupRequest struct {
	GroupID *uuid.UUID `json:"group_id"`
}

// ChangeGroupResponse echoes the case's group after the change.
type ChangeGroupResponse struct {
	GroupID *uuid.UUID `json:"group_id"`
}

// ChangeDeadlineRequest carries an RFC 3339 time or a phrase like "in 2 weeks".
type ChangeDeadlineRequest struct {
	Deadline string `json:"deadline"`
}

func (h *CaseHandlers) HandleCreateCase(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	var req caseservice.CreateCaseRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	req.CreatorID = caller.ID

	id, err := h.service.CreateCase(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, CreateCaseResponse{ID: id})
}

// HandleImportCases accepts a multipart upload in field "file" (.json, .csv or
// .xlsx) or a raw JSON body.
func (h *CaseHandlers) HandleImportCases(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}

	cases, err := h.readImport(w, r)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	n, err := h.service.ImportCases(r.Context(), caller.ID, cases)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Import accepted",
		attr.ExtractCorrelationID(r.Context()),
		attr.UserID(caller.ID),
		attr.Int("imported", n),
	)
	httpapi.WriteJSON(w, http.StatusCreated, ImportResponse{Imported: n})
}

func (h *CaseHandlers) readImport(w http.ResponseWriter, r *http.Request) ([]caseservice.ImportedCase, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to read request body: %v", err))
		}
		parser, _ := h.parsers.GetParser("body.json")
		return parser.Parse(data)
	}

	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("malformed upload: %v", err))
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "file", Message: "is required"}
	}
	defer file.Close()

	parser, err := h.parsers.GetParser(header.Filename)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("failed to read upload: %v", err))
	}
	return parser.Parse(data)
}

// HandleListCases lists the caller's cases. ?creator=true keeps cases they
// created, ?creator=false keeps group cases created by others, ?tag= filters by tag.
func (h *CaseHandlers) HandleListCases(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	creatorOnly, err := httpapi.QueryBool(r, "creator")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	filter := casedb.CaseListFilter{CreatorOnly: creatorOnly}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filter.Tag = &tag
	}

	cases, err := h.service.ListCases(r.Context(), caller.ID, filter)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, cases)
}

func (h *CaseHandlers) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	detail, err := h.service.GetCase(r.Context(), caller, caseID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, detail)
}

func (h *CaseHandlers) HandleChangeGroup(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req ChangeGroupRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	group, err := h.service.ChangeGroup(r.Context(), caller, caseID, req.GroupID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, ChangeGroupResponse{GroupID: group})
}

func (h *CaseHandlers) HandleChangeDeadline(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	caseID, err := httpapi.URLParamUUID(r, "caseID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	var req ChangeDeadlineRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	updated, err := h.service.ChangeDeadline(r.Context(), caller, caseID, req.Deadline)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}
