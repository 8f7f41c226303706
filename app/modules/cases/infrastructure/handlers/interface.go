package casehandlers

import "net/http"

// Handlers exposes case operations over HTTP. Every handler expects an
// authenticated caller in the request context.
type Handlers interface {
	HandleCreateCase(w http.ResponseWriter, r *http.Request)
	HandleImportCases(w http.ResponseWriter, r *http.Request)
	HandleListCases(w http.ResponseWriter, r *http.Request)
	HandleGetCase(w http.ResponseWriter, r *http.Request)
	HandleChangeGroup(w http.ResponseWriter, r *http.Request)
	HandleChangeDeadline(w http.ResponseWriter, r *http.Request)

	HandleAddDiagnosis(w http.ResponseWriter, r *http.Request)
	HandleAddWager(w http.ResponseWriter, r *http.Request)
	HandleJudgeOutcome(w http.ResponseWriter, r *http.Request)
	HandleAddComment(w http.ResponseWriter, r *http.Request)
	HandleAddTag(w http.ResponseWriter, r *http.Request)

	HandleGroupCases(w http.ResponseWriter, r *http.Request)
	HandleMyTags(w http.ResponseWriter, r *http.Request)
	HandleMyPredictions(w http.ResponseWriter, r *http.Request)
}
