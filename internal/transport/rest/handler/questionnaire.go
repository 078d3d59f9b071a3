package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"confmatch/internal/form"
	"confmatch/internal/model"
	"confmatch/internal/service"
	"confmatch/internal/transport/rest/middleware"
)

// QuestionnaireHandler handles the questionnaire endpoints
type QuestionnaireHandler struct {
	svc *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(svc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{svc: svc}
}

// StateResponse carries the form state plus progress metadata for the
// section progress bar.
type StateResponse struct {
	State    *form.State `json:"state"`
	Section  int         `json:"section"`
	Sections int         `json:"sections"`
	Progress float64     `json:"progress"`
}

// AddOptionRequest is the request body for adding a custom option
type AddOptionRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Schema handles GET /v1/questionnaire/schema
func (h *QuestionnaireHandler) Schema(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	schema, err := h.svc.MergedSchema(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sections": schema})
}

// State handles GET /v1/questionnaire/state
func (h *QuestionnaireHandler) State(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	st, err := h.svc.State(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeState(w, st)
}

// UpdateAnswer handles PUT /v1/questionnaire/answers
func (h *QuestionnaireHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.AnswerUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "missing answer key")
		return
	}

	st, err := h.svc.UpdateAnswer(r.Context(), sess.UserID, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeState(w, st)
}

// AddOption handles POST /v1/questionnaire/options
func (h *QuestionnaireHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "missing question key")
		return
	}

	st, err := h.svc.AddCustomOption(r.Context(), sess.UserID, req.Key, req.Value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeState(w, st)
}

// Next handles POST /v1/questionnaire/next
func (h *QuestionnaireHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	st, err := h.svc.Next(r.Context(), sess.UserID)
	if err != nil {
		writeValidationOrError(w, err)
		return
	}

	h.writeState(w, st)
}

// Back handles POST /v1/questionnaire/back
func (h *QuestionnaireHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	st, err := h.svc.Back(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeState(w, st)
}

// Submit handles POST /v1/questionnaire/submit
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.Submit(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmitInProgress):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNotLastSection):
			writeError(w, http.StatusConflict, err.Error())
		default:
			var vErr *form.ValidationError
			if errors.As(err, &vErr) {
				writeValidationError(w, vErr)
				return
			}
			// Persistence failure: surface the store's error text; the
			// answer store is left intact for a manual retry.
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *QuestionnaireHandler) writeState(w http.ResponseWriter, st *form.State) {
	total := len(h.svc.Schema())
	writeJSON(w, http.StatusOK, StateResponse{
		State:    st,
		Section:  st.SectionIndex + 1,
		Sections: total,
		Progress: float64(st.SectionIndex+1) / float64(total) * 100,
	})
}

func writeValidationOrError(w http.ResponseWriter, err error) {
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		writeValidationError(w, vErr)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeValidationError(w http.ResponseWriter, vErr *form.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    vErr.Error(),
		"question": vErr.Question.Key,
		"prompt":   vErr.Question.Question,
	})
}
