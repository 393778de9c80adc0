package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/eventlog"
)

// JournalResponse lists a session's recorded events, oldest first
type JournalResponse struct {
	SessionID string           `json:"session_id"`
	Entries   []eventlog.Entry `json:"entries"`
}

// JournalHandler serves the per-session event journal
type JournalHandler struct {
	journal eventlog.Service
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journal eventlog.Service) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// HandleJournal returns the newest journal entries. ?limit= caps the count.
func (h *JournalHandler) HandleJournal(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.journal.Journal(r.Context(), id, limit)
	if err != nil {
		respondServiceError(w, r, OpJournal, err)
		return
	}
	// Every session journals its start, so an empty journal means an
	// unknown or long-expired session.
	if len(entries) == 0 {
		respondServiceError(w, r, OpJournal, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id))
		return
	}

	respondJSON(w, http.StatusOK, JournalResponse{SessionID: id, Entries: entries})
}
