package handler

import (
	"net/http"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/game"
	"github.com/aldenjg/cornharvest/internal/logger"
)

// CreateSessionRequest starts a farm. Seed 0 lets the server pick.
type CreateSessionRequest struct {
	Seed int64 `json:"seed"`
}

// SetActionRequest picks the action Execute applies next
type SetActionRequest struct {
	Action string `json:"action" validate:"required,action"`
}

// SelectRequest marks plots for the next Execute
type SelectRequest struct {
	Plots []int `json:"plots" validate:"required,min=1,dive,min=0"`
}

// PurchaseRequest is a shop order keyed by item kind
type PurchaseRequest struct {
	Items map[string]int `json:"items" validate:"required,min=1,dive,keys,item,endkeys,min=0,max=100"`
}

// ForecastResponse lists tonight's odds
type ForecastResponse struct {
	Lines []string `json:"lines"`
}

// DayReportResponse wraps a day report with the lines a player reads
type DayReportResponse struct {
	*game.DayReport
	Lines []string `json:"lines"`
}

// SessionHandler serves the farm session endpoints
type SessionHandler struct {
	service game.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(service game.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// HandleCreate starts a new session
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := DecodeOptionalRequest(r, w, &req, OpCreateSession); err != nil {
		return
	}

	snap, err := h.service.Create(r.Context(), req.Seed)
	if err != nil {
		respondServiceError(w, r, OpCreateSession, err)
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// HandleGet returns the session snapshot
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetSession, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleDelete ends a session early
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, OpDeleteSession, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDeleted})
}

// HandleSetAction sets the pending action
func (h *SessionHandler) HandleSetAction(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req SetActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetAction); err != nil {
		return
	}

	kind, err := domain.ParseActionKind(req.Action)
	if err != nil {
		respondServiceError(w, r, OpSetAction, err)
		return
	}

	snap, err := h.service.SetAction(r.Context(), id, kind)
	if err != nil {
		respondServiceError(w, r, OpSetAction, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleSelect selects plots
func (h *SessionHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSelectPlots); err != nil {
		return
	}

	snap, err := h.service.Select(r.Context(), id, req.Plots)
	if err != nil {
		respondServiceError(w, r, OpSelectPlots, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleExecute applies the pending action to the selection
func (h *SessionHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.Execute(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpExecute, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCancel drops the pending action and selection
func (h *SessionHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpCancel, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandlePurchase buys from the shop
func (h *SessionHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPurchase); err != nil {
		return
	}

	order := make(map[domain.ItemKind]int, len(req.Items))
	for name, qty := range req.Items {
		kind, err := domain.ParseItemKind(name)
		if err != nil {
			respondServiceError(w, r, OpPurchase, err)
			return
		}
		order[kind] += qty
	}

	res, err := h.service.Purchase(r.Context(), id, order)
	if err != nil {
		respondServiceError(w, r, OpPurchase, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleEndDay runs the night and advances the day
func (h *SessionHandler) HandleEndDay(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.service.EndDay(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpEndDay, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Day report sent", "session_id", id, "day", report.Day)
	respondJSON(w, http.StatusOK, DayReportResponse{DayReport: report, Lines: report.Lines()})
}

// HandleForecast lists tonight's odds
func (h *SessionHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	lines, err := h.service.Forecast(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpForecast, err)
		return
	}
	respondJSON(w, http.StatusOK, ForecastResponse{Lines: lines})
}
