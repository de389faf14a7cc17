package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tetrisgame-go/internal/api/apierr"
	"github.com/mcoot/tetrisgame-go/internal/api/request"
	"github.com/mcoot/tetrisgame-go/internal/api/response"
	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/game"
	"github.com/mcoot/tetrisgame-go/internal/sse"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller  *game.Controller
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *game.Controller, broadcaster *sse.Broadcaster) *SessionHandler {
	return &SessionHandler{
		controller:  controller,
		broadcaster: broadcaster,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, snapshot, err := h.controller.CreateSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromSnapshot(id, snapshot))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	snapshot, err := h.controller.GetSnapshot(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(id, snapshot))
}

// Input handles POST /api/v1/sessions/{id}/input
func (h *SessionHandler) Input(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	intent, err := model.ParseIntent(req.Intent)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	snapshot, applied, err := h.controller.Apply(r.Context(), id, intent)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InputResult{
		Applied: applied,
		State:   response.GameStateFromSnapshot(id, snapshot),
	})
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.controller.DeleteSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcaster.Detach(id)

	response.NoContent(w)
}

// Events handles GET /api/v1/sessions/{id}/events (SSE stream)
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	hub, err := h.broadcaster.Attach(id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	sse.ServeSSE(w, r, hub)
}
