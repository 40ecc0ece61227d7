package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/domain/graph"
	pkgerrors "skilltree-backend/pkg/errors"
)

// GraphHandler serves the universal tree and the core's state snapshot
type GraphHandler struct {
	core   *core.Core
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(c *core.Core, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		core:   c,
		logger: logger,
	}
}

// stateResponse is the snapshot shape handed to the rendering layer
type stateResponse struct {
	Loaded           bool         `json:"loaded"`
	LoadError        string       `json:"load_error,omitempty"`
	Highlighted      []string     `json:"highlighted"`
	SearchActive     bool         `json:"search_active"`
	SearchResults    []graph.Node `json:"search_results"`
	ActivePath       *graph.Tree  `json:"active_path"`
	SelectedTargetID string       `json:"selected_target_id,omitempty"`
	EntryNodeID      string       `json:"entry_node_id"`
}

// GetTree handles GET /tree
func (h *GraphHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	snap := h.core.Snapshot()
	if !snap.Loaded {
		respondAppError(w, h.logger, pkgerrors.NewTreeUnavailableError(snap.LoadError))
		return
	}

	h.respondJSON(w, http.StatusOK, snap.Tree)
}

// GetState handles GET /state
func (h *GraphHandler) GetState(w http.ResponseWriter, r *http.Request) {
	snap := h.core.Snapshot()

	resp := stateResponse{
		Loaded:           snap.Loaded,
		Highlighted:      snap.Highlighted,
		SearchActive:     snap.SearchActive,
		SearchResults:    snap.SearchResults,
		ActivePath:       snap.ActivePath,
		SelectedTargetID: snap.SelectedTargetID,
		EntryNodeID:      h.core.EntryNodeID(),
	}
	if snap.LoadError != nil {
		resp.LoadError = snap.LoadError.Error()
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *GraphHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
