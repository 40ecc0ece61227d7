package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/domain/graph"
	"skilltree-backend/pkg/common"
	pkgerrors "skilltree-backend/pkg/errors"
)

const maxBodyBytes = 1 << 16

// SearchHandler handles search confirmation and selection operations
type SearchHandler struct {
	core   *core.Core
	logger *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(c *core.Core, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		core:   c,
		logger: logger,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Active  bool         `json:"active"`
	Query   string       `json:"query,omitempty"`
	Results []graph.Node `json:"results"`
}

type nodeRequest struct {
	NodeID string `json:"node_id"`
}

// Search handles POST /search. An empty query deactivates the search; a
// non-empty query confirms it. Zero matches returns 200 with an empty result
// list so the UI can show its "no results" indicator.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "invalid request body")
		return
	}

	result, err := h.core.Search(req.Query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	resp := searchResponse{
		Active:  result.Active,
		Query:   result.Query,
		Results: result.Nodes,
	}
	if resp.Results == nil {
		resp.Results = []graph.Node{}
	}

	common.RespondJSON(w, http.StatusOK, resp)
}

// ToggleSelection handles POST /selection/toggle
func (h *SearchHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil || req.NodeID == "" {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "node_id is required")
		return
	}

	if err := h.core.ToggleManual(req.NodeID); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"highlighted": h.core.Snapshot().Highlighted,
	})
}

// SelectTarget handles POST /selection/target. The target must be one of the
// current search results; the path request uses it afterwards.
func (h *SearchHandler) SelectTarget(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil || req.NodeID == "" {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "node_id is required")
		return
	}

	if err := h.core.SelectResult(req.NodeID); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"selected_target_id": req.NodeID,
	})
}
