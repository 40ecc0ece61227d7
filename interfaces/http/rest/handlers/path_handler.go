package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/pkg/common"
)

// PathHandler handles learning path requests
type PathHandler struct {
	core   *core.Core
	logger *zap.Logger
}

// NewPathHandler creates a new path handler
func NewPathHandler(c *core.Core, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		core:   c,
		logger: logger,
	}
}

// RequestPath handles POST /path. The path runs from the configured entry
// node to the currently selected search result; with no target selected the
// request is rejected. Remote failures leave the core in a "no path" state
// and surface as a gateway error the UI can report.
func (h *PathHandler) RequestPath(w http.ResponseWriter, r *http.Request) {
	pathTree, err := h.core.RequestPath(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	snap := h.core.Snapshot()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"path":        pathTree,
		"highlighted": snap.Highlighted,
	})
}
