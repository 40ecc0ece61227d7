package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"skilltree-backend/pkg/common"
	pkgerrors "skilltree-backend/pkg/errors"
)

// respondAppError maps a typed application error onto the response envelope
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		common.RespondError(w, status, string(appErr.Type), appErr.Message)
		return
	}

	logger.Error("Unhandled error", zap.Error(err))
	common.RespondError(w, http.StatusInternalServerError, string(pkgerrors.ErrorTypeInternal), "An internal error occurred")
}
