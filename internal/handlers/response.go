package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/handlers/schemas"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Warn("error encoding response", zap.Error(err))
	}
}

// writeError answers with the error's own HTTP code when it carries one.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *customerror.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, validationErr.GetHTTPCode(), schemas.ErrorResponse{Error: "Please correct the highlighted fields.", Fields: validationErr.Messages})
		return
	}

	var customErr customerror.CustomError
	if errors.As(err, &customErr) {
		code := customErr.GetHTTPCode()
		if code >= http.StatusInternalServerError {
			logger.Log.Error("request failed", zap.Error(err))
		}
		writeJSON(w, code, schemas.ErrorResponse{Error: customErr.Error()})
		return
	}

	logger.Log.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, schemas.ErrorResponse{Error: "internal error"})
}
