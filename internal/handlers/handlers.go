// Package handlers implements the HTTP surface of the nonogram service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter, logger *slog.Logger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error(
			"unable to send response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
	}
}

func SendMessageOrLog(w http.ResponseWriter, logger *slog.Logger, m string) {
	SendJSONOrLog(w, logger, map[string]string{
		"message": m,
	})
}

func SendErrorOrLog(w http.ResponseWriter, logger *slog.Logger, e error) {
	SendJSONOrLog(w, logger, wrapError(e))
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
