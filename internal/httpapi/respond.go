package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/catalogerr"
)

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its spec'd status code and log level
// (internal/catalogerr), logs it, and writes a JSON body naming the full
// cause chain.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := catalogerr.StatusCode(err)

	fields := []zap.Field{zap.String("path", r.URL.Path), zap.Error(err)}
	switch catalogerr.LogLevel(err) {
	case "debug":
		s.Log.Debug("request failed", fields...)
	default:
		s.Log.Error("request failed", fields...)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
