package web

// errors.go provides unified error response handling for the web layer.
//
// Data load failures inside a view never come through here: they render as an
// inline notice in that view and the page still returns 200. respondError is
// for requests that cannot produce their resource at all (bad download links,
// API calls, rate limiting).

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
	"github.com/JonMunkholm/weddingweek/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error and writes the mapped user message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	writeError(w, r, statusCode, err)
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	userMsg := core.MessageFor(err)

	technical := err
	var ue *core.UserError
	if errors.As(err, &ue) {
		technical = ue.Technical
	}

	// Errors without a known message are bugs rather than bad input or a
	// flaky source.
	level := slog.LevelWarn
	if !core.IsUserFacing(err) {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", technical.Error(),
		"code", userMsg.Code,
	)

	if wantsJSON(r) {
		respondErrorJSON(w, userMsg, statusCode)
		return
	}
	respondErrorHTML(w, r, userMsg, statusCode)
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// respondErrorHTML writes the message as an alert fragment.
func respondErrorHTML(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = templates.InlineError(noticeFrom(msg)).Render(r.Context(), w)
}

func noticeFrom(msg core.UserMessage) templates.Notice {
	return templates.Notice{Message: msg.Message, Action: msg.Action, Code: msg.Code}
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
